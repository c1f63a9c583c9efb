// Package grana provides the computational core of a personal finance
// tracker: a ledger of income and expense transactions, optionally split
// between the owner and named partners and optionally tied to a credit card
// or account, together with the pure derivations shown to the user.
//
// The core functionalities include:
//   - Ledger Store: the canonical in-memory collections (transactions, cards,
//     accounts, category/payer registry) and their mutation operations, each
//     staged against an external persistence collaborator so a failed write
//     never leaves a half-applied snapshot.
//   - Filter Engine: predicate specifications (date range, category, paid
//     status, payer selection) selecting the working set of a view.
//   - Aggregation Engine: summaries whose per-transaction contribution is
//     contextual on the payer lens, and per-card expense groupings.
//   - Split Resolution: each party's monetary share of a transaction and the
//     per-payer settlement view.
//   - Card & Account Debt Model: lifetime pending card debt versus
//     period-scoped statement stats, and account liquid/invested/patrimony
//     derivation including investment and reserve-withdrawal semantics.
//   - Data Persistence: encoding and decoding the ledger to a human-readable,
//     version-controllable JSONL file, plus import of the legacy backup
//     format.
//
// All derivations are deterministic, side-effect-free functions over full
// snapshots: callers re-invoke on any input change instead of relying on an
// observable store. This package is the foundation of the `gra` command-line
// tool.
package grana
