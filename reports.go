package grana

import "slices"

// Report is a period view of the ledger: the filtered transactions (most
// recent first), their summary under the filter's payer lens, the per-source
// expense groups, and the payer settlements for the range.
type Report struct {
	Filter       Filter
	Transactions []Transaction
	Summary      Summary
	Cards        []CardGroup
	Settlements  []Settlement
}

// NewReport assembles a period report. Filtering preserves ledger order; the
// report then re-sorts its own transaction list by date descending, as views
// present the most recent entries first.
func NewReport(ledger *Ledger, f Filter) *Report {
	all := ledger.AllTransactions()
	subset := Select(all, f)

	sorted := slices.Clone(subset)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		switch {
		case a.Date.After(b.Date):
			return -1
		case a.Date.Before(b.Date):
			return 1
		default:
			return 0
		}
	})

	return &Report{
		Filter:       f,
		Transactions: sorted,
		Summary:      Summarize(subset, f.Payers),
		Cards:        GroupByCard(subset, ledger.Cards()),
		// settlements scan the whole ledger: the payer lens of the filter
		// must not hide what a partner owes
		Settlements: PayerSettlement(ledger.Categories(), all, f.Range),
	}
}

// CardReport pairs a card with its debt metrics for a display range.
type CardReport struct {
	Card    CreditCard
	Metrics DebtMetrics
}

// CardReports computes debt metrics for every card. displayRange scopes only
// the statement stats; the debt figures are lifetime by construction.
func CardReports(ledger *Ledger, displayRange Range) []CardReport {
	all := ledger.AllTransactions()
	out := make([]CardReport, 0, len(ledger.cards))
	for _, card := range ledger.Cards() {
		out = append(out, CardReport{
			Card:    card,
			Metrics: CardDebtMetrics(card, all, displayRange),
		})
	}
	return out
}

// AccountReport pairs an account with its derived metrics.
type AccountReport struct {
	Account Account
	Metrics AccountMetrics
}

// AccountReports computes derived metrics for every account.
func AccountReports(ledger *Ledger) []AccountReport {
	all := ledger.AllTransactions()
	cards := ledger.Cards()
	out := make([]AccountReport, 0, len(ledger.accounts))
	for _, account := range ledger.Accounts() {
		out = append(out, AccountReport{
			Account: account,
			Metrics: AccountDerivedMetrics(account, all, cards),
		})
	}
	return out
}
