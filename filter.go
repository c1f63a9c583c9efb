package grana

import (
	"fmt"
	"slices"
	"strings"
)

// StatusFilter narrows a view to paid or pending transactions.
type StatusFilter string

const (
	AnyStatus StatusFilter = "all"
	PaidOnly  StatusFilter = "paid"
	Pending   StatusFilter = "pending"
)

// ParseStatusFilter parses a string into a StatusFilter.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case AnyStatus, "":
		return AnyStatus, nil
	case PaidOnly:
		return PaidOnly, nil
	case Pending:
		return Pending, nil
	default:
		return "", fmt.Errorf("unknown status filter: %q", s)
	}
}

// Selector tokens accepted by ParsePayerSelection.
const (
	SelectorAll        = "all"
	SelectorIndividual = "individual"
)

// PayerSelection is the payer lens of a view: everything, only unsplit
// ("individual") transactions, one or more named partners, or a union of
// those. It is a first-class value rather than a loose token list because the
// aggregation rules branch on its exact shape.
//
// The zero value selects everything.
type PayerSelection struct {
	all        bool
	individual bool
	names      []string
}

// SelectAll selects every transaction regardless of split.
func SelectAll() PayerSelection { return PayerSelection{all: true} }

// SelectIndividual selects only transactions with no split.
func SelectIndividual() PayerSelection { return PayerSelection{individual: true} }

// SelectPayers selects split transactions belonging to the named partners.
func SelectPayers(names ...string) PayerSelection {
	return PayerSelection{names: slices.Clone(names)}
}

// ParsePayerSelection builds a selection from selector tokens: "all",
// "individual", or literal payer names. Tokens union together.
func ParsePayerSelection(tokens ...string) PayerSelection {
	var s PayerSelection
	for _, t := range tokens {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case SelectorAll:
			s.all = true
		case SelectorIndividual:
			s.individual = true
		case "":
			// skip blanks
		default:
			s.names = append(s.names, strings.TrimSpace(t))
		}
	}
	return s
}

// IsAll reports whether the selection places no restriction at all.
func (s PayerSelection) IsAll() bool {
	return s.all || (!s.individual && len(s.names) == 0)
}

// IsIndividualOnly reports whether the selection is exactly the "individual"
// lens, with no payers and no "all".
func (s PayerSelection) IsIndividualOnly() bool {
	return s.individual && !s.all && len(s.names) == 0
}

// SingleNamed returns the payer name when the selection is exactly one named
// partner, and nothing else.
func (s PayerSelection) SingleNamed() (string, bool) {
	if !s.all && !s.individual && len(s.names) == 1 {
		return s.names[0], true
	}
	return "", false
}

// Matches reports whether a transaction passes the payer lens. Tokens union:
// one satisfied selector is enough.
func (s PayerSelection) Matches(tx Transaction) bool {
	if s.IsAll() {
		return true
	}
	if s.individual && !tx.IsSplit() {
		return true
	}
	return tx.IsSplit() && slices.Contains(s.names, tx.PartnerName())
}

// Filter is the predicate specification selecting the working set of a view.
// All active predicates combine with AND; within the payer selection the
// tokens union.
type Filter struct {
	Range    Range
	Category string // "" or "all" matches every category
	Status   StatusFilter
	Payers   PayerSelection
}

// Matches reports whether a single transaction passes every active predicate.
func (f Filter) Matches(tx Transaction) bool {
	if !f.Range.Contains(tx.Date) {
		return false
	}
	if f.Category != "" && f.Category != SelectorAll && tx.Category != f.Category {
		return false
	}
	switch f.Status {
	case PaidOnly:
		if !tx.IsPaid {
			return false
		}
	case Pending:
		if tx.IsPaid {
			return false
		}
	}
	return f.Payers.Matches(tx)
}

// Select returns the subset of transactions matching the filter, preserving
// the original relative order.
func Select(transactions []Transaction, f Filter) []Transaction {
	var out []Transaction
	for _, tx := range transactions {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}
