package grana

import (
	"fmt"
	"iter"
)

// Range represents a range of dates. Both boundaries are inclusive.
//
// The zero Range is unbounded: it contains every date. Views without a period
// selection pass it to mean "the whole ledger".
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// IsZero reports whether the range is the unbounded zero value.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool {
	if r.IsZero() {
		return true
	}
	return !date.Before(r.From) && !date.After(r.To)
}

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Period returns the period of this range if it is a standard one.
func (r Range) Period() (p Period, ok bool) {
	switch {
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return Monthly, true
	case r.From.StartOf(Quarterly) == r.From && r.From.EndOf(Quarterly) == r.To:
		return Quarterly, true
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return Yearly, true
	default:
		return Monthly, false
	}
}

// Identifier computes a unique identifier for the Range.
// If the range maps to a standard period, use a short insightful name.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
	switch p {
	case Monthly:
		return r.From.Format("2006-January")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return r.From.Format("2006")
	default:
		panic("unknown period")
	}
}
