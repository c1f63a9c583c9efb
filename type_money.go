package grana

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed for amounts recorded without one.
const DefaultCurrency = "BRL"

// Money represents an exact monetary value.
//
// Amounts are kept as base-10 decimals so that cent precision survives every
// derivation; binary floating point never enters the computation.
type Money struct {
	value decimal.Decimal // major unit value
	cur   string
}

// M creates a Money from a numeric value and a currency code.
// An empty currency is weak: it adopts the other operand's currency in
// arithmetic and falls back to DefaultCurrency for display.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// BRL is a shorthand constructor for amounts in the default currency.
func BRL[T float32 | float64 | int | int32 | int64](value T) Money {
	return M(value, DefaultCurrency)
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Decimal{}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = DefaultCurrency
	}
	return *money.New(0, cur).Currency()
}

// String returns the formatted representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// splitTolerance absorbs the rounding drift of split parts recorded by hand.
var splitTolerance = decimal.New(1, -6) // 1e-6

// NearlyEqual reports whether two amounts differ by no more than the split
// rounding tolerance.
func (m Money) NearlyEqual(n Money) bool {
	return m.value.Sub(n.value).Abs().LessThanOrEqual(splitTolerance)
}

// Percent returns 100*m/n clamped to [0,100]. A zero denominator yields 0,
// never NaN or infinity.
func (m Money) Percent(n Money) float64 {
	if n.value.IsZero() {
		return 0
	}
	p, _ := m.value.Div(n.value).Mul(decimal.NewFromInt(100)).Float64()
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// SignedString returns the string representation with an explicit sign.
// Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}
