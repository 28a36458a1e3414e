package rebalance

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCurrency is the currency of a ledger created without one.
const DefaultCurrency = "USD"

// number is the set of types accepted by the value constructors.
type number interface {
	float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T number](value T) decimal.Decimal {
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
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value as Money in currency.
func M[T number](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// fraction is the number of minor unit digits of the money's currency.
func (m Money) fraction() int32 { return int32(m.currency().Fraction) }

// String returns the money value rounded to the currency minor unit, formatted
// with the currency symbol, like "$1,234.50".
//
// Digits come from the decimal itself so that amounts of any size are exact.
func (m Money) String() string {
	cur := m.currency()
	f := cur.Formatter()
	rounded := m.value.Round(int32(f.Fraction))

	digits := rounded.Abs().StringFixed(int32(f.Fraction))
	units, cents, _ := strings.Cut(digits, ".")
	if f.Thousand != "" {
		for i := len(units) - 3; i > 0; i -= 3 {
			units = units[:i] + f.Thousand + units[i:]
		}
	}
	if cents != "" {
		units += f.Decimal + cents
	}

	template, grapheme := f.Template, f.Grapheme
	if template == "" {
		// unknown currency: show its code
		template, grapheme = "1 $", m.cur
		if m.cur == "" {
			template = "1"
		}
	}
	s := strings.Replace(template, "1", units, 1)
	s = strings.Replace(s, "$", grapheme, 1)
	if rounded.IsNegative() {
		s = "-" + s
	}
	return s
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Mul(p Percent) Money             { return Money{value: m.value.Mul(p.value), cur: m.cur} }

// Round returns m rounded to its currency minor unit.
func (m Money) Round() Money { return Money{value: m.value.Round(m.fraction()), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Ratio returns m as a fraction of n. A zero n yields a zero ratio.
func (m Money) Ratio(n Money) Percent {
	if n.value.IsZero() {
		return Percent{}
	}
	return Percent{value: m.value.DivRound(n.value, ratioPrecision)}
}

// ratioPrecision is the number of decimal places kept by Money.Ratio.
const ratioPrecision = 16

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.Round().IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w orderedObject
	w.SetNonZero("currency", m.cur)
	w.Set("amount", m.value)
	return w.MarshalJSON()
}
