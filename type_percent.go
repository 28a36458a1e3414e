package rebalance

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent is a ratio stored as a decimal fraction: 50% is stored as 0.5.
type Percent struct {
	value decimal.Decimal
}

// Points returns the Percent for v percentage points, Points(50) is 50%.
func Points[T number](v T) Percent { return Percent{value: newDecimal(v).Div(hundred)} }

// Fraction returns the Percent for the fraction v, Fraction(0.5) is 50%.
func Fraction[T number](v T) Percent { return Percent{value: newDecimal(v)} }

// Fraction returns the percent as a decimal fraction.
func (p Percent) Fraction() decimal.Decimal { return p.value }

// Points returns the percent in percentage points.
func (p Percent) Points() decimal.Decimal { return p.value.Mul(hundred) }

func (p Percent) Equal(q Percent) bool  { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool          { return p.value.IsZero() }
func (p Percent) Add(q Percent) Percent { return Percent{value: p.value.Add(q.value)} }
func (p Percent) Sub(q Percent) Percent { return Percent{value: p.value.Sub(q.value)} }

func (p Percent) String() string {
	return p.Points().StringFixed(2) + "%"
}

func (p Percent) SignedString() string {
	s := p.Points().StringFixed(2)
	if s == "0.00" || s == "-0.00" {
		return "-"
	}
	if p.value.IsPositive() {
		s = "+" + s
	}
	return s + "%"
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}
