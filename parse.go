package rebalance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errNegative   = errors.New("must not be negative")
	errOutOfRange = errors.New("must be between 0 and 100")
)

// ParseError reports an input that is not a valid number for the field it was entered for.
type ParseError struct {
	Field string // "amount" or "percent"
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseAmount parses a non negative amount in currency.
//
// Surrounding spaces, the currency symbol before or after the number, and ","
// digit group separators are ignored, so "$1,250.50" parses as 1250.50 in USD.
func ParseAmount(s, currency string) (Money, error) {
	in := strings.TrimSpace(s)
	if symbol := M(0, currency).currency().Grapheme; symbol != "" {
		in = strings.TrimPrefix(in, symbol)
		in = strings.TrimSuffix(in, symbol)
		in = strings.TrimSpace(in)
	}
	in = strings.ReplaceAll(in, ",", "")
	d, err := decimal.NewFromString(in)
	if err != nil {
		return Money{}, &ParseError{Field: "amount", Input: s, Err: err}
	}
	if d.IsNegative() {
		return Money{}, &ParseError{Field: "amount", Input: s, Err: errNegative}
	}
	return M(d, currency), nil
}

// ParsePercent parses a percentage between 0 and 100, with an optional "%" suffix.
// "50" and "50%" both parse as 50%.
func ParsePercent(s string) (Percent, error) {
	in := strings.TrimSpace(s)
	in = strings.TrimSpace(strings.TrimSuffix(in, "%"))
	d, err := decimal.NewFromString(in)
	if err != nil {
		return Percent{}, &ParseError{Field: "percent", Input: s, Err: err}
	}
	if d.IsNegative() || d.GreaterThan(hundred) {
		return Percent{}, &ParseError{Field: "percent", Input: s, Err: errOutOfRange}
	}
	return Points(d), nil
}
