package rebalance

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "600", want: "600"},
		{input: " 600.25 ", want: "600.25"},
		{input: "$1,250.50", want: "1250.5"},
		{input: "0", want: "0"},
		{input: "0.1", want: "0.1"},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
		{input: "12abc", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "1e20", want: "100000000000000000000"},
		{input: "100000000000000000", want: "100000000000000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAmount(tc.input, "USD")
			if tc.wantErr {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("ParseAmount(%q) error = %v, want a *ParseError", tc.input, err)
				}
				if perr.Field != "amount" {
					t.Errorf("ParseError.Field = %q, want %q", perr.Field, "amount")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.input, err)
			}
			if got.Decimal().String() != tc.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.input, got.Decimal(), tc.want)
			}
			if got.Currency() != "USD" {
				t.Errorf("ParseAmount(%q) currency = %q, want USD", tc.input, got.Currency())
			}
		})
	}
}

func TestParseAmount_CurrencySymbol(t *testing.T) {
	testCases := []struct {
		input    string
		currency string
		want     string
		wantErr  bool
	}{
		{input: "€12", currency: "EUR", want: "12"},
		{input: "12 €", currency: "EUR", want: "12"},
		{input: "€ 12.50", currency: "EUR", want: "12.5"},
		{input: "$12", currency: "EUR", wantErr: true},
		{input: "£7", currency: "GBP", want: "7"},
		{input: "$7", currency: "USD", want: "7"},
	}
	for _, tc := range testCases {
		t.Run(tc.currency+" "+tc.input, func(t *testing.T) {
			got, err := ParseAmount(tc.input, tc.currency)
			if tc.wantErr {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("ParseAmount(%q, %q) error = %v, want a *ParseError", tc.input, tc.currency, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q, %q) unexpected error: %v", tc.input, tc.currency, err)
			}
			if got.Decimal().String() != tc.want {
				t.Errorf("ParseAmount(%q, %q) = %s, want %s", tc.input, tc.currency, got.Decimal(), tc.want)
			}
		})
	}
}

// Large amounts are displayed with every digit.
func TestParseAmount_LargeDisplay(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"1e20", "$100,000,000,000,000,000,000.00"},
		{"100000000000000000", "$100,000,000,000,000,000.00"},
		{"92233720368547758.08", "$92,233,720,368,547,758.08"},
	}
	for _, tc := range testCases {
		m, err := ParseAmount(tc.input, "USD")
		if err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.input, err)
		}
		if got := m.String(); got != tc.want {
			t.Errorf("ParseAmount(%q).String() = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParsePercent(t *testing.T) {
	testCases := []struct {
		input   string
		want    Percent
		wantErr bool
	}{
		{input: "50", want: Points(50)},
		{input: "50%", want: Points(50)},
		{input: " 12.5 % ", want: Points(12.5)},
		{input: "0", want: Points(0)},
		{input: "100", want: Points(100)},
		{input: "100.01", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "half", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePercent(tc.input)
			if tc.wantErr {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("ParsePercent(%q) error = %v, want a *ParseError", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePercent(%q) unexpected error: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParsePercent(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := ParsePercent("120")
	if err == nil {
		t.Fatal("ParsePercent(\"120\") should fail")
	}
	want := `invalid percent "120": must be between 0 and 100`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, errOutOfRange) {
		t.Errorf("ParseError should unwrap to errOutOfRange")
	}
}
