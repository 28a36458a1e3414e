package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/etnz/rebalance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config {
	return config{currency: "USD", epsilon: rebalance.DefaultEpsilon}
}

func portfolio(t *testing.T, targets bool) portfolioFlags {
	t.Helper()
	var p portfolioFlags
	require.NoError(t, p.allocations.Set("Stocks=600"))
	require.NoError(t, p.allocations.Set("Bonds=$400"))
	if targets {
		require.NoError(t, p.targets.Set("Stocks=50"))
		require.NoError(t, p.targets.Set("Bonds=50%"))
	}
	return p
}

func TestAssignments_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    assignment
		wantErr bool
	}{
		{in: "Stocks=600", want: assignment{Name: "Stocks", Value: "600"}},
		{in: "US Stocks=1,000", want: assignment{Name: "US Stocks", Value: "1,000"}},
		{in: "a=b=3", want: assignment{Name: "a=b", Value: "3"}},
		{in: "Stocks=", want: assignment{Name: "Stocks", Value: ""}},
		{in: "Stocks", wantErr: true},
		{in: "=600", wantErr: true},
		{in: " =600", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var a assignments
			err := a.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, assignments{tt.want}, a)
		})
	}
}

func TestAssignments_String(t *testing.T) {
	var a assignments
	assert.Equal(t, "", a.String())
	require.NoError(t, a.Set("Stocks=600"))
	require.NoError(t, a.Set("Bonds=400"))
	assert.Equal(t, "Stocks=600,Bonds=400", a.String())
}

func TestBuildLedger(t *testing.T) {
	cfg := testConfig()
	p := portfolio(t, true)

	l, err := p.buildLedger(cfg.dispatcher(), cfg.currency)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bonds", "Stocks"}, l.Names())
	assert.True(t, l.IsComplete())
	assert.Equal(t, "$1,000.00", l.Total().String())
}

func TestBuildLedger_Errors(t *testing.T) {
	cfg := testConfig()

	var empty portfolioFlags
	_, err := empty.buildLedger(cfg.dispatcher(), cfg.currency)
	assert.Error(t, err)

	var bad portfolioFlags
	require.NoError(t, bad.allocations.Set("Stocks=lots"))
	_, err = bad.buildLedger(cfg.dispatcher(), cfg.currency)
	var perr *rebalance.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestCompute(t *testing.T) {
	c := &computeCmd{portfolioFlags: portfolio(t, true)}
	var out bytes.Buffer
	require.NoError(t, c.run(&out, testConfig()))
	assert.Equal(t, "Adjustments needed:\nBuy $100.00 of Bonds\nSell $100.00 of Stocks\n", out.String())
}

func TestCompute_Balanced(t *testing.T) {
	var p portfolioFlags
	require.NoError(t, p.allocations.Set("Stocks=500"))
	require.NoError(t, p.allocations.Set("Bonds=500"))
	require.NoError(t, p.targets.Set("Stocks=50"))
	require.NoError(t, p.targets.Set("Bonds=50"))

	c := &computeCmd{portfolioFlags: p}
	var out bytes.Buffer
	require.NoError(t, c.run(&out, testConfig()))
	assert.Equal(t, "Portfolio is balanced.\n", out.String())
}

func TestCompute_Epsilon(t *testing.T) {
	cfg := testConfig()
	cfg.epsilon = decimal.NewFromInt(100)

	c := &computeCmd{portfolioFlags: portfolio(t, true)}
	var out bytes.Buffer
	require.NoError(t, c.run(&out, cfg))
	assert.Equal(t, "Portfolio is balanced.\n", out.String())
}

func TestCompute_MissingTarget(t *testing.T) {
	c := &computeCmd{portfolioFlags: portfolio(t, false)}
	var out bytes.Buffer
	assert.Error(t, c.run(&out, testConfig()))
	assert.Empty(t, out.String())
}

func TestCompute_JSON(t *testing.T) {
	c := &computeCmd{portfolioFlags: portfolio(t, true), json: true}
	var out bytes.Buffer
	require.NoError(t, c.run(&out, testConfig()))

	var got struct {
		Currency    string
		Complete    bool
		Adjustments []struct {
			AssetClass string
			Action     string
			Amount     json.Number
		}
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "USD", got.Currency)
	assert.True(t, got.Complete)
	require.Len(t, got.Adjustments, 2)
	assert.Equal(t, "Bonds", got.Adjustments[0].AssetClass)
	assert.Equal(t, "buy", got.Adjustments[0].Action)
	assert.Equal(t, "100", got.Adjustments[0].Amount.String())
	assert.Equal(t, "sell", got.Adjustments[1].Action)
}

func TestCompute_Path(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "$.total", want: "1000\n"},
		{path: "$.currency", want: "USD\n"},
		{path: "$.adjustments[*].assetClass", want: "Bonds\nStocks\n"},
		{path: "$.holdings[0].weight", want: "0.4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c := &computeCmd{portfolioFlags: portfolio(t, true), path: tt.path}
			var out bytes.Buffer
			require.NoError(t, c.run(&out, testConfig()))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestCompute_InvalidPath(t *testing.T) {
	c := &computeCmd{portfolioFlags: portfolio(t, true), path: "$.["}
	var out bytes.Buffer
	assert.Error(t, c.run(&out, testConfig()))
}

func TestCompute_Markdown(t *testing.T) {
	c := &computeCmd{portfolioFlags: portfolio(t, true), markdown: true}
	var out bytes.Buffer
	require.NoError(t, c.run(&out, testConfig()))
	assert.Contains(t, out.String(), "Rebalancing Report")
	assert.Contains(t, out.String(), "Buy $100.00 of Bonds")
}

func TestCheck(t *testing.T) {
	c := &checkCmd{portfolioFlags: portfolio(t, false)}
	var out bytes.Buffer
	require.NoError(t, c.run(&out, testConfig()))
	assert.Equal(t,
		"Asset Class\tAmount\tWeight\tTarget\n"+
			"Bonds\t$400.00\t40.00%\t-\n"+
			"Stocks\t$600.00\t60.00%\t-\n"+
			"Total\t$1,000.00\t100.00%\t0.00%\n",
		out.String())
}
