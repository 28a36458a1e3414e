package shell

import (
	"testing"

	"github.com/etnz/rebalance"
	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	l := rebalance.NewLedger("USD")
	assert.Equal(t, Empty, StateOf(l))

	l.AddAssetClass("Stocks")
	l.AddAssetClass("Bonds")
	assert.Equal(t, HasAssets, StateOf(l))

	assert.NoError(t, l.SetTarget("Stocks", rebalance.Points(50)))
	assert.Equal(t, HasAssets, StateOf(l))

	assert.NoError(t, l.SetTarget("Bonds", rebalance.Points(50)))
	assert.Equal(t, Complete, StateOf(l))

	// a new asset class has no target yet.
	l.AddAssetClass("Cash")
	assert.Equal(t, HasAssets, StateOf(l))
}

func TestActions(t *testing.T) {
	tests := []struct {
		state State
		want  []Action
	}{
		{Empty, []Action{AddAssetClass, Exit}},
		{HasAssets, []Action{AddAssetClass, SetAllocation, SetTarget, CheckPortfolio, Exit}},
		{Complete, []Action{AddAssetClass, SetAllocation, SetTarget, CheckPortfolio, ComputeExchange, Exit}},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Actions(tt.state))
			for _, a := range tt.want {
				assert.True(t, Allowed(tt.state, a), "%s should be allowed", a)
			}
		})
	}
	assert.False(t, Allowed(Empty, SetTarget))
	assert.False(t, Allowed(HasAssets, ComputeExchange))
}

func TestParseAction(t *testing.T) {
	a, ok := ParseAction("compute exchange")
	assert.True(t, ok)
	assert.Equal(t, ComputeExchange, a)

	a, ok = ParseAction("  SetTarget ")
	assert.True(t, ok)
	assert.Equal(t, SetTarget, a)

	_, ok = ParseAction("delete")
	assert.False(t, ok)
}
