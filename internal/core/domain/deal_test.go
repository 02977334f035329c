package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentsOfKind(t *testing.T) {
	deal := Deal{
		Components: []PaymentComponent{
			{ComponentID: "c1", Kind: Deposit},
			{ComponentID: "c2", Kind: TradeIn},
			{ComponentID: "c3", Kind: Deposit},
			{ComponentID: "c4", Kind: Financing},
		},
	}

	deposits := deal.ComponentsOfKind(Deposit)
	assert.Len(t, deposits, 2)
	assert.Equal(t, "c1", deposits[0].ComponentID, "order from the deal is preserved")
	assert.Equal(t, "c3", deposits[1].ComponentID)

	assert.Empty(t, deal.ComponentsOfKind(Cash))
}

func TestReducesPrice(t *testing.T) {
	tests := []struct {
		kind ComponentKind
		want bool
	}{
		{Deposit, true},
		{Cash, true},
		{TradeIn, true},
		{Financing, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, PaymentComponent{Kind: tt.kind}.ReducesPrice())
		})
	}
}
