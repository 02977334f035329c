package mapping_test

import (
	"testing"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	"github.com/fbenitez/concesionaria_app/internal/dto"
	"github.com/fbenitez/concesionaria_app/internal/utils/mapping"
	"github.com/fbenitez/concesionaria_app/internal/utils/settlement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainMoney(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.MoneyRequest
		wantAmount int64
		wantRate   int64
		wantCurr   domain.Currency
	}{
		{
			name:       "valid peso amount",
			req:        dto.MoneyRequest{Amount: "150000", Currency: "ARS"},
			wantAmount: 150000,
			wantCurr:   domain.ARS,
		},
		{
			name:       "valid dollar amount with snapshot",
			req:        dto.MoneyRequest{Amount: "100", Currency: "USD", ExchangeRate: "1200", AsOfDate: "2025-06-15"},
			wantAmount: 100,
			wantRate:   1200,
			wantCurr:   domain.USD,
		},
		{
			name:       "malformed amount maps to zero",
			req:        dto.MoneyRequest{Amount: "1.5M", Currency: "ARS"},
			wantAmount: 0,
			wantCurr:   domain.ARS,
		},
		{
			name:       "empty amount maps to zero",
			req:        dto.MoneyRequest{Currency: "ARS"},
			wantAmount: 0,
			wantCurr:   domain.ARS,
		},
		{
			name:       "malformed exchange rate maps to zero",
			req:        dto.MoneyRequest{Amount: "100", Currency: "USD", ExchangeRate: "unknown"},
			wantAmount: 100,
			wantRate:   0,
			wantCurr:   domain.USD,
		},
		{
			name:       "unknown currency defaults to pesos",
			req:        dto.MoneyRequest{Amount: "500", Currency: "EUR"},
			wantAmount: 500,
			wantCurr:   domain.ARS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapping.ToDomainMoney(tt.req)
			assert.True(t, got.Amount.Equal(decimal.NewFromInt(tt.wantAmount)), "amount: got %s", got.Amount)
			assert.True(t, got.ExchangeRate.Equal(decimal.NewFromInt(tt.wantRate)), "rate: got %s", got.ExchangeRate)
			assert.Equal(t, tt.wantCurr, got.Currency)
		})
	}
}

func TestToDomainMoney_InvalidDateMapsToZeroTime(t *testing.T) {
	got := mapping.ToDomainMoney(dto.MoneyRequest{Amount: "100", Currency: "USD", AsOfDate: "15/06/2025"})
	assert.True(t, got.AsOfDate.IsZero())
}

func TestToDomainDeal_BadFieldNeverBlocksSiblings(t *testing.T) {
	// One malformed amount degrades to a zero contribution; the other
	// components and the settlement over them are unaffected.
	req := dto.DealRequest{
		DealID: "deal-1",
		Kind:   "SALE",
		Price:  dto.MoneyRequest{Amount: "10000000", Currency: "ARS"},
		Components: []dto.PaymentComponentRequest{
			{Kind: "DEPOSIT", Money: dto.MoneyRequest{Amount: "not-a-number", Currency: "ARS"}},
			{Kind: "CASH", Money: dto.MoneyRequest{Amount: "2000000", Currency: "ARS"}},
			{Kind: "FINANCING", Money: dto.MoneyRequest{Amount: "500000", Currency: "ARS"}, InstallmentValue: "12x50000"},
		},
		BalanceDueDate: "2026-02-30",
	}

	deal := mapping.ToDomainDeal(req)

	assert.True(t, deal.Components[0].Money.Amount.IsZero())
	assert.True(t, deal.Components[1].Money.Amount.Equal(decimal.NewFromInt(2_000_000)))
	assert.True(t, deal.Components[2].Money.Amount.Equal(decimal.NewFromInt(500_000)))
	assert.True(t, deal.Components[2].InstallmentValue.IsZero())
	assert.Nil(t, deal.BalanceDueDate, "an impossible calendar date is dropped")

	result := settlement.Compute(deal, decimal.Zero)
	assert.True(t, result.TotalPaidARS.Equal(decimal.NewFromInt(2_000_000)))
	assert.True(t, result.FinancingARS.Equal(decimal.NewFromInt(500_000)))
	assert.True(t, result.BalanceARS.Equal(decimal.NewFromInt(7_500_000)))
}

func TestToDomainDeal_BalanceDueDateParsed(t *testing.T) {
	req := dto.DealRequest{
		Kind:           "SALE",
		Price:          dto.MoneyRequest{Amount: "1000000", Currency: "ARS"},
		BalanceDueDate: "2026-03-15",
	}

	deal := mapping.ToDomainDeal(req)

	assert.NotNil(t, deal.BalanceDueDate)
	assert.Equal(t, 15, deal.BalanceDueDate.Day())
}
