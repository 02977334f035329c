package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	"github.com/fbenitez/concesionaria_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// stubRateResolver is a deterministic RateResolverSvc for service tests.
type stubRateResolver struct {
	currentRate decimal.Decimal
	dateRate    decimal.Decimal // zero means "lookup failed, keep previous"
}

func (s *stubRateResolver) CurrentRate(ctx context.Context) decimal.Decimal {
	return s.currentRate
}

func (s *stubRateResolver) ResolveForDate(ctx context.Context, date time.Time, previous decimal.Decimal) decimal.Decimal {
	if s.dateRate.LessThanOrEqual(decimal.Zero) {
		return previous
	}
	return s.dateRate
}

// --- Test Suite ---
type SettlementServiceTestSuite struct {
	suite.Suite
	rates   *stubRateResolver
	service *services.SettlementService
}

func (suite *SettlementServiceTestSuite) SetupTest() {
	suite.rates = &stubRateResolver{currentRate: decimal.NewFromInt(1200)}
	suite.service = services.NewSettlementService(suite.rates)
}

func (suite *SettlementServiceTestSuite) TestComputeSettlement_UsesCurrentRateAsFallback() {
	// A dollar component without a snapshot converts with the rate resolved
	// at the call boundary.
	deal := domain.Deal{
		Price: domain.Money{Amount: decimal.NewFromInt(12_000_000), Currency: domain.ARS},
		Components: []domain.PaymentComponent{
			{Kind: domain.Deposit, Money: domain.Money{Amount: decimal.NewFromInt(1_000), Currency: domain.USD}},
		},
	}

	result := suite.service.ComputeSettlement(context.Background(), deal)

	suite.True(result.TotalPaidARS.Equal(decimal.NewFromInt(1_200_000)))
	suite.True(result.BalanceARS.Equal(decimal.NewFromInt(10_800_000)))
	suite.Equal(domain.BalanceDue, result.Framing)
}

func (suite *SettlementServiceTestSuite) TestComputeSettlement_SnapshotWinsOverCurrentRate() {
	deal := domain.Deal{
		Price: domain.Money{
			Amount:       decimal.NewFromInt(10_000),
			Currency:     domain.USD,
			ExchangeRate: decimal.NewFromInt(1000),
		},
	}

	result := suite.service.ComputeSettlement(context.Background(), deal)

	suite.True(result.TotalPriceARS.Equal(decimal.NewFromInt(10_000_000)))
}

func (suite *SettlementServiceTestSuite) TestRepriceMoney_SubstitutesHistoricalRate() {
	suite.rates.dateRate = decimal.NewFromInt(980)
	date := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	m := domain.Money{
		Amount:       decimal.NewFromInt(500),
		Currency:     domain.USD,
		ExchangeRate: decimal.NewFromInt(1200),
	}

	got := suite.service.RepriceMoney(context.Background(), m, date)

	suite.True(got.ExchangeRate.Equal(decimal.NewFromInt(980)))
	suite.Equal(date, got.AsOfDate)
	suite.True(got.Amount.Equal(m.Amount))
}

func (suite *SettlementServiceTestSuite) TestRepriceMoney_LookupFailureKeepsPreviousSnapshot() {
	suite.rates.dateRate = decimal.Zero
	date := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	m := domain.Money{
		Amount:       decimal.NewFromInt(500),
		Currency:     domain.USD,
		ExchangeRate: decimal.NewFromInt(1200),
	}

	got := suite.service.RepriceMoney(context.Background(), m, date)

	suite.True(got.ExchangeRate.Equal(decimal.NewFromInt(1200)))
	suite.Equal(date, got.AsOfDate)
}

func (suite *SettlementServiceTestSuite) TestRepriceMoney_ARSOnlyMovesDate() {
	suite.rates.dateRate = decimal.NewFromInt(980)
	date := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	m := domain.Money{Amount: decimal.NewFromInt(100_000), Currency: domain.ARS}

	got := suite.service.RepriceMoney(context.Background(), m, date)

	suite.True(got.ExchangeRate.IsZero())
	suite.Equal(date, got.AsOfDate)
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}
