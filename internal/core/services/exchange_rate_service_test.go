package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	"github.com/fbenitez/concesionaria_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindCurrentRate(ctx context.Context) (*domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindRateByDate(ctx context.Context, date time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	service      *services.ExchangeRateService
	defaultRate  decimal.Decimal
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.defaultRate = decimal.NewFromInt(1100)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, suite.defaultRate, time.Second)
}

func (suite *ExchangeRateServiceTestSuite) TestCurrentRate_Success() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindCurrentRate", mock.Anything).
		Return(&domain.ExchangeRate{Rate: decimal.NewFromInt(1250)}, nil).Once()

	rate := suite.service.CurrentRate(ctx)

	suite.True(rate.Equal(decimal.NewFromInt(1250)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCurrentRate_LookupFailureFallsBackToDefault() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindCurrentRate", mock.Anything).
		Return(nil, fmt.Errorf("connection refused")).Once()

	rate := suite.service.CurrentRate(ctx)

	suite.True(rate.Equal(suite.defaultRate))
}

func (suite *ExchangeRateServiceTestSuite) TestCurrentRate_NonPositiveRateFallsBackToDefault() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindCurrentRate", mock.Anything).
		Return(&domain.ExchangeRate{Rate: decimal.Zero}, nil).Once()

	rate := suite.service.CurrentRate(ctx)

	suite.True(rate.Equal(suite.defaultRate))
}

func (suite *ExchangeRateServiceTestSuite) TestResolveForDate_Success() {
	ctx := context.Background()
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	previous := decimal.NewFromInt(1000)
	suite.mockRateRepo.On("FindRateByDate", mock.Anything, date).
		Return(&domain.ExchangeRate{Rate: decimal.NewFromInt(1180), DateEffective: date}, nil).Once()

	rate := suite.service.ResolveForDate(ctx, date, previous)

	suite.True(rate.Equal(decimal.NewFromInt(1180)))
}

func (suite *ExchangeRateServiceTestSuite) TestResolveForDate_FailureKeepsPreviousSnapshot() {
	ctx := context.Background()
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	previous := decimal.NewFromInt(1000)
	suite.mockRateRepo.On("FindRateByDate", mock.Anything, date).
		Return(nil, fmt.Errorf("timeout")).Once()

	rate := suite.service.ResolveForDate(ctx, date, previous)

	suite.True(rate.Equal(previous))
}

func (suite *ExchangeRateServiceTestSuite) TestResolveForDate_NonPositiveRateKeepsPrevious() {
	ctx := context.Background()
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	previous := decimal.NewFromInt(1000)
	suite.mockRateRepo.On("FindRateByDate", mock.Anything, date).
		Return(&domain.ExchangeRate{Rate: decimal.NewFromInt(-1)}, nil).Once()

	rate := suite.service.ResolveForDate(ctx, date, previous)

	suite.True(rate.Equal(previous))
}

func (suite *ExchangeRateServiceTestSuite) TestGetRateByDate_PassesThrough() {
	ctx := context.Background()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	expected := &domain.ExchangeRate{RateID: "r1", Rate: decimal.NewFromInt(1050), DateEffective: date}
	suite.mockRateRepo.On("FindRateByDate", mock.Anything, date).Return(expected, nil).Once()

	rate, err := suite.service.GetRateByDate(ctx, date)

	suite.Require().NoError(err)
	suite.Equal(expected, rate)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
