package dto

import "github.com/fbenitez/concesionaria_app/internal/core/domain"

// SettlementResponse is the on-screen settlement summary. Figures are
// decimal strings to keep full precision on the wire.
type SettlementResponse struct {
	TotalPriceARS string `json:"totalPriceARS"`
	TotalPaidARS  string `json:"totalPaidARS"`
	FinancingARS  string `json:"financingARS"`
	BalanceARS    string `json:"balanceARS"`
	Framing       string `json:"framing"`
}

// ToSettlementResponse converts a domain.Settlement to its response DTO.
func ToSettlementResponse(s domain.Settlement) SettlementResponse {
	return SettlementResponse{
		TotalPriceARS: s.TotalPriceARS.String(),
		TotalPaidARS:  s.TotalPaidARS.String(),
		FinancingARS:  s.FinancingARS.String(),
		BalanceARS:    s.BalanceARS.String(),
		Framing:       string(s.Framing),
	}
}

// RepriceMoneyRequest asks for a money value's rate snapshot to be replaced
// with the rate effective at the given date, as happens when the operator
// edits a payment date.
type RepriceMoneyRequest struct {
	Money MoneyRequest `json:"money" binding:"required"`
	Date  string       `json:"date" binding:"required,dateonly"` // YYYY-MM-DD
}

// MoneyResponse returns a money value with its applied rate snapshot.
type MoneyResponse struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	ExchangeRate string `json:"exchangeRate"`
	AsOfDate     string `json:"asOfDate"` // YYYY-MM-DD
}

// ToMoneyResponse converts a domain.Money to its response DTO.
func ToMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{
		Amount:       m.Amount.String(),
		Currency:     string(m.Currency),
		ExchangeRate: m.ExchangeRate.String(),
		AsOfDate:     m.AsOfDate.Format("2006-01-02"),
	}
}
