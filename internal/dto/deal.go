package dto

// MoneyRequest carries a monetary value as entered in a form. Amounts and
// rates arrive as strings so one malformed field degrades to a zero
// contribution instead of failing the whole request.
type MoneyRequest struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency" binding:"omitempty,oneof=ARS USD"`
	ExchangeRate string `json:"exchangeRate"`
	AsOfDate     string `json:"asOfDate" binding:"dateonly"` // YYYY-MM-DD
}

// PaymentComponentRequest is one payment component of a deal snapshot.
type PaymentComponentRequest struct {
	ComponentID string       `json:"componentID"`
	Kind        string       `json:"kind" binding:"required,oneof=DEPOSIT CASH TRADE_IN FINANCING"`
	Money       MoneyRequest `json:"money" binding:"required"`

	TradeInVehicle string `json:"tradeInVehicle"`
	Appraised      bool   `json:"appraised"`

	Bank             string `json:"bank"`
	InstallmentCount int    `json:"installmentCount" binding:"omitempty,min=0"`
	InstallmentValue string `json:"installmentValue"`
}

// DealRequest is the immutable deal snapshot handed in by the application
// layer for settlement or document computation.
type DealRequest struct {
	DealID                 string                    `json:"dealID"`
	Kind                   string                    `json:"kind" binding:"required,oneof=SALE QUOTE RESERVATION"`
	Status                 string                    `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
	Price                  MoneyRequest              `json:"price" binding:"required"`
	Components             []PaymentComponentRequest `json:"components" binding:"dive"`
	BalanceDueDate         string                    `json:"balanceDueDate" binding:"dateonly"` // YYYY-MM-DD, optional
	TransferExpensesClause bool                      `json:"transferExpensesClause"`
}

// PartyRequest carries buyer or seller identity fields. All optional;
// missing values render as visible blanks on the document.
type PartyRequest struct {
	Name       string `json:"name"`
	NationalID string `json:"nationalID"`
	TaxID      string `json:"taxID"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// VehicleRequest carries the vehicle identity fields for the object clause.
type VehicleRequest struct {
	Brand              string `json:"brand"`
	Model              string `json:"model"`
	Year               string `json:"year"`
	Plate              string `json:"plate"`
	EngineBrand        string `json:"engineBrand"`
	EngineNumber       string `json:"engineNumber"`
	ChassisBrand       string `json:"chassisBrand"`
	ChassisNumber      string `json:"chassisNumber"`
	RegistrationLocale string `json:"registrationLocale"`
	Odometer           string `json:"odometer"`
}
