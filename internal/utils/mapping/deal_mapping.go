package mapping

import (
	"time"

	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	"github.com/fbenitez/concesionaria_app/internal/dto"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// parseAmount parses a decimal field leniently: a non-numeric or empty value
// becomes zero so one bad field never blocks computing the rest of the
// settlement or document.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseDate parses an optional YYYY-MM-DD field; invalid values map to the
// zero time.
func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ToDomainMoney converts a money DTO to its domain form.
func ToDomainMoney(m dto.MoneyRequest) domain.Money {
	currency := domain.Currency(m.Currency)
	if currency != domain.USD {
		currency = domain.ARS
	}
	return domain.Money{
		Amount:       parseAmount(m.Amount),
		Currency:     currency,
		ExchangeRate: parseAmount(m.ExchangeRate),
		AsOfDate:     parseDate(m.AsOfDate),
	}
}

// ToDomainDeal converts a deal snapshot DTO to its domain form.
func ToDomainDeal(req dto.DealRequest) domain.Deal {
	components := make([]domain.PaymentComponent, len(req.Components))
	for i, c := range req.Components {
		components[i] = domain.PaymentComponent{
			ComponentID:      c.ComponentID,
			Kind:             domain.ComponentKind(c.Kind),
			Money:            ToDomainMoney(c.Money),
			TradeInVehicle:   c.TradeInVehicle,
			Appraised:        c.Appraised,
			Bank:             c.Bank,
			InstallmentCount: c.InstallmentCount,
			InstallmentValue: parseAmount(c.InstallmentValue),
		}
	}

	deal := domain.Deal{
		DealID:                 req.DealID,
		Kind:                   domain.DealKind(req.Kind),
		Status:                 domain.DealStatus(req.Status),
		Price:                  ToDomainMoney(req.Price),
		Components:             components,
		TransferExpensesClause: req.TransferExpensesClause,
	}
	if due := parseDate(req.BalanceDueDate); !due.IsZero() {
		deal.BalanceDueDate = &due
	}
	return deal
}

// ToDomainParty converts a party DTO to its domain form.
func ToDomainParty(p dto.PartyRequest) domain.Party {
	return domain.Party{
		Name:       p.Name,
		NationalID: p.NationalID,
		TaxID:      p.TaxID,
		Phone:      p.Phone,
		Address:    p.Address,
	}
}

// ToDomainVehicle converts a vehicle DTO to its domain form.
func ToDomainVehicle(v dto.VehicleRequest) domain.Vehicle {
	return domain.Vehicle{
		Brand:              v.Brand,
		Model:              v.Model,
		Year:               v.Year,
		Plate:              v.Plate,
		EngineBrand:        v.EngineBrand,
		EngineNumber:       v.EngineNumber,
		ChassisBrand:       v.ChassisBrand,
		ChassisNumber:      v.ChassisNumber,
		RegistrationLocale: v.RegistrationLocale,
		Odometer:           v.Odometer,
	}
}

// ToRenderDate parses the optional document date; zero means "today" and is
// resolved by the document service.
func ToRenderDate(s string) time.Time {
	return parseDate(s)
}
