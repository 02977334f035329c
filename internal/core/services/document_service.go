package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/fbenitez/concesionaria_app/internal/apperrors"
	"github.com/fbenitez/concesionaria_app/internal/core/domain"
	portsrepo "github.com/fbenitez/concesionaria_app/internal/core/ports/repositories"
	portssvc "github.com/fbenitez/concesionaria_app/internal/core/ports/services"
	"github.com/fbenitez/concesionaria_app/internal/middleware"
	"github.com/fbenitez/concesionaria_app/internal/utils"
	"github.com/fbenitez/concesionaria_app/internal/utils/numerals"
	"github.com/fbenitez/concesionaria_app/internal/utils/settlement"
	"github.com/fbenitez/concesionaria_app/internal/utils/templating"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentService renders the legal document body for a deal and persists
// the two user-editable sections. Rendering is deterministic over the input
// snapshot: the computed clauses are regenerated on every render, so edits
// to them are discarded on reopen.
type DocumentService struct {
	rates      portssvc.RateResolverSvc
	docRepo    portsrepo.ContractDocumentRepositoryFacade
	clauseRepo portsrepo.ClauseTemplateReader
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(rates portssvc.RateResolverSvc, docRepo portsrepo.ContractDocumentRepositoryFacade, clauseRepo portsrepo.ClauseTemplateReader) *DocumentService {
	return &DocumentService{
		rates:      rates,
		docRepo:    docRepo,
		clauseRepo: clauseRepo,
	}
}

// RenderContract assembles the contract body in its fixed structural order:
// intro, vehicle clause, price-and-payment clause, boilerplate, optional
// observations, ratification block. The fallback exchange rate is resolved
// once here and passed explicitly into every conversion.
func (s *DocumentService) RenderContract(ctx context.Context, input portssvc.RenderContractInput) (*domain.ContractDocument, *domain.Settlement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	fallbackRate := s.rates.CurrentRate(ctx)
	result := settlement.Compute(input.Deal, fallbackRate)

	values := s.tokenValues(input, result, fallbackRate, date)

	boilerplate, err := s.boilerplate(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	sections := []string{
		templating.Render(introTemplate, values),
		templating.Render(vehicleClauseTemplate, values),
		templating.Render(priceClauseTemplate, values),
		templating.Render(boilerplate, values),
	}
	if obs := strings.TrimSpace(input.Observations); obs != "" {
		sections = append(sections, observationsHeading+obs)
	}
	sections = append(sections, templating.Render(ratificationBlock, values))

	doc := &domain.ContractDocument{
		DocumentID:   uuid.NewString(),
		DealID:       input.Deal.DealID,
		ClauseBody:   input.ClauseBody,
		Observations: input.Observations,
		RenderedBody: strings.Join(sections, "\n\n"),
	}

	logger.Info("Contract rendered",
		slog.String("deal_id", input.Deal.DealID),
		slog.String("framing", string(result.Framing)),
		slog.Int("body_length", len(doc.RenderedBody)))

	return doc, &result, nil
}

// boilerplate picks the boilerplate section: a named template from the
// clause library when requested, otherwise the user-edited clause body,
// otherwise the default clauses.
func (s *DocumentService) boilerplate(ctx context.Context, input portssvc.RenderContractInput) (string, error) {
	if name := strings.TrimSpace(input.ClauseTemplateName); name != "" {
		tmpl, err := s.clauseRepo.FindClauseTemplateByName(ctx, name)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return "", fmt.Errorf("%w: clause template '%s' not found", apperrors.ErrValidation, name)
			}
			return "", fmt.Errorf("failed to load clause template '%s': %w", name, err)
		}
		return tmpl.Body, nil
	}
	if strings.TrimSpace(input.ClauseBody) != "" {
		return input.ClauseBody, nil
	}
	return defaultBoilerplate, nil
}

// tokenValues builds the full substitution map for one render. Every token
// in the vocabulary gets an entry: party and vehicle fields degrade to a
// visible blank run, settlement blocks degrade to the empty string.
func (s *DocumentService) tokenValues(input portssvc.RenderContractInput, result domain.Settlement, fallbackRate decimal.Decimal, date time.Time) map[string]string {
	deal := input.Deal

	return map[string]string{
		templating.TokenDia:         strconv.Itoa(date.Day()),
		templating.TokenMes:         monthNames[date.Month()-1],
		templating.TokenAnio:        strconv.Itoa(date.Year()),
		templating.TokenFecha:       date.Format("02/01/2006"),
		templating.TokenFechaLetras: longDate(date),

		templating.TokenCompradorNombre:    templating.Field(input.Buyer.Name),
		templating.TokenCompradorDNI:       templating.Field(input.Buyer.NationalID),
		templating.TokenCompradorCUIT:      templating.Field(input.Buyer.TaxID),
		templating.TokenCompradorTelefono:  templating.Field(input.Buyer.Phone),
		templating.TokenCompradorDomicilio: templating.Field(input.Buyer.Address),

		templating.TokenVendedorNombre:    templating.Field(input.Seller.Name),
		templating.TokenVendedorDNI:       templating.Field(input.Seller.NationalID),
		templating.TokenVendedorCUIT:      templating.Field(input.Seller.TaxID),
		templating.TokenVendedorTelefono:  templating.Field(input.Seller.Phone),
		templating.TokenVendedorDomicilio: templating.Field(input.Seller.Address),

		templating.TokenVehiculoMarca:        templating.Field(input.Vehicle.Brand),
		templating.TokenVehiculoModelo:       templating.Field(input.Vehicle.Model),
		templating.TokenVehiculoAnio:         templating.Field(input.Vehicle.Year),
		templating.TokenVehiculoPatente:      templating.Field(input.Vehicle.Plate),
		templating.TokenVehiculoMotorMarca:   templating.Field(input.Vehicle.EngineBrand),
		templating.TokenVehiculoMotorNumero:  templating.Field(input.Vehicle.EngineNumber),
		templating.TokenVehiculoChasisMarca:  templating.Field(input.Vehicle.ChassisBrand),
		templating.TokenVehiculoChasisNumero: templating.Field(input.Vehicle.ChassisNumber),
		templating.TokenVehiculoRadicacion:   templating.Field(input.Vehicle.RegistrationLocale),
		templating.TokenVehiculoKilometraje:  templating.Field(input.Vehicle.Odometer),

		templating.TokenPrecioTotal:       utils.FormatARSWithSymbol(result.TotalPriceARS),
		templating.TokenPrecioTotalLetras: numerals.AmountInWords(result.TotalPriceARS),

		templating.TokenBloqueSena:                depositSentence(deal, fallbackRate),
		templating.TokenBloqueContado:             cashSentence(deal, fallbackRate),
		templating.TokenBloqueUsados:              tradeInSentences(deal, fallbackRate),
		templating.TokenBloqueFinanciacion:        financingSentence(deal, fallbackRate),
		templating.TokenBloqueSaldo:               balanceSentence(deal, result),
		templating.TokenBloqueGastosTransferencia: transferExpensesSentence(deal),
	}
}

// GetContractDocument retrieves the persisted edits for a deal.
func (s *DocumentService) GetContractDocument(ctx context.Context, dealID string) (*domain.ContractDocument, error) {
	if dealID == "" {
		return nil, fmt.Errorf("%w: deal ID is required", apperrors.ErrValidation)
	}
	doc, err := s.docRepo.FindContractDocumentByDealID(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contract document: %w", err)
	}
	return doc, nil
}

// SaveContractDocumentEdits upserts the clause body and observations, the
// only two persisted fields of a document.
func (s *DocumentService) SaveContractDocumentEdits(ctx context.Context, dealID, clauseBody, observations, editorUserID string) (*domain.ContractDocument, error) {
	if dealID == "" {
		return nil, fmt.Errorf("%w: deal ID is required", apperrors.ErrValidation)
	}

	now := time.Now()
	doc := domain.ContractDocument{
		DocumentID:   uuid.NewString(),
		DealID:       dealID,
		ClauseBody:   clauseBody,
		Observations: observations,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     editorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: editorUserID,
		},
	}

	if err := s.docRepo.UpsertContractDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save contract document edits: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Contract document edits saved",
		slog.String("deal_id", dealID))
	return &doc, nil
}
