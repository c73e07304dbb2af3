package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bussnote/bussnote_backend/internal/apperrors"
	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
	portssvc "github.com/bussnote/bussnote_backend/internal/core/ports/services"
	"github.com/bussnote/bussnote_backend/internal/dto"
	"github.com/bussnote/bussnote_backend/internal/middleware"
	"github.com/bussnote/bussnote_backend/internal/utils/invoicecalc"
)

var (
	// ErrBuyerSameAsSeller carries the buyer field name so the client can
	// attach the error to the buyer selection specifically.
	ErrBuyerSameAsSeller  = fmt.Errorf("%w: buyerPartyID: buyer must differ from seller", apperrors.ErrValidation)
	ErrItemDescMissing    = fmt.Errorf("%w: item description is required", apperrors.ErrValidation)
	ErrNegativeDueDays    = fmt.Errorf("%w: dueDays must not be negative", apperrors.ErrValidation)
	ErrInvalidStatus      = fmt.Errorf("%w: unknown invoice status", apperrors.ErrValidation)
	ErrExchangeRateNotPos = fmt.Errorf("%w: exchangeRate must be greater than zero", apperrors.ErrValidation)
)

// invoiceService implements the invoice business operations.
type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepository
	partyRepo   portsrepo.PartyRepository
	activitySvc portssvc.ActivitySvcFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, partyRepo portsrepo.PartyRepository, activitySvc portssvc.ActivitySvcFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		partyRepo:   partyRepo,
		activitySvc: activitySvc,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// validateItems checks the line-item preconditions: non-empty description,
// positive quantity, non-negative rate, both with at most two decimals.
func validateItems(items []dto.InvoiceItemRequest) error {
	for i, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			return fmt.Errorf("%w (item %d)", ErrItemDescMissing, i+1)
		}
		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: item %d quantity must be positive", apperrors.ErrValidation, i+1)
		}
		if item.Rate.IsNegative() {
			return fmt.Errorf("%w: item %d rate must not be negative", apperrors.ErrValidation, i+1)
		}
		if !item.Quantity.Equal(item.Quantity.Round(2)) || !item.Rate.Equal(item.Rate.Round(2)) {
			return fmt.Errorf("%w: item %d quantity and rate allow at most two decimals", apperrors.ErrValidation, i+1)
		}
	}
	return nil
}

// validateRates checks the rate inputs. The exchange rate rule is currency
// conditional: INR invoices are pinned later, any other currency requires a
// strictly positive rate.
func validateRates(currencyCode string, brokerageRate, exchangeRate, receivedBrokerage decimal.Decimal) error {
	if brokerageRate.IsNegative() {
		return fmt.Errorf("%w: brokerageRate must not be negative", apperrors.ErrValidation)
	}
	if receivedBrokerage.IsNegative() {
		return fmt.Errorf("%w: receivedBrokerage must not be negative", apperrors.ErrValidation)
	}
	if currencyCode != domain.HomeCurrency && exchangeRate.LessThanOrEqual(decimal.Zero) {
		return ErrExchangeRateNotPos
	}
	return nil
}

// verifyParties ensures both parties exist and differ.
func (s *invoiceService) verifyParties(ctx context.Context, sellerID, buyerID string) error {
	if buyerID == sellerID {
		return ErrBuyerSameAsSeller
	}
	if _, err := s.partyRepo.FindPartyByID(ctx, sellerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: seller party %s not found", apperrors.ErrValidation, sellerID)
		}
		return fmt.Errorf("failed to verify seller party: %w", err)
	}
	if _, err := s.partyRepo.FindPartyByID(ctx, buyerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: buyer party %s not found", apperrors.ErrValidation, buyerID)
		}
		return fmt.Errorf("failed to verify buyer party: %w", err)
	}
	return nil
}

// CreateInvoice validates the payload, derives every computed field and
// persists the invoice with its items in one transactional write.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.DueDays < 0 {
		return nil, ErrNegativeDueDays
	}
	if !domain.IsSupportedCurrency(req.CurrencyCode) {
		return nil, fmt.Errorf("%w: unsupported currency %s", apperrors.ErrValidation, req.CurrencyCode)
	}
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}
	if err := validateRates(req.CurrencyCode, req.BrokerageRate, req.ExchangeRate, req.ReceivedBrokerage); err != nil {
		return nil, err
	}
	if err := s.verifyParties(ctx, req.SellerPartyID, req.BuyerPartyID); err != nil {
		return nil, err
	}

	invoiceDate, err := dto.ParseDate(req.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid invoiceDate: %v", apperrors.ErrValidation, err)
	}

	// Due date derives from invoiceDate + dueDays unless explicitly supplied.
	dueDate := invoicecalc.DueDate(invoiceDate, req.DueDays)
	if req.DueDate != "" {
		if dueDate, err = dto.ParseDate(req.DueDate); err != nil {
			return nil, fmt.Errorf("%w: invalid dueDate: %v", apperrors.ErrValidation, err)
		}
	}

	now := time.Now().UTC()
	invoiceID := uuid.NewString()

	items := make([]domain.InvoiceItem, len(req.Items))
	for i, itemReq := range req.Items {
		items[i] = domain.InvoiceItem{
			ItemID:      uuid.NewString(),
			InvoiceID:   invoiceID,
			Description: strings.TrimSpace(itemReq.Description),
			Quantity:    itemReq.Quantity,
			Rate:        itemReq.Rate,
		}
	}

	invoice := domain.Invoice{
		InvoiceID:         invoiceID,
		SellerPartyID:     req.SellerPartyID,
		BuyerPartyID:      req.BuyerPartyID,
		InvoiceDate:       invoiceDate,
		DueDays:           req.DueDays,
		DueDate:           dueDate,
		Terms:             req.Terms,
		CurrencyCode:      req.CurrencyCode,
		Status:            domain.StatusPending,
		Remarks:           req.Remarks,
		BrokerageRate:     req.BrokerageRate,
		ExchangeRate:      req.ExchangeRate,
		ReceivedBrokerage: req.ReceivedBrokerage,
		Items:             items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	invoicecalc.Recompute(&invoice)

	number, err := s.invoiceRepo.SaveInvoice(ctx, invoice, items)
	if err != nil {
		logger.Error("Failed to save invoice", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}
	invoice.InvoiceNumber = number

	s.activitySvc.Record(ctx, domain.ActivityInvoiceCreated,
		fmt.Sprintf("Invoice %s created", number),
		fmt.Sprintf("Subtotal %s %s", invoice.CurrencyCode, invoice.Subtotal.StringFixed(2)),
		&invoice.InvoiceID, &creatorUserID)

	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListInvoices translates the query parameters into a repository filter.
// The "overdue" filter value is presentation-level: it selects stored
// pending invoices whose due date has passed. Page sizes outside
// [1, maxPageSize] fall back to the default.
func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, *string, error) {
	filter := portsrepo.InvoiceListFilter{
		PartyID: params.PartyID,
		AsOf:    time.Now().UTC(),
	}
	switch params.Status {
	case "":
	case string(domain.StatusOverdue):
		filter.Status = domain.StatusPending
		filter.OverdueOnly = true
	default:
		filter.Status = domain.InvoiceStatus(params.Status)
	}
	if params.From != "" {
		from, err := dto.ParseDate(params.From)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid from date: %v", apperrors.ErrValidation, err)
		}
		filter.From = &from
	}
	if params.To != "" {
		to, err := dto.ParseDate(params.To)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid to date: %v", apperrors.ErrValidation, err)
		}
		filter.To = &to
	}

	limit := params.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}

	return s.invoiceRepo.ListInvoices(ctx, filter, limit, params.NextToken)
}

func (s *invoiceService) ListInvoicesByParty(ctx context.Context, partyID string) ([]domain.Invoice, error) {
	if _, err := s.partyRepo.FindPartyByID(ctx, partyID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.FindInvoicesByParty(ctx, partyID)
}

// UpdateInvoice applies a partial update, re-derives the due date when its
// inputs changed, recomputes every derived money field and persists the
// result. Manual due-date edits win until invoiceDate or dueDays changes
// again.
func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, updaterUserID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.SellerPartyID != nil {
		invoice.SellerPartyID = *req.SellerPartyID
	}
	if req.BuyerPartyID != nil {
		invoice.BuyerPartyID = *req.BuyerPartyID
	}

	dateInputsChanged := false
	if req.InvoiceDate != nil {
		invoiceDate, parseErr := dto.ParseDate(*req.InvoiceDate)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: invalid invoiceDate: %v", apperrors.ErrValidation, parseErr)
		}
		invoice.InvoiceDate = invoiceDate
		dateInputsChanged = true
	}
	if req.DueDays != nil {
		if *req.DueDays < 0 {
			return nil, ErrNegativeDueDays
		}
		invoice.DueDays = *req.DueDays
		dateInputsChanged = true
	}
	if dateInputsChanged {
		invoice.DueDate = invoicecalc.DueDate(invoice.InvoiceDate, invoice.DueDays)
	}
	// An explicit due date always wins over the derivation.
	if req.DueDate != nil {
		dueDate, parseErr := dto.ParseDate(*req.DueDate)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: invalid dueDate: %v", apperrors.ErrValidation, parseErr)
		}
		invoice.DueDate = dueDate
	}

	if req.Terms != nil {
		invoice.Terms = *req.Terms
	}
	if req.CurrencyCode != nil {
		if !domain.IsSupportedCurrency(*req.CurrencyCode) {
			return nil, fmt.Errorf("%w: unsupported currency %s", apperrors.ErrValidation, *req.CurrencyCode)
		}
		invoice.CurrencyCode = *req.CurrencyCode
	}
	if req.BrokerageRate != nil {
		invoice.BrokerageRate = *req.BrokerageRate
	}
	if req.ExchangeRate != nil {
		invoice.ExchangeRate = *req.ExchangeRate
	}
	if req.ReceivedBrokerage != nil {
		invoice.ReceivedBrokerage = *req.ReceivedBrokerage
	}
	if req.Remarks != nil {
		invoice.Remarks = *req.Remarks
	}

	var replaceItems []domain.InvoiceItem
	if req.Items != nil {
		if err := validateItems(*req.Items); err != nil {
			return nil, err
		}
		replaceItems = make([]domain.InvoiceItem, len(*req.Items))
		for i, itemReq := range *req.Items {
			replaceItems[i] = domain.InvoiceItem{
				ItemID:      uuid.NewString(),
				InvoiceID:   invoice.InvoiceID,
				Description: strings.TrimSpace(itemReq.Description),
				Quantity:    itemReq.Quantity,
				Rate:        itemReq.Rate,
			}
		}
		invoice.Items = replaceItems
	}

	if err := validateRates(invoice.CurrencyCode, invoice.BrokerageRate, invoice.ExchangeRate, invoice.ReceivedBrokerage); err != nil {
		return nil, err
	}
	if err := s.verifyParties(ctx, invoice.SellerPartyID, invoice.BuyerPartyID); err != nil {
		return nil, err
	}

	invoice.LastUpdatedAt = time.Now().UTC()
	invoice.LastUpdatedBy = updaterUserID

	invoicecalc.Recompute(invoice)

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice, replaceItems); err != nil {
		logger.Error("Failed to update invoice", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	s.activitySvc.Record(ctx, domain.ActivityInvoiceUpdated,
		fmt.Sprintf("Invoice %s updated", invoice.InvoiceNumber), "",
		&invoice.InvoiceID, &updaterUserID)

	return invoice, nil
}

func (s *invoiceService) UpdateNotes(ctx context.Context, invoiceID string, remarks string, updaterUserID string) (*domain.Invoice, error) {
	now := time.Now().UTC()
	if err := s.invoiceRepo.UpdateInvoiceRemarks(ctx, invoiceID, remarks, updaterUserID, now); err != nil {
		return nil, err
	}
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

// UpdateStatus performs an explicit lifecycle transition. Entering paid or
// closed stamps the payment date; leaving them clears it. Cancelled never
// carries a payment date.
func (s *invoiceService) UpdateStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updaterUserID string) (*domain.Invoice, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var paymentDate *time.Time
	switch status {
	case domain.StatusPaid, domain.StatusClosed:
		if invoice.PaymentDate != nil {
			paymentDate = invoice.PaymentDate
		} else {
			paymentDate = &now
		}
	default:
		paymentDate = nil
	}

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, status, paymentDate, updaterUserID, now); err != nil {
		return nil, err
	}

	if status == domain.StatusPaid && invoice.Status != domain.StatusPaid {
		s.activitySvc.Record(ctx, domain.ActivityPaymentReceived,
			fmt.Sprintf("Invoice %s marked paid", invoice.InvoiceNumber), "",
			&invoice.InvoiceID, &updaterUserID)
	}

	invoice.Status = status
	invoice.PaymentDate = paymentDate
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = updaterUserID
	return invoice, nil
}

// DeleteInvoice removes the invoice and everything owned by or referencing
// it. The repository runs the cascade in one transaction; a failure on any
// step leaves the invoice fully intact.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string, deleterUserID string) error {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		return err
	}

	s.activitySvc.Record(ctx, domain.ActivityInvoiceDeleted,
		fmt.Sprintf("Invoice %s deleted", invoice.InvoiceNumber), "",
		nil, &deleterUserID)

	return nil
}
