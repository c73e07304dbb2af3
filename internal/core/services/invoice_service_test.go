package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bussnote/bussnote_backend/internal/apperrors"
	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
	portssvc "github.com/bussnote/bussnote_backend/internal/core/ports/services"
	"github.com/bussnote/bussnote_backend/internal/core/services"
	"github.com/bussnote/bussnote_backend/internal/dto"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepository = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) (string, error) {
	args := m.Called(ctx, invoice, items)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) error {
	args := m.Called(ctx, invoice, items)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceRemarks(ctx context.Context, invoiceID string, remarks string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, invoiceID, remarks, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, paymentDate *time.Time, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, invoiceID, status, paymentDate, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Invoice), returnedNextToken, args.Error(2)
}

func (m *MockInvoiceRepository) FindInvoicesByParty(ctx context.Context, partyID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepository = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) FindParties(ctx context.Context, limit int, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	args := m.Called(ctx, partyID)
	return args.Error(0)
}

func (m *MockPartyRepository) CountInvoicesForParty(ctx context.Context, partyID string) (int, error) {
	args := m.Called(ctx, partyID)
	return args.Int(0), args.Error(1)
}

func (m *MockPartyRepository) GetPartyEnrichment(ctx context.Context, partyID string) (*portsrepo.PartyEnrichment, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.PartyEnrichment), args.Error(1)
}

// --- Mock ActivityService ---
type MockActivityService struct {
	mock.Mock
}

var _ portssvc.ActivitySvcFacade = (*MockActivityService)(nil)

func (m *MockActivityService) Record(ctx context.Context, activityType domain.ActivityType, title string, description string, invoiceID *string, userID *string) {
	m.Called(ctx, activityType, title, description, invoiceID, userID)
}

func (m *MockActivityService) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockActivityService) CountByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// --- Test Suite Setup ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockPartyRepo   *MockPartyRepository
	mockActivitySvc *MockActivityService
	service         portssvc.InvoiceSvcFacade
	seller          domain.Party
	buyer           domain.Party
	userID          string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockActivitySvc = new(MockActivityService)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockPartyRepo, suite.mockActivitySvc)

	suite.userID = uuid.NewString()
	suite.seller = domain.Party{PartyID: uuid.NewString(), Name: "Acme Textiles"}
	suite.buyer = domain.Party{PartyID: uuid.NewString(), Name: "Globe Traders"}
}

func (suite *InvoiceServiceTestSuite) expectPartiesFound() {
	suite.mockPartyRepo.On("FindPartyByID", mock.Anything, suite.seller.PartyID).Return(&suite.seller, nil).Once()
	suite.mockPartyRepo.On("FindPartyByID", mock.Anything, suite.buyer.PartyID).Return(&suite.buyer, nil).Once()
}

func (suite *InvoiceServiceTestSuite) baseCreateRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		SellerPartyID: suite.seller.PartyID,
		BuyerPartyID:  suite.buyer.PartyID,
		InvoiceDate:   "2026-03-10",
		DueDays:       30,
		CurrencyCode:  "INR",
		BrokerageRate: decimal.NewFromInt(2),
		Items: []dto.InvoiceItemRequest{
			{Description: "Cotton bales", Quantity: decimal.NewFromInt(100), Rate: decimal.NewFromInt(100)},
		},
	}
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	req := suite.baseCreateRequest()
	req.ReceivedBrokerage = decimal.NewFromInt(150)
	// Submitted exchange rate for a home-currency invoice must be ignored.
	req.ExchangeRate = decimal.RequireFromString("85.20")

	suite.expectPartiesFound()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceItem")).
		Return("INV-2026-0001", nil).Once()
	suite.mockActivitySvc.On("Record", ctx, domain.ActivityInvoiceCreated, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	inv, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(inv)
	suite.Equal("INV-2026-0001", inv.InvoiceNumber)
	suite.Equal(domain.StatusPending, inv.Status)
	suite.Equal(suite.userID, inv.CreatedBy)

	// Derived fields: subtotal 100x100, 2% brokerage, rate pinned to 1.00.
	suite.True(inv.Subtotal.Equal(decimal.RequireFromString("10000")), "subtotal = %s", inv.Subtotal)
	suite.True(inv.ExchangeRate.Equal(decimal.NewFromInt(1)), "exchange rate = %s", inv.ExchangeRate)
	suite.True(inv.Brokerage.Equal(decimal.RequireFromString("200")), "brokerage = %s", inv.Brokerage)
	suite.True(inv.BrokerageInINR.Equal(decimal.RequireFromString("200")), "brokerage in INR = %s", inv.BrokerageInINR)
	suite.True(inv.BalanceBrokerage.Equal(decimal.RequireFromString("50")), "balance = %s", inv.BalanceBrokerage)

	// Due date derives from invoiceDate + dueDays.
	suite.Equal("2026-04-09", dto.FormatDate(inv.DueDate))

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockPartyRepo.AssertExpectations(suite.T())
	suite.mockActivitySvc.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ExplicitDueDateWins() {
	ctx := context.Background()
	req := suite.baseCreateRequest()
	req.DueDate = "2026-05-01"

	suite.expectPartiesFound()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.Anything, mock.Anything).Return("INV-2026-0002", nil).Once()
	suite.mockActivitySvc.On("Record", ctx, domain.ActivityInvoiceCreated, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	inv, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("2026-05-01", dto.FormatDate(inv.DueDate))
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_BuyerSameAsSeller() {
	ctx := context.Background()
	req := suite.baseCreateRequest()
	req.BuyerPartyID = req.SellerPartyID

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "buyerPartyID")
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NegativeDueDays() {
	ctx := context.Background()
	req := suite.baseCreateRequest()
	req.DueDays = -1

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNegativeDueDays)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ForeignCurrencyRequiresRate() {
	ctx := context.Background()
	req := suite.baseCreateRequest()
	req.CurrencyCode = "USD"
	req.ExchangeRate = decimal.Zero

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrExchangeRateNotPos)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_BlankItemDescription() {
	ctx := context.Background()
	req := suite.baseCreateRequest()
	req.Items[0].Description = "   "

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrItemDescMissing)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_TooManyDecimals() {
	ctx := context.Background()
	req := suite.baseCreateRequest()
	req.Items[0].Quantity = decimal.RequireFromString("1.005")

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_SellerNotFound() {
	ctx := context.Background()
	req := suite.baseCreateRequest()

	suite.mockPartyRepo.On("FindPartyByID", mock.Anything, suite.seller.PartyID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_OverdueTranslatesToFilter() {
	ctx := context.Background()
	params := dto.ListInvoicesParams{Limit: 20, Status: "overdue"}

	suite.mockInvoiceRepo.On("ListInvoices", ctx, mock.MatchedBy(func(f portsrepo.InvoiceListFilter) bool {
		return f.Status == domain.StatusPending && f.OverdueOnly && !f.AsOf.IsZero()
	}), 20, (*string)(nil)).Return([]domain.Invoice{}, nil, nil).Once()

	_, _, err := suite.service.ListInvoices(ctx, params)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_BadLimitFallsBackToDefault() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("ListInvoices", ctx, mock.AnythingOfType("repositories.InvoiceListFilter"), 20, (*string)(nil)).
		Return([]domain.Invoice{}, nil, nil).Twice()

	_, _, err := suite.service.ListInvoices(ctx, dto.ListInvoicesParams{Limit: -5})
	suite.Require().NoError(err)

	_, _, err = suite.service.ListInvoices(ctx, dto.ListInvoicesParams{Limit: 100000})
	suite.Require().NoError(err)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateNumberSurfaces() {
	ctx := context.Background()
	req := suite.baseCreateRequest()

	suite.expectPartiesFound()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceItem")).
		Return("", fmt.Errorf("%w: invoice number INV-2026-0001", apperrors.ErrDuplicate)).Once()

	inv, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(inv)
	suite.mockActivitySvc.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_DueDateRederived() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID:     invoiceID,
		InvoiceNumber: "INV-2026-0003",
		SellerPartyID: suite.seller.PartyID,
		BuyerPartyID:  suite.buyer.PartyID,
		InvoiceDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		DueDays:       30,
		DueDate:       time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC),
		CurrencyCode:  "INR",
		ExchangeRate:  decimal.NewFromInt(1),
		Status:        domain.StatusPending,
		Items: []domain.InvoiceItem{
			{ItemID: uuid.NewString(), InvoiceID: invoiceID, Quantity: decimal.NewFromInt(10), Rate: decimal.NewFromInt(5), Description: "Widgets"},
		},
	}

	newDueDays := 45
	req := dto.UpdateInvoiceRequest{DueDays: &newDueDays}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.expectPartiesFound()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, mock.AnythingOfType("domain.Invoice"), ([]domain.InvoiceItem)(nil)).Return(nil).Once()
	suite.mockActivitySvc.On("Record", ctx, domain.ActivityInvoiceUpdated, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	updated, err := suite.service.UpdateInvoice(ctx, invoiceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("2026-04-24", dto.FormatDate(updated.DueDate))
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateStatus_PaidStampsPaymentDate() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID:     invoiceID,
		InvoiceNumber: "INV-2026-0004",
		Status:        domain.StatusPending,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, invoiceID, domain.StatusPaid,
		mock.MatchedBy(func(pd *time.Time) bool { return pd != nil }),
		suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockActivitySvc.On("Record", ctx, domain.ActivityPaymentReceived, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	updated, err := suite.service.UpdateStatus(ctx, invoiceID, domain.StatusPaid, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, updated.Status)
	suite.Require().NotNil(updated.PaymentDate)
	suite.True(updated.IsClosed())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockActivitySvc.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateStatus_BackToPendingClearsPaymentDate() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	paidAt := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.Invoice{
		InvoiceID:     invoiceID,
		InvoiceNumber: "INV-2026-0005",
		Status:        domain.StatusPaid,
		PaymentDate:   &paidAt,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, invoiceID, domain.StatusPending,
		(*time.Time)(nil), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateStatus(ctx, invoiceID, domain.StatusPending, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, updated.Status)
	suite.Nil(updated.PaymentDate)
	suite.False(updated.IsClosed())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockActivitySvc.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateStatus_AlreadyPaidKeepsPaymentDate() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	paidAt := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.Invoice{
		InvoiceID:     invoiceID,
		InvoiceNumber: "INV-2026-0006",
		Status:        domain.StatusPaid,
		PaymentDate:   &paidAt,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, invoiceID, domain.StatusClosed,
		&paidAt, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateStatus(ctx, invoiceID, domain.StatusClosed, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated.PaymentDate)
	suite.True(updated.PaymentDate.Equal(paidAt))
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateStatus_InvalidStatus() {
	ctx := context.Background()

	_, err := suite.service.UpdateStatus(ctx, uuid.NewString(), domain.InvoiceStatus("archived"), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidStatus)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{InvoiceID: invoiceID, InvoiceNumber: "INV-2026-0007"}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, invoiceID).Return(nil).Once()
	// The deletion trail entry must not reference the deleted invoice.
	suite.mockActivitySvc.On("Record", ctx, domain.ActivityInvoiceDeleted, mock.Anything, mock.Anything, (*string)(nil), mock.Anything).Once()

	err := suite.service.DeleteInvoice(ctx, invoiceID, suite.userID)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockActivitySvc.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_RepoErrorNoActivity() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{InvoiceID: invoiceID, InvoiceNumber: "INV-2026-0008"}
	repoErr := assert.AnError

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, invoiceID).Return(repoErr).Once()

	err := suite.service.DeleteInvoice(ctx, invoiceID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.mockActivitySvc.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
