package services_test

import (
	"context"
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

// --- Test Suite Setup ---
type PartyServiceTestSuite struct {
	suite.Suite
	mockPartyRepo   *MockPartyRepository
	mockActivitySvc *MockActivityService
	service         portssvc.PartySvcFacade
	userID          string
}

func (suite *PartyServiceTestSuite) SetupTest() {
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockActivitySvc = new(MockActivityService)
	suite.service = services.NewPartyService(suite.mockPartyRepo, suite.mockActivitySvc)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *PartyServiceTestSuite) TestCreateParty_Success() {
	ctx := context.Background()
	req := dto.CreatePartyRequest{
		Name:          "Acme Textiles",
		ContactPerson: "R. Sharma",
		Phone:         "+91 98765 43210",
		Email:         "accounts@acmetextiles.example",
	}

	suite.mockPartyRepo.On("SaveParty", ctx, mock.AnythingOfType("domain.Party")).Return(nil).Once()
	suite.mockActivitySvc.On("Record", ctx, domain.ActivityPartyAdded, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	party, err := suite.service.CreateParty(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(party)
	suite.NotEmpty(party.PartyID)
	suite.Equal(req.Name, party.Name)
	suite.Equal(suite.userID, party.CreatedBy)
	suite.mockPartyRepo.AssertExpectations(suite.T())
	suite.mockActivitySvc.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestGetPartyByID_Enriched() {
	ctx := context.Background()
	partyID := uuid.NewString()
	stored := &domain.Party{PartyID: partyID, Name: "Globe Traders"}
	lastTxn := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	enrichment := &portsrepo.PartyEnrichment{
		OutstandingBalance:  decimal.RequireFromString("1250.50"),
		LastTransactionDate: &lastTxn,
		InvoiceCount:        7,
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(stored, nil).Once()
	suite.mockPartyRepo.On("GetPartyEnrichment", ctx, partyID).Return(enrichment, nil).Once()

	party, err := suite.service.GetPartyByID(ctx, partyID)

	suite.Require().NoError(err)
	suite.True(party.OutstandingBalance.Equal(enrichment.OutstandingBalance))
	suite.Equal(7, party.InvoiceCount)
	suite.Require().NotNil(party.LastTransactionDate)
	suite.True(party.LastTransactionDate.Equal(lastTxn))
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestGetPartyByID_EnrichmentFailureServesBareParty() {
	ctx := context.Background()
	partyID := uuid.NewString()
	stored := &domain.Party{PartyID: partyID, Name: "Globe Traders"}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(stored, nil).Once()
	suite.mockPartyRepo.On("GetPartyEnrichment", ctx, partyID).Return(nil, assert.AnError).Once()

	party, err := suite.service.GetPartyByID(ctx, partyID)

	suite.Require().NoError(err)
	suite.Equal(partyID, party.PartyID)
	suite.Equal(0, party.InvoiceCount)
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestUpdateParty_PartialFields() {
	ctx := context.Background()
	partyID := uuid.NewString()
	stored := &domain.Party{PartyID: partyID, Name: "Old Name", Phone: "111"}

	newName := "New Name"
	req := dto.UpdatePartyRequest{Name: &newName}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(stored, nil).Once()
	suite.mockPartyRepo.On("UpdateParty", ctx, mock.MatchedBy(func(p domain.Party) bool {
		return p.Name == newName && p.Phone == "111"
	})).Return(nil).Once()

	party, err := suite.service.UpdateParty(ctx, partyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, party.Name)
	suite.Equal(suite.userID, party.LastUpdatedBy)
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestDeleteParty_BlockedByInvoices() {
	ctx := context.Background()
	partyID := uuid.NewString()

	suite.mockPartyRepo.On("CountInvoicesForParty", ctx, partyID).Return(3, nil).Once()

	err := suite.service.DeleteParty(ctx, partyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrPartyHasInvoices)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "DeleteParty", mock.Anything, mock.Anything)
}

func (suite *PartyServiceTestSuite) TestDeleteParty_Success() {
	ctx := context.Background()
	partyID := uuid.NewString()

	suite.mockPartyRepo.On("CountInvoicesForParty", ctx, partyID).Return(0, nil).Once()
	suite.mockPartyRepo.On("DeleteParty", ctx, partyID).Return(nil).Once()

	err := suite.service.DeleteParty(ctx, partyID)

	suite.Require().NoError(err)
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestCountInvoices_PartyMissing() {
	ctx := context.Background()
	partyID := uuid.NewString()

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CountInvoices(ctx, partyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "CountInvoicesForParty", mock.Anything, mock.Anything)
}

func TestPartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}
