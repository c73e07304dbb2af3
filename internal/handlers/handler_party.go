package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bussnote/bussnote_backend/internal/apperrors"
	portssvc "github.com/bussnote/bussnote_backend/internal/core/ports/services"
	"github.com/bussnote/bussnote_backend/internal/dto"
	"github.com/bussnote/bussnote_backend/internal/middleware"
)

// partyHandler handles HTTP requests related to parties.
type partyHandler struct {
	partyService       portssvc.PartySvcFacade
	invoiceService     portssvc.InvoiceSvcFacade
	transactionService portssvc.TransactionSvcFacade
}

// newPartyHandler creates a new partyHandler.
func newPartyHandler(ps portssvc.PartySvcFacade, is portssvc.InvoiceSvcFacade, ts portssvc.TransactionSvcFacade) *partyHandler {
	return &partyHandler{
		partyService:       ps,
		invoiceService:     is,
		transactionService: ts,
	}
}

// registerPartyRoutes registers routes related to parties.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade, invoiceService portssvc.InvoiceSvcFacade, transactionService portssvc.TransactionSvcFacade) {
	h := newPartyHandler(partyService, invoiceService, transactionService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:id", h.getPartyByID)
		parties.PUT("/:id", h.updateParty)
		parties.DELETE("/:id", h.deleteParty)
		parties.GET("/:id/has-invoices", h.hasInvoices)
		parties.GET("/:id/invoices", h.listPartyInvoices)
		parties.GET("/:id/transactions", h.listPartyTransactions)
	}
}

// createParty godoc
// @Summary Create a new party
// @Description Adds a new party (client/counterparty) to the system
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create party"
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Received request to create party", slog.String("party_name", req.Name))

	createdParty, err := h.partyService.CreateParty(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating party", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create party in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create party"})
		}
		return
	}

	logger.Info("Party created successfully", slog.String("party_id", createdParty.PartyID))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(createdParty))
}

// getPartyByID godoc
// @Summary Get a party by ID
// @Description Retrieves a party with its derived fields (outstanding balance, last transaction date, invoice count)
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to retrieve party"
// @Router /parties/{id} [get]
func (h *partyHandler) getPartyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")
	logger = logger.With(slog.String("party_id", partyID))

	party, err := h.partyService.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Party not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to get party from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve party"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List parties
// @Description Retrieves parties ordered by name
// @Tags parties
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 500 {object} map[string]string "Failed to list parties"
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	parties, err := h.partyService.ListParties(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list parties", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list parties"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPartiesResponse(parties))
}

// updateParty godoc
// @Summary Update a party
// @Description Applies a partial update to a party; omitted fields are left unchanged
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   id path string true "Party ID"
// @Param   party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to update party"
// @Router /parties/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")
	logger = logger.With(slog.String("party_id", partyID))

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)

	updatedParty, err := h.partyService.UpdateParty(c.Request.Context(), partyID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Party not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating party", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update party in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update party"})
		}
		return
	}

	logger.Info("Party updated successfully")
	c.JSON(http.StatusOK, dto.ToPartyResponse(updatedParty))
}

// deleteParty godoc
// @Summary Delete a party
// @Description Removes a party; refused while any invoice references the party as seller or buyer
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 204 "Party deleted"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 409 {object} map[string]string "Party has invoices"
// @Failure 500 {object} map[string]string "Failed to delete party"
// @Router /parties/{id} [delete]
func (h *partyHandler) deleteParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")
	logger = logger.With(slog.String("party_id", partyID))

	err := h.partyService.DeleteParty(c.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Party not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Refused to delete party with invoices")
			c.JSON(http.StatusConflict, gin.H{"error": "Unable to delete: party is referenced by invoices"})
		} else {
			logger.Error("Failed to delete party in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete party"})
		}
		return
	}

	logger.Info("Party deleted successfully")
	c.Status(http.StatusNoContent)
}

// hasInvoices godoc
// @Summary Check whether a party has invoices
// @Description Delete-guard probe: reports whether any invoice references the party
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.HasInvoicesResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to check invoices"
// @Router /parties/{id}/has-invoices [get]
func (h *partyHandler) hasInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	count, err := h.partyService.CountInvoices(c.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to count invoices for party", slog.String("party_id", partyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check invoices"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.HasInvoicesResponse{
		PartyID:      partyID,
		HasInvoices:  count > 0,
		InvoiceCount: count,
	})
}

// listPartyInvoices godoc
// @Summary List a party's invoices
// @Description Retrieves all invoices naming the party as seller or buyer, newest first
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /parties/{id}/invoices [get]
func (h *partyHandler) listPartyInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	invoices, err := h.invoiceService.ListInvoicesByParty(c.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to list invoices for party", slog.String("party_id", partyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices, nil, time.Now().UTC()))
}

// listPartyTransactions godoc
// @Summary List a party's transactions
// @Description Retrieves a party's ledger events, newest first
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /parties/{id}/transactions [get]
func (h *partyHandler) listPartyTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.transactionService.ListTransactionsByParty(c.Request.Context(), partyID, params.Limit, params.Offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to list transactions for party", slog.String("party_id", partyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}
