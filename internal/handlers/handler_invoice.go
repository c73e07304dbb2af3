package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bussnote/bussnote_backend/internal/apperrors"
	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portssvc "github.com/bussnote/bussnote_backend/internal/core/ports/services"
	"github.com/bussnote/bussnote_backend/internal/dto"
	"github.com/bussnote/bussnote_backend/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoiceByID)
		invoices.PATCH("/:id", h.updateInvoice)
		invoices.PATCH("/:id/notes", h.updateInvoiceNotes)
		invoices.PATCH("/:id/status", h.updateInvoiceStatus)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Creates an invoice with its line items in one transactional write; derived money fields and the invoice number are computed server-side
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 409 {object} map[string]string "Invoice number collision"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Received request to create invoice",
		slog.String("seller_party_id", req.SellerPartyID),
		slog.String("buyer_party_id", req.BuyerPartyID))

	createdInvoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Referenced party not found", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Invoice number collision", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": "Invoice number already assigned, please retry"})
		} else {
			logger.Error("Failed to create invoice in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		}
		return
	}

	logger.Info("Invoice created successfully",
		slog.String("invoice_id", createdInvoice.InvoiceID),
		slog.String("invoice_number", createdInvoice.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(createdInvoice, time.Now().UTC()))
}

// getInvoiceByID godoc
// @Summary Get an invoice by ID
// @Description Retrieves an invoice with party names and line items
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoiceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")
	logger = logger.With(slog.String("invoice_id", invoiceID))

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invoice not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to get invoice from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now().UTC()))
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves a token-paginated page of invoices ordered by invoice date, newest first. The status filter accepts the derived value "overdue" in addition to stored statuses.
// @Tags invoices
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination cursor from the previous page"
// @Param   status query string false "Status filter" Enums(pending, paid, cancelled, closed, overdue)
// @Param   partyID query string false "Only invoices naming this party as seller or buyer"
// @Param   from query string false "Invoice date lower bound (YYYY-MM-DD)"
// @Param   to query string false "Invoice date upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	invoices, nextToken, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
			return
		}
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices, nextToken, time.Now().UTC()))
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Applies a partial update; when items are submitted they replace the existing set, and all derived money fields are recomputed
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to update invoice"
// @Router /invoices/{id} [patch]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")
	logger = logger.With(slog.String("invoice_id", invoiceID))

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)

	updatedInvoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invoice not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update invoice in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		}
		return
	}

	logger.Info("Invoice updated successfully")
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(updatedInvoice, time.Now().UTC()))
}

// updateInvoiceNotes godoc
// @Summary Update invoice remarks
// @Description Updates only the free-text remarks, leaving all other fields untouched
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   notes body dto.UpdateInvoiceNotesRequest true "New remarks"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to update remarks"
// @Router /invoices/{id}/notes [patch]
func (h *invoiceHandler) updateInvoiceNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")
	logger = logger.With(slog.String("invoice_id", invoiceID))

	var req dto.UpdateInvoiceNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoiceNotes", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)

	updatedInvoice, err := h.invoiceService.UpdateNotes(c.Request.Context(), invoiceID, req.Remarks, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invoice not found for notes update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to update invoice remarks", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update remarks"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(updatedInvoice, time.Now().UTC()))
}

// updateInvoiceStatus godoc
// @Summary Update invoice status
// @Description Drives an explicit lifecycle transition; entering paid or closed stamps the payment date, leaving them clears it
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   status body dto.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Router /invoices/{id}/status [patch]
func (h *invoiceHandler) updateInvoiceStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")
	logger = logger.With(slog.String("invoice_id", invoiceID))

	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoiceStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)

	updatedInvoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), invoiceID, domain.InvoiceStatus(req.Status), updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invoice not found for status update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating status", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update invoice status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}

	logger.Info("Invoice status updated", slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(updatedInvoice, time.Now().UTC()))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Removes the invoice together with its line items, related transactions and related activity entries in one transaction
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 204 "Invoice deleted"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to delete invoice"
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")
	logger = logger.With(slog.String("invoice_id", invoiceID))

	deleterUserID, _ := middleware.GetUserIDFromContext(c)

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invoice not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to delete invoice in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		}
		return
	}

	logger.Info("Invoice deleted successfully")
	c.Status(http.StatusNoContent)
}
