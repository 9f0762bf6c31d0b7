package invoice

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"coworking/internal/domain"
	"coworking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/invoices", h.Generate)
	rg.GET("/invoices", h.ListByStatus)
	rg.GET("/invoices/:id", h.GetByID)
	rg.PATCH("/invoices/:id/send", h.Send)
	rg.PATCH("/invoices/:id/pay", h.MarkAsPaid)
	rg.PATCH("/invoices/:id/cancel", h.Cancel)

	rg.GET("/members/:id/invoices", h.ListByMember)
}

func (h *Handler) Generate(c *gin.Context) {
	var req GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inv, err := h.service.Generate(c.Request.Context(), req, time.Now().UTC())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"invoice": inv})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	inv, err := h.service.GetByID(c.Request.Context(), id, time.Now().UTC())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoice": inv})
}

func (h *Handler) Send(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	inv, err := h.service.Send(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoice": inv})
}

func (h *Handler) MarkAsPaid(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Payment method is required")
		return
	}

	inv, err := h.service.MarkAsPaid(c.Request.Context(), id, req.Method, time.Now().UTC())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoice": inv})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	inv, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoice": inv})
}

func (h *Handler) ListByStatus(c *gin.Context) {
	status := c.DefaultQuery("status", string(domain.InvoiceSent))

	rows, err := h.service.ListByStatus(c.Request.Context(), domain.InvoiceStatus(status), time.Now().UTC())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoices": rows})
}

func (h *Handler) ListByMember(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rows, err := h.service.ListByMember(c.Request.Context(), id, time.Now().UTC())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoices": rows})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidLineItem):
		response.Error(c, http.StatusBadRequest, "INVALID_LINE_ITEM", "Line items need a description, positive quantity and positive unit price")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Invoice status does not allow this operation")
	case errors.Is(err, ErrNotPayable):
		response.Error(c, http.StatusConflict, "NOT_PAYABLE", "Only sent or overdue invoices can be paid")
	case errors.Is(err, ErrTotalMismatch):
		response.Error(c, http.StatusConflict, "TOTAL_MISMATCH", "Stored invoice totals do not match its items")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice or member not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}
