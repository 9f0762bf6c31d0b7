package reservation

import (
	"context"
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
	rg.POST("/reservations", h.Create)
	rg.POST("/reservations/pending", h.CreatePending)
	rg.GET("/reservations/:id", h.GetByID)
	rg.PATCH("/reservations/:id/confirm", h.Confirm)
	rg.PATCH("/reservations/:id/check-in", h.CheckIn)
	rg.PATCH("/reservations/:id/check-out", h.CheckOut)
	rg.PATCH("/reservations/:id/complete", h.Complete)
	rg.PATCH("/reservations/:id/cancel", h.Cancel)
	rg.PATCH("/reservations/:id/status", h.UpdateStatus)
	rg.PATCH("/reservations/:id/payment-status", h.UpdatePaymentStatus)

	rg.GET("/spaces/:id/reservations", h.GetBySpace)
	rg.GET("/spaces/:id/availability", h.GetAvailability)
	rg.GET("/spaces/:id/busy-slots", h.GetBusySlots)
	rg.GET("/spaces/:id/quote", h.GetQuote)

	rg.GET("/my/reservations", h.GetMyReservations)
}

func (h *Handler) Create(c *gin.Context) {
	h.create(c, false)
}

func (h *Handler) CreatePending(c *gin.Context) {
	h.create(c, true)
}

func (h *Handler) create(c *gin.Context, pending bool) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	var res *domain.Reservation
	var err error
	if pending {
		res, err = h.service.CreatePending(c.Request.Context(), req)
	} else {
		res, err = h.service.Create(c.Request.Context(), req)
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": res})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) Confirm(c *gin.Context) {
	h.transition(c, h.service.Confirm)
}

func (h *Handler) CheckIn(c *gin.Context) {
	h.transition(c, h.service.CheckIn)
}

func (h *Handler) CheckOut(c *gin.Context) {
	h.transition(c, h.service.CheckOut)
}

func (h *Handler) Complete(c *gin.Context) {
	h.transition(c, h.service.Complete)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, domain.ReservationStatus(req.Status)); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "status": req.Status})
}

func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.UpdatePaymentStatus(c.Request.Context(), id, domain.PaymentState(req.PaymentStatus))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) GetBySpace(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	from, to := rangeParams(c)

	rows, err := h.service.GetBySpace(c.Request.Context(), id, from, to)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": rows})
}

func (h *Handler) GetAvailability(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	from, to := rangeParams(c)
	if from.IsZero() || to.IsZero() {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from and to query params are required")
		return
	}

	available, err := h.service.IsAvailable(c.Request.Context(), id, from, to, 0)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"space_id": id, "available": available})
}

func (h *Handler) GetBusySlots(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	from, to := rangeParams(c)

	slots, err := h.service.BusySlots(c.Request.Context(), id, from, to)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"busy_slots": slots})
}

func (h *Handler) GetQuote(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	from, to := rangeParams(c)
	if from.IsZero() || to.IsZero() {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from and to query params are required")
		return
	}

	quote, promoKnown, err := h.service.Quote(c.Request.Context(), id, from, to, c.Query("promo"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quote": quote, "promo_known": promoKnown})
}

func (h *Handler) GetMyReservations(c *gin.Context) {
	memberID := c.GetInt64("member_id")
	if memberID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, err := h.service.GetByMember(c.Request.Context(), memberID, limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": rows})
}

func (h *Handler) transition(c *gin.Context, fn func(ctx context.Context, id int64) (*domain.Reservation, error)) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := fn(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInterval):
		response.Error(c, http.StatusBadRequest, "INVALID_INTERVAL", "End time must be after start time")
	case errors.Is(err, ErrSlotConflict):
		response.Error(c, http.StatusConflict, "SLOT_CONFLICT", "Space is not available for the selected time")
	case errors.Is(err, ErrMemberNotBookable):
		response.Error(c, http.StatusForbidden, "MEMBER_NOT_BOOKABLE", "Member cannot make reservations")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Reservation state does not allow this operation")
	case errors.Is(err, ErrNotConfirmed):
		response.Error(c, http.StatusConflict, "NOT_CONFIRMED", "Reservation must be confirmed first")
	case errors.Is(err, ErrAlreadyCheckedIn):
		response.Error(c, http.StatusConflict, "ALREADY_CHECKED_IN", "Reservation is already checked in")
	case errors.Is(err, ErrNotCheckedIn):
		response.Error(c, http.StatusConflict, "NOT_CHECKED_IN", "Reservation has not been checked in")
	case errors.Is(err, ErrAlreadyCheckedOut):
		response.Error(c, http.StatusConflict, "ALREADY_CHECKED_OUT", "Reservation is already checked out")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation or space not found")
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

func rangeParams(c *gin.Context) (time.Time, time.Time) {
	var from, to time.Time
	if v := c.Query("from"); v != "" {
		from, _ = time.Parse(time.RFC3339, v)
	}
	if v := c.Query("to"); v != "" {
		to, _ = time.Parse(time.RFC3339, v)
	}
	return from, to
}
