package space

import (
	"errors"
	"net/http"
	"strconv"

	"coworking/internal/domain"
	"coworking/internal/pkg/response"
	"coworking/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/spaces", h.CreateSpace)
	rg.GET("/spaces", h.ListSpaces)
	rg.GET("/spaces/:id", h.GetSpace)
	rg.PATCH("/spaces/:id/availability", h.SetAvailability)

	rg.POST("/members", h.CreateMember)
	rg.GET("/members", h.ListMembers)
	rg.GET("/members/:id", h.GetMember)
	rg.PATCH("/members/:id/status", h.UpdateMemberStatus)
}

func (h *Handler) CreateSpace(c *gin.Context) {
	var req CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sp, err := h.service.CreateSpace(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"space": sp})
}

func (h *Handler) GetSpace(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	sp, err := h.service.GetSpace(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"space": sp})
}

func (h *Handler) ListSpaces(c *gin.Context) {
	capacity, _ := strconv.Atoi(c.Query("capacity"))
	filters := repository.SpaceFilters{
		Type:      domain.SpaceType(c.Query("type")),
		Capacity:  capacity,
		Available: c.Query("available") == "true",
	}

	rows, err := h.service.ListSpaces(c.Request.Context(), filters)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"spaces": rows})
}

func (h *Handler) SetAvailability(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "available is required")
		return
	}

	if err := h.service.SetAvailability(c.Request.Context(), id, *req.Available); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"space_id": id, "available": *req.Available})
}

func (h *Handler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.CreateMember(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"member": m})
}

func (h *Handler) GetMember(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	m, err := h.service.GetMember(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"member": m})
}

func (h *Handler) ListMembers(c *gin.Context) {
	rows, err := h.service.ListMembers(c.Request.Context(), domain.MemberStatus(c.Query("status")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"members": rows})
}

func (h *Handler) UpdateMemberStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateMemberStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid member status")
		return
	}

	m, err := h.service.UpdateMemberStatus(c.Request.Context(), id, domain.MemberStatus(req.Status))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"member": m})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Payload failed validation", ve.Fields)
	case errors.Is(err, ErrInvalidPayload):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Space or member not found")
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
