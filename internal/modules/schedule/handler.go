package schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"studiobooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/blocked-slots", h.CreateBlock)
	rg.GET("/blocked-slots", h.ListBlocks)
	rg.DELETE("/blocked-slots/:id", h.DeleteBlock)
}

func (h *Handler) CreateBlock(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBlock(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid blocked slot definition")
			return
		}
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"blocked_slot": b})
}

func (h *Handler) ListBlocks(c *gin.Context) {
	from, err1 := time.Parse("2006-01-02", c.DefaultQuery("from", time.Now().UTC().Format("2006-01-02")))
	to, err2 := time.Parse("2006-01-02", c.DefaultQuery("to", time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02")))
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range")
		return
	}

	blocks, err := h.service.ListBlocks(c.Request.Context(), from, to)
	if err != nil {
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"blocked_slots": blocks})
}

func (h *Handler) DeleteBlock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid blocked slot ID")
		return
	}

	if err := h.service.DeleteBlock(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Blocked slot not found")
			return
		}
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
