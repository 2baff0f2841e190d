package payment

import (
	"errors"
	"net/http"

	"studiobooking/internal/modules/booking"
	"studiobooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/confirm", h.Confirm)
}

// Confirm receives the provider's succeeded/failed event and flips the
// reservation accordingly.
func (h *Handler) Confirm(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.HandleConfirmation(c.Request.Context(), req.Reference, req.Succeeded)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownReference):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown payment reference")
		case errors.Is(err, booking.ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Reservation state does not allow this")
		default:
			response.Internal(c)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}
