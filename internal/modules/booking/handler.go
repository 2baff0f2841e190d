package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"studiobooking/internal/domain"
	"studiobooking/internal/modules/pricing"
	"studiobooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service        *Service
	requestTimeout time.Duration
}

func NewHandler(service *Service, requestTimeout time.Duration) *Handler {
	return &Handler{service: service, requestTimeout: requestTimeout}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/availability", h.CheckAvailability)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.CreateBooking)
	rg.GET("/reservations", h.ListMyBookings)
	rg.GET("/reservations/:id", h.GetBooking)
	rg.POST("/reservations/:id/cancel", h.CancelBooking)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/reservations/:id/schedule", h.RescheduleBooking)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	start, err1 := time.Parse(time.RFC3339, c.Query("start"))
	end, err2 := time.Parse(time.RFC3339, c.Query("end"))
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start and end must be RFC3339 timestamps")
		return
	}

	avail, err := h.service.CheckAvailability(c.Request.Context(), domain.TimeInterval{Start: start, End: end})
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid time range")
			return
		}
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, avail)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.UserID = c.GetInt64("user_id")

	// Bounded booking call: if we time out before the critical section the
	// ledger leaves no partial state behind.
	ctx, cancel := contextWithTimeout(c, h.requestTimeout)
	defer cancel()

	result, err := h.service.CreateBooking(ctx, req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Internal(c)
		return
	}
	if res.UserID != c.GetInt64("user_id") && c.GetString("role") != "admin" {
		h.writeBookingError(c, ErrForbidden)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := h.service.ListByUser(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": list})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		response.Internal(c)
		return
	}
	if existing.UserID != c.GetInt64("user_id") && c.GetString("role") != "admin" {
		h.writeBookingError(c, ErrForbidden)
		return
	}

	res, err := h.service.CancelBooking(c.Request.Context(), id, req.Reason)
	if err != nil {
		if errors.Is(err, ErrInvalidStatusTransition) {
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Reservation is already cancelled")
			return
		}
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) RescheduleBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ctx, cancel := contextWithTimeout(c, h.requestTimeout)
	defer cancel()

	res, err := h.service.RescheduleBooking(ctx, id, domain.TimeInterval{Start: req.StartTime, End: req.EndTime})
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

// writeBookingError maps the error taxonomy onto HTTP so clients can tell
// "try a different time" from "try without a promo" from "system down".
func (h *Handler) writeBookingError(c *gin.Context, err error) {
	var blocked *BlockedError
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.As(err, &blocked):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "BLOCKED", "Interval cannot be booked",
			gin.H{"reason": string(blocked.Reason)})
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Slot is already reserved")
	case errors.Is(err, pricing.ErrFormulaNotFound):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown formula")
	case errors.Is(err, pricing.ErrPromoExpired):
		response.Error(c, http.StatusBadRequest, "PROMO_EXPIRED", "Promo code has expired")
	case errors.Is(err, pricing.ErrPromoInvalid):
		response.Error(c, http.StatusBadRequest, "PROMO_INVALID", "Promo code is not valid")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your reservation")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Reservation state does not allow this")
	default:
		response.Internal(c)
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return 0, false
	}
	return id, true
}

func contextWithTimeout(c *gin.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), d)
}
