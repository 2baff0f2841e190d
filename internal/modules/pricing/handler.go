package pricing

import (
	"errors"
	"net/http"

	"studiobooking/internal/domain"
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
	rg.POST("/quote", h.Quote)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/promo-codes", h.CreatePromo)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Quote(c.Request.Context(), QuoteParams{
		Interval:  domain.TimeInterval{Start: req.StartTime, End: req.EndTime},
		FormulaID: req.FormulaID,
		Email:     req.Email,
		PromoCode: req.PromoCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid time range")
		case errors.Is(err, ErrFormulaNotFound):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown formula")
		case errors.Is(err, ErrPromoExpired):
			response.Error(c, http.StatusBadRequest, "PROMO_EXPIRED", "Promo code has expired")
		case errors.Is(err, ErrPromoInvalid):
			response.Error(c, http.StatusBadRequest, "PROMO_INVALID", "Promo code is not valid")
		default:
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": res.Breakdown})
}

func (h *Handler) CreatePromo(c *gin.Context) {
	var req CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	promo, err := h.service.CreatePromo(c.Request.Context(), req)
	if err != nil {
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"promo_code": promo})
}
