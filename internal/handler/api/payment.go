package api

import (
	"errors"
	"net/http"

	reqdto "gaya-booking/internal/handler/dto/request"
	resdto "gaya-booking/internal/handler/dto/response"
	"gaya-booking/internal/handler/httperr"
	"gaya-booking/internal/handler/middleware"
	"gaya-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Create payment intent
// @Description Price the stay server-side and open a payment intent for it
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentIntentRequest true "Payment intent request"
// @Success 201 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payment-intents [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.paymentUseCase.CreateIntent(c.Request.Context(), identity, params)
	if err != nil {
		h.writePaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.NewPaymentIntentResponse(result))
}

// @Summary Finalize payment
// @Description Confirm a step-up intent and persist the booking
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment intent ID"
// @Param request body reqdto.FinalizePaymentRequest true "Finalize request"
// @Success 200 {object} resdto.FinalizeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payment-intents/{id}/finalize [post]
func (h *PaymentHandler) Finalize(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	intentID := c.Param("id")
	if intentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Payment intent ID is required",
		})
		return
	}

	var req reqdto.FinalizePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	details, err := req.ToDetails()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.paymentUseCase.Finalize(c.Request.Context(), identity, intentID, details)
	if err != nil {
		h.writePaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewFinalizeResponse(result))
}

func (h *PaymentHandler) writePaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Property not found",
		})
	case errors.Is(err, usecase.ErrPaymentDeclined):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": "Payment was declined",
		})
	case errors.Is(err, usecase.ErrPaymentNotCompleted):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Payment has not completed",
		})
	case errors.Is(err, usecase.ErrAmountMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Amount does not match the priced total",
		})
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment processor is unavailable",
		})
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	case errors.Is(err, usecase.ErrPersistenceFailed):
		// Keep the wrapped cause in c.Errors for the request log; operators
		// reconcile these against the processor.
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Booking could not be persisted, support has been notified", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
