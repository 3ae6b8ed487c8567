package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "zap_shift/internal/adapter/http/dto/request"
	response "zap_shift/internal/adapter/http/dto/response"
	"zap_shift/internal/adapter/http/middleware"
	"zap_shift/internal/usecase"
	"zap_shift/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
	errMissingSessionID       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "session_id is required", http.StatusBadRequest)
	errMissingIdentity        = pkg.NewDomainErrorSimple("UNAUTHORIZED", "unauthorized access", http.StatusUnauthorized)
)

// PaymentHandler serves checkout creation, the success redirect and the
// payment history.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	logger  *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, logger: logger.Named("payment.handler")}
}

// CreateCheckoutSession godoc
// @Summary      Open a hosted checkout for a parcel
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CheckoutSessionRequest  true  "Checkout payload"
// @Success      200      {object}  response.CheckoutSessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payment-checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var payload request.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	if payload.ResolveSenderEmail() == "" {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	url, err := h.usecase.CreateCheckoutSession(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPaymentError(err)
		h.logger.Warn("checkout session not created", zap.String("parcel_id", payload.ParcelID), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CheckoutSessionResponse{URL: url})
}

// ConfirmPayment godoc
// @Summary      Settle a checkout after the provider redirect
// @Description  Idempotent per transaction: a repeated call answers with the stored tracking id.
// @Tags         payments
// @Produce      json
// @Param        session_id  query     string  false  "Stripe checkout session id"
// @Param        payment_id  query     string  false  "Mercado Pago payment id"
// @Success      200         {object}  response.PaymentSettledResponse
// @Success      202         {object}  response.PaymentPendingResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /payment-success [patch]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		sessionID = strings.TrimSpace(c.Query("payment_id"))
	}
	if sessionID == "" {
		c.JSON(errMissingSessionID.HTTPStatus, errMissingSessionID.ToHTTPError())
		return
	}

	res, err := h.usecase.ConfirmPayment(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapPaymentError(err)
		h.logger.Error("payment confirmation failed", zap.String("session_id", sessionID), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	switch {
	case res.AlreadySettled:
		c.JSON(http.StatusOK, response.FromReplay(res))
	case res.Settled:
		c.JSON(http.StatusOK, response.FromSettled(res))
	default:
		c.JSON(http.StatusAccepted, response.FromPending(res))
	}
}

// ListPayments godoc
// @Summary      Payment history of the signed-in customer
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Param        email  query     string  true  "Customer email (must match the token)"
// @Success      200    {array}   response.PaymentResponse
// @Failure      401    {object}  pkg.HTTPError
// @Failure      403    {object}  pkg.HTTPError
// @Router       /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	payments, err := h.usecase.ListByEmail(c.Request.Context(), c.Query("email"), identity.Email)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidCheckoutInput), errors.Is(err, usecase.ErrInvalidPaymentEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentEmailMismatch):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "forbidden access", http.StatusForbidden)
	case errors.Is(err, usecase.ErrParcelNotFound):
		return pkg.NewDomainErrorSimple("PARCEL_NOT_FOUND", "Parcel not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrParcelAlreadyPaid):
		return pkg.NewDomainErrorSimple("PARCEL_ALREADY_PAID", "Parcel is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfig):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrUpstream):
		return pkg.NewDomainError("UPSTREAM_ERROR", "A dependent service failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
