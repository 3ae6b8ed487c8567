package routes

import (
	"zap_shift/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckoutSession = "/payment-checkout-session"
	PathPaymentSuccess  = "/payment-success"
	PathPayments        = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler, requireToken gin.HandlerFunc) {
	rg.POST(PathCheckoutSession, h.CreateCheckoutSession)
	// The provider redirects the browser to the frontend, which then calls this.
	rg.PATCH(PathPaymentSuccess, h.ConfirmPayment)
	rg.GET(PathPayments, requireToken, h.ListPayments)
}
