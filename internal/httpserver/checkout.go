package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chillout-web/internal/checkout"
	"chillout-web/internal/domain"
)

type checkoutRequest struct {
	CustomerDetails domain.CustomerDetails `json:"customerDetails"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

// submitCheckout drives the order flow. The response tells the
// presentation layer what to do next: render inline field errors, follow
// a full-page redirect to the gateway, or navigate to the transfer
// confirmation view.
func (h *handlers) submitCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid checkout payload"})
		return
	}
	method, ok := domain.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unknown payment method"})
		return
	}

	outcome, err := h.deps.Dispatcher.Submit(c.Request.Context(), sessionID(c), req.CustomerDetails, method)
	if err != nil {
		renderError(c, err)
		return
	}

	switch outcome.Kind {
	case checkout.OutcomeInvalid:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": outcome.FieldErrors})
	case checkout.OutcomeRedirect:
		c.JSON(http.StatusOK, gin.H{"next": "redirect", "url": outcome.RedirectURL})
	case checkout.OutcomeTransfer:
		c.JSON(http.StatusOK, gin.H{"next": "transfer", "confirmation": "/confirmation"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "unexpected checkout outcome"})
	}
}

// confirmPayment handles the customer's "I have sent the transfer"
// action. Retryable indefinitely; a failure leaves the flow where it was.
func (h *handlers) confirmPayment(c *gin.Context) {
	orderID, err := h.deps.Dispatcher.ConfirmPayment(c.Request.Context(), sessionID(c))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"next": "/order-success?orderId=" + orderID})
}
