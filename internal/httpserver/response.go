package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chillout-web/internal/backend"
	"chillout-web/internal/domain"
)

// renderError maps an orchestration error to a response. Backend messages
// pass through verbatim with the backend's status, so the presentation
// layer can show them however it likes; everything else degrades to a
// generic message.
func renderError(c *gin.Context, err error) {
	if re, ok := domain.AsRemoteError(err); ok {
		status := re.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		message := re.Message
		if message == "" {
			message = "Something went wrong"
		}
		c.JSON(status, gin.H{"message": message})
		return
	}

	switch {
	case errors.Is(err, backend.ErrPaymentInit):
		c.JSON(http.StatusBadGateway, gin.H{"message": "Payment initialization failed."})
	case errors.Is(err, domain.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"message": "Your order is already being submitted."})
	case errors.Is(err, domain.ErrNoSnapshot):
		c.JSON(http.StatusNotFound, gin.H{"message": "No pending order for this session."})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Admin login required."})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"message": "Something went wrong. Please try again."})
	}
}
