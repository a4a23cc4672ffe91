package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chillout-web/internal/config"
	"chillout-web/internal/domain"
)

type confirmationView struct {
	Pending bool               `json:"pending"`
	Order   *orderSnapshotView `json:"order,omitempty"`
	Bank    *bankDetailsView   `json:"bank,omitempty"`
}

type orderSnapshotView struct {
	OrderID         string                 `json:"orderId"`
	TotalAmount     int64                  `json:"totalAmount"`
	PaymentMethod   string                 `json:"paymentMethod"`
	CustomerDetails domain.CustomerDetails `json:"customerDetails"`
	Items           []domain.CartItem      `json:"items"`
	CreatedAt       string                 `json:"createdAt"`
}

type bankDetailsView struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	Amount        int64  `json:"amount"`
}

func toConfirmationView(snap domain.OrderSnapshot, bank config.BankDetails) confirmationView {
	items := snap.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return confirmationView{
		Pending: false,
		Order: &orderSnapshotView{
			OrderID:         snap.OrderID,
			TotalAmount:     snap.TotalAmount,
			PaymentMethod:   string(snap.PaymentMethod),
			CustomerDetails: snap.CustomerDetails,
			Items:           items,
			CreatedAt:       snap.CreatedAt.Format(time.RFC3339),
		},
		Bank: &bankDetailsView{
			BankName:      bank.BankName,
			AccountName:   bank.AccountName,
			AccountNumber: bank.AccountNumber,
			Amount:        snap.TotalAmount,
		},
	}
}

// confirmation renders the transfer-instructions view-model from the
// session's order snapshot. A session without a snapshot gets a neutral
// pending state, never an error.
func (h *handlers) confirmation(c *gin.Context) {
	snap, err := h.deps.Sessions.Snapshot(c.Request.Context(), sessionID(c))
	if errors.Is(err, domain.ErrNoSnapshot) {
		c.JSON(http.StatusOK, confirmationView{Pending: true})
		return
	}
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toConfirmationView(snap, h.deps.Bank))
}

// orderSuccess is the landing route after a confirmed transfer. Arriving
// without an orderId is invalid navigation, not an error: bounce to the
// menu.
func (h *handlers) orderSuccess(c *gin.Context) {
	orderID := c.Query("orderId")
	if orderID == "" {
		c.Redirect(http.StatusSeeOther, "/menu")
		return
	}

	view := gin.H{"orderId": orderID}
	if snap, err := h.deps.Sessions.Snapshot(c.Request.Context(), sessionID(c)); err == nil {
		view["customerName"] = snap.CustomerDetails.Name
	}
	c.JSON(http.StatusOK, view)
}

// paymentSuccess is the landing route the gateway redirects back to.
// Same missing-orderId rule as orderSuccess.
func (h *handlers) paymentSuccess(c *gin.Context) {
	orderID := c.Query("orderId")
	if orderID == "" {
		c.Redirect(http.StatusSeeOther, "/menu")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderId": orderID, "confirmed": true})
}
