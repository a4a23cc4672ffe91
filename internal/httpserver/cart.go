package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chillout-web/internal/domain"
)

type cartMutationRequest struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
}

type cartView struct {
	Items []domain.CartItem `json:"items"`
	Count int               `json:"count"`
	Total int64             `json:"total"`
}

func toCartView(state domain.CartState) cartView {
	return cartView{Items: state.Items, Count: state.Count, Total: state.Total()}
}

// getCart returns the session's cart mirror. Fetch failures degrade to
// the last known state inside the store, so this never errors.
func (h *handlers) getCart(c *gin.Context) {
	state := h.deps.Carts.Get(c.Request.Context(), sessionID(c))
	c.JSON(http.StatusOK, toCartView(state))
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req cartMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "menuItemId is required"})
		return
	}

	state, err := h.deps.Carts.Add(c.Request.Context(), sessionID(c), req.MenuItemID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(state))
}

func (h *handlers) removeCartItem(c *gin.Context) {
	var req cartMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "menuItemId is required"})
		return
	}

	state, err := h.deps.Carts.Remove(c.Request.Context(), sessionID(c), req.MenuItemID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(state))
}
