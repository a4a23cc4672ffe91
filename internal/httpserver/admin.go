package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chillout-web/internal/backend"
	"chillout-web/internal/domain"
)

const adminCtxKey = "adminPassword"

type adminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// adminLogin verifies the password against the backend and, on success,
// stores it in the session. The browser never holds the credential; the
// backend still re-checks it on every admin call.
func (h *handlers) adminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "password is required"})
		return
	}

	ok, err := h.deps.Admin.Login(c.Request.Context(), req.Password)
	if err != nil {
		renderError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid password"})
		return
	}

	if err := h.deps.Sessions.SaveAdminCredential(c.Request.Context(), sessionID(c), req.Password); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handlers) adminLogout(c *gin.Context) {
	if err := h.deps.Sessions.ClearAdminCredential(c.Request.Context(), sessionID(c)); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// requireAdmin loads the session's admin credential and aborts with 401
// when the session never logged in.
func (h *handlers) requireAdmin(c *gin.Context) {
	password, err := h.deps.Sessions.AdminCredential(c.Request.Context(), sessionID(c))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Admin login required."})
		return
	}
	c.Set(adminCtxKey, password)
	c.Next()
}

func adminPassword(c *gin.Context) string {
	return c.GetString(adminCtxKey)
}

func (h *handlers) adminListOrders(c *gin.Context) {
	orders, err := h.deps.Admin.FetchOrders(c.Request.Context(), adminPassword(c))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *handlers) adminUpdateOrderStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}

	err := h.deps.Admin.UpdateOrderStatus(c.Request.Context(), adminPassword(c), c.Param("id"), req.Status)
	if err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) adminConfirmPayment(c *gin.Context) {
	err := h.deps.Admin.AdminConfirmPayment(c.Request.Context(), adminPassword(c), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type menuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Image       string `json:"image"`
}

func (r menuItemRequest) toInput() (backend.MenuItemInput, bool) {
	category, ok := domain.ParseCategory(r.Category)
	if !ok {
		return backend.MenuItemInput{}, false
	}
	return backend.MenuItemInput{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Price:       r.Price,
		Category:    string(category),
		Image:       strings.TrimSpace(r.Image),
	}, true
}

func (h *handlers) adminCreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, price and category are required"})
		return
	}
	in, ok := req.toInput()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "category must be food, drink or wine"})
		return
	}

	if err := h.deps.Admin.CreateMenuItem(c.Request.Context(), adminPassword(c), in); err != nil {
		renderError(c, err)
		return
	}
	h.deps.Menu.Invalidate(c.Request.Context())
	c.Status(http.StatusCreated)
}

func (h *handlers) adminUpdateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, price and category are required"})
		return
	}
	in, ok := req.toInput()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "category must be food, drink or wine"})
		return
	}

	if err := h.deps.Admin.UpdateMenuItem(c.Request.Context(), adminPassword(c), c.Param("id"), in); err != nil {
		renderError(c, err)
		return
	}
	h.deps.Menu.Invalidate(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *handlers) adminDeleteMenuItem(c *gin.Context) {
	if err := h.deps.Admin.DeleteMenuItem(c.Request.Context(), adminPassword(c), c.Param("id")); err != nil {
		renderError(c, err)
		return
	}
	h.deps.Menu.Invalidate(c.Request.Context())
	c.Status(http.StatusNoContent)
}
