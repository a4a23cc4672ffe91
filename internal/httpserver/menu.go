package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chillout-web/internal/domain"
)

// listMenu serves the browsable catalog. An unknown category is treated
// as "all"; the search term passes through untouched.
func (h *handlers) listMenu(c *gin.Context) {
	category := ""
	if parsed, ok := domain.ParseCategory(c.Query("category")); ok {
		category = string(parsed)
	}

	items, err := h.deps.Menu.List(c.Request.Context(), category, c.Query("search"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
