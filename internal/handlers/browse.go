package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/apperr"
)

// LowerPrices shows listings of the same product name that cost strictly
// less within the same store.
func (h *Handler) LowerPrices(c *gin.Context) {
	if _, ok := sessionUserID(c); !ok {
		flash(c, "You are not logged in.")
		c.Redirect(http.StatusSeeOther, "/login/")
		return
	}

	sid, ok1 := param(c, "store_id")
	pid, ok2 := param(c, "product_id")
	if !ok1 || !ok2 {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	p, err := h.repo.ProductInStore(sid, pid)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			flash(c, "No product with that id.")
			c.Redirect(http.StatusSeeOther, "/login/")
			return
		}
		fail(c, err)
		return
	}

	cheaper, err := h.repo.LowerPriced(p)
	if err != nil {
		fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "lower_prices.tmpl", ViewData{
		"Product":    p,
		"Components": cheaper,
	})
}

// CategoryProducts lists all products, narrowed to an exact category name
// when the query parameter is present.
func (h *Handler) CategoryProducts(c *gin.Context) {
	category := c.Query("category")
	products, err := h.repo.ProductsForCategory(category)
	if err != nil {
		fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "category_products.tmpl", ViewData{
		"Products": products,
		"Category": category,
	})
}

// SearchProducts lists products whose name contains the query,
// case-insensitive. An empty or missing query lists everything.
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	products, err := h.repo.SearchProducts(query)
	if err != nil {
		fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "search_results.tmpl", ViewData{
		"Products": products,
		"Query":    query,
	})
}
