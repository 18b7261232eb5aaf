package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
)

type productForm struct {
	Name        string
	Description string
	Price       string
	URL         string
	CategoryID  string
}

func readProductForm(c *gin.Context) productForm {
	return productForm{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Price:       strings.TrimSpace(c.PostForm("price")),
		URL:         strings.TrimSpace(c.PostForm("url")),
		CategoryID:  strings.TrimSpace(c.PostForm("category_id")),
	}
}

// parse validates the form. Price only has to be a float: negative values
// pass through unchanged.
func (f productForm) parse() (price float64, categoryID uint, errMsg string) {
	if f.Name == "" || f.Price == "" || f.CategoryID == "" {
		return 0, 0, "Fill name, price and category"
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(f.Price, ",", "."), 64)
	if err != nil {
		return 0, 0, "Price must be a number"
	}
	cid, err := strconv.ParseUint(f.CategoryID, 10, 32)
	if err != nil {
		return 0, 0, "Pick a category"
	}
	return price, uint(cid), ""
}

func (f productForm) view() ViewData {
	return ViewData{
		"Name": f.Name, "Description": f.Description,
		"Price": f.Price, "URL": f.URL,
	}
}

func (h *Handler) AddProductForm(c *gin.Context) {
	u, okUser := h.currentUser(c)
	if !okUser {
		flash(c, "You are not logged in.")
		c.Redirect(http.StatusSeeOther, "/login/")
		return
	}
	sid, ok := param(c, "store_id")
	if !ok {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	st, err := h.repo.StoreOwnedBy(sid, u.ID)
	if err != nil {
		fail(c, err)
		return
	}
	products, err := h.repo.ProductsForStore(st.ID)
	if err != nil {
		fail(c, err)
		return
	}
	cats, err := h.repo.AllCategories()
	if err != nil {
		fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "add_product.tmpl", ViewData{
		"Store":      st,
		"Products":   products,
		"Categories": cats,
	})
}

func (h *Handler) AddProduct(c *gin.Context) {
	u, okUser := h.currentUser(c)
	if !okUser {
		flash(c, "You are not logged in.")
		c.Redirect(http.StatusSeeOther, "/login/")
		return
	}
	sid, ok := param(c, "store_id")
	if !ok {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	st, err := h.repo.StoreOwnedBy(sid, u.ID)
	if err != nil {
		fail(c, err)
		return
	}

	form := readProductForm(c)
	price, categoryID, errMsg := form.parse()
	if errMsg != "" {
		cats, _ := h.repo.AllCategories()
		h.render(c, http.StatusBadRequest, "add_product.tmpl", ViewData{
			"Store": st, "Categories": cats,
			"Error": errMsg, "Form": form.view(),
		})
		return
	}

	p := models.Product{
		Name:        form.Name,
		Description: form.Description,
		Price:       price,
		URL:         form.URL,
		StoreID:     st.ID,
		CategoryID:  categoryID,
	}
	if err := h.repo.CreateProduct(&p); err != nil {
		fail(c, err)
		return
	}
	// land on the price comparison for the new product
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/stores/%d/products/%d/", st.ID, p.ID))
}

func (h *Handler) UpdateProductForm(c *gin.Context) {
	uid, _ := sessionUserID(c)
	sid, ok1 := param(c, "store_id")
	pid, ok2 := param(c, "product_id")
	if !ok1 || !ok2 {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	p, err := h.repo.OwnedProduct(sid, pid, uid)
	if err != nil {
		fail(c, err)
		return
	}
	cats, err := h.repo.AllCategories()
	if err != nil {
		fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "update_product.tmpl", ViewData{
		"Product":    p,
		"Categories": cats,
		"Form": ViewData{
			"Name": p.Name, "Description": p.Description,
			"Price": strconv.FormatFloat(p.Price, 'f', -1, 64), "URL": p.URL,
		},
	})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	uid, _ := sessionUserID(c)
	sid, ok1 := param(c, "store_id")
	pid, ok2 := param(c, "product_id")
	if !ok1 || !ok2 {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	p, err := h.repo.OwnedProduct(sid, pid, uid)
	if err != nil {
		fail(c, err)
		return
	}

	form := readProductForm(c)
	price, categoryID, errMsg := form.parse()
	if errMsg != "" {
		cats, _ := h.repo.AllCategories()
		h.render(c, http.StatusBadRequest, "update_product.tmpl", ViewData{
			"Product": p, "Categories": cats,
			"Error": errMsg, "Form": form.view(),
		})
		return
	}

	p.Name = form.Name
	p.Description = form.Description
	p.Price = price
	p.URL = form.URL
	p.CategoryID = categoryID
	if err := h.repo.UpdateProduct(&p); err != nil {
		fail(c, err)
		return
	}
	// stays on the edit page, like the original
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/stores/%d/products/%d/update/", sid, p.ID))
}

func (h *Handler) DeleteProductForm(c *gin.Context) {
	uid, _ := sessionUserID(c)
	sid, ok1 := param(c, "store_id")
	pid, ok2 := param(c, "product_id")
	if !ok1 || !ok2 {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	p, err := h.repo.OwnedProduct(sid, pid, uid)
	if err != nil {
		fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "delete_product.tmpl", ViewData{"Product": p})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	uid, _ := sessionUserID(c)
	sid, ok1 := param(c, "store_id")
	pid, ok2 := param(c, "product_id")
	if !ok1 || !ok2 {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	p, err := h.repo.OwnedProduct(sid, pid, uid)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.repo.DeleteProduct(&p); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/stores/%d/products/", sid))
}
