package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) StoreList(c *gin.Context) {
	stores, err := h.repo.AllStores()
	if err != nil {
		fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "store_list.tmpl", ViewData{"Stores": stores})
}

func (h *Handler) StoreDetail(c *gin.Context) {
	id, ok := param(c, "store_id")
	if !ok {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	st, err := h.repo.StoreByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	products, err := h.repo.ProductsForStore(st.ID)
	if err != nil {
		fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "store_detail.tmpl", ViewData{
		"Store":    st,
		"Products": products,
	})
}

func (h *Handler) AddStoreForm(c *gin.Context) {
	h.render(c, http.StatusOK, "add_store.tmpl", nil)
}

func (h *Handler) AddStore(c *gin.Context) {
	// re-resolve the session: a deleted user must not own anything new
	u, ok := h.currentUser(c)
	if !ok {
		flash(c, "You are not logged in.")
		c.Redirect(http.StatusSeeOther, "/login/")
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		h.render(c, http.StatusBadRequest, "add_store.tmpl", ViewData{
			"Error": "Title is required",
			"Form":  ViewData{"Title": title},
		})
		return
	}

	if _, err := h.repo.CreateStore(title, u.ID); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/stores/")
}

func (h *Handler) AddCategoryForm(c *gin.Context) {
	h.render(c, http.StatusOK, "add_category.tmpl", nil)
}

func (h *Handler) AddCategory(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := c.PostForm("description")
	if name == "" {
		h.render(c, http.StatusBadRequest, "add_category.tmpl", ViewData{
			"Error": "Name is required",
			"Form":  ViewData{"Name": name, "Description": description},
		})
		return
	}

	if _, err := h.repo.CreateCategory(name, description); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
