package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"storefront/internal/models"
)

// rememberMaxAge extends the session cookie to 14 days when asked for.
const rememberMaxAge = 1209600

func (h *Handler) LoginForm(c *gin.Context) {
	if _, ok := sessionUserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/stores/")
		return
	}
	h.render(c, http.StatusOK, "login.tmpl", nil)
}

func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		h.render(c, http.StatusBadRequest, "login.tmpl", ViewData{
			"Error": "Fill all fields",
			"Form":  ViewData{"Username": username},
		})
		return
	}

	u, err := h.repo.UserByUsername(username)
	if err != nil || !models.CheckPassword(u.PasswordHash, password) {
		h.render(c, http.StatusUnauthorized, "login.tmpl", ViewData{
			"Error": "Wrong username or password",
			"Form":  ViewData{"Username": username},
		})
		return
	}

	sess := sessions.Default(c)
	opts := sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode}
	if c.PostForm("remember_me") != "" {
		opts.MaxAge = rememberMaxAge
	}
	sess.Options(opts)
	sess.Set(userKey, u.ID)
	_ = sess.Save()

	c.Redirect(http.StatusSeeOther, "/stores/")
}

func (h *Handler) SignupForm(c *gin.Context) {
	if _, ok := sessionUserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/logout/")
		return
	}
	h.render(c, http.StatusOK, "signup.tmpl", nil)
}

func (h *Handler) Signup(c *gin.Context) {
	if _, ok := sessionUserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/logout/")
		return
	}

	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	confirm := c.PostForm("password_confirm")

	form := ViewData{"Username": username}
	switch {
	case username == "" || password == "":
		h.render(c, http.StatusBadRequest, "signup.tmpl", ViewData{"Error": "Fill all fields", "Form": form})
		return
	case password != confirm:
		h.render(c, http.StatusBadRequest, "signup.tmpl", ViewData{"Error": "Passwords do not match", "Form": form})
		return
	}

	if _, err := h.repo.CreateUser(username, password); err != nil {
		h.render(c, http.StatusBadRequest, "signup.tmpl", ViewData{"Error": err.Error(), "Form": form})
		return
	}
	c.Redirect(http.StatusSeeOther, "/login/")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/login/")
}

func (h *Handler) EditProfileForm(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		flash(c, "You are not logged in.")
		c.Redirect(http.StatusSeeOther, "/login/")
		return
	}
	h.render(c, http.StatusOK, "edit_profile.tmpl", ViewData{
		"Form": ViewData{"Username": u.Username},
	})
}

func (h *Handler) EditProfile(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		flash(c, "You are not logged in.")
		c.Redirect(http.StatusSeeOther, "/login/")
		return
	}

	username := strings.TrimSpace(c.PostForm("username"))
	if username == "" {
		h.render(c, http.StatusBadRequest, "edit_profile.tmpl", ViewData{
			"Error": "Username is required",
			"Form":  ViewData{"Username": username},
		})
		return
	}
	if other, err := h.repo.UserByUsername(username); err == nil && other.ID != u.ID {
		h.render(c, http.StatusBadRequest, "edit_profile.tmpl", ViewData{
			"Error": "Username taken",
			"Form":  ViewData{"Username": username},
		})
		return
	}

	u.Username = username
	if err := h.repo.UpdateUser(&u); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/stores/")
}

func (h *Handler) DeleteAccountForm(c *gin.Context) {
	if _, ok := sessionUserID(c); !ok {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	h.render(c, http.StatusOK, "delete_account.tmpl", nil)
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	id, ok := sessionUserID(c)
	if !ok {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	if err := h.repo.DeleteUser(id); err != nil {
		// deletion failures bounce back to the page instead of propagating
		flash(c, "An error occurred: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/delete-account/")
		return
	}

	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/login/")
}
