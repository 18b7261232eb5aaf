// Package handlers holds one gin handler per user-facing operation. Handlers
// validate input, enforce ownership through the repo, and render a template
// or redirect. Failure kinds from the repo map to status codes in fail.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"storefront/internal/apperr"
	"storefront/internal/models"
	"storefront/internal/repo"
)

type ViewData map[string]any

const userKey = "user_id"

type Handler struct {
	repo *repo.Repo
}

func New(r *repo.Repo) *Handler {
	return &Handler{repo: r}
}

// sessionUserID reads the logged-in user id from the cookie session.
func sessionUserID(c *gin.Context) (uint, bool) {
	sess := sessions.Default(c)
	id, ok := sess.Get(userKey).(uint)
	return id, ok
}

// currentUser resolves the session to a user row. A stale session whose user
// no longer exists counts as anonymous.
func (h *Handler) currentUser(c *gin.Context) (models.User, bool) {
	id, ok := sessionUserID(c)
	if !ok {
		return models.User{}, false
	}
	u, err := h.repo.UserByID(id)
	if err != nil {
		return models.User{}, false
	}
	return u, true
}

// mustLogin redirects anonymous requests to the login page.
func mustLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := sessionUserID(c); !ok {
			c.Redirect(http.StatusSeeOther, "/login/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// flash queues a user-facing message for the next rendered page.
func flash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	_ = sess.Save()
}

// takeFlashes drains queued messages.
func takeFlashes(c *gin.Context) []string {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save()
	msgs := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}

// render fills in the keys every template may touch.
func (h *Handler) render(c *gin.Context, status int, name string, data ViewData) {
	if data == nil {
		data = ViewData{}
	}
	if _, ok := data["Form"]; !ok {
		data["Form"] = ViewData{}
	}
	if _, ok := data["Messages"]; !ok {
		data["Messages"] = takeFlashes(c)
	}
	c.HTML(status, name, data)
}

// fail maps a repo error to a response.
func fail(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.NotFound:
		c.String(http.StatusNotFound, "Not found")
	case apperr.Forbidden:
		c.String(http.StatusForbidden, "You are not authorized to modify this resource.")
	case apperr.Validation:
		c.String(http.StatusBadRequest, err.Error())
	default:
		// details go to the log, never to the client
		slog.Error("request failed", "path", c.FullPath(), "err", err)
		c.String(http.StatusInternalServerError, "Internal server error")
	}
}

// param parses a numeric path segment; 0,false on garbage.
func param(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
