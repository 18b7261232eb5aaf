package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/apperr"
)

func TestLoginWrongPassword(t *testing.T) {
	r, rp := testRouter(t)
	cl := newClient(t, r)
	signupAndLogin(t, cl, rp, "alice")

	fresh := newClient(t, r)
	w := fresh.post("/login/", url.Values{
		"username": {"alice"},
		"password": {"nope"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Wrong username or password")
}

func TestLoginMissingFields(t *testing.T) {
	r, _ := testRouter(t)
	cl := newClient(t, r)

	w := cl.post("/login/", url.Values{"username": {"alice"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRememberMeExtendsSession(t *testing.T) {
	r, rp := testRouter(t)
	cl := newClient(t, r)
	signupAndLogin(t, cl, rp, "alice")

	fresh := newClient(t, r)
	w := fresh.post("/login/", url.Values{
		"username":    {"alice"},
		"password":    {"pw-alice"},
		"remember_me": {"on"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	var maxAge int
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "storefront_session" {
			maxAge = ck.MaxAge
		}
	}
	assert.Equal(t, 1209600, maxAge, "remember-me session should last 14 days")
}

func TestLoginWithoutRememberIsSessionCookie(t *testing.T) {
	r, rp := testRouter(t)
	cl := newClient(t, r)
	signupAndLogin(t, cl, rp, "alice")

	fresh := newClient(t, r)
	w := fresh.post("/login/", url.Values{
		"username": {"alice"},
		"password": {"pw-alice"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "storefront_session" {
			assert.Zero(t, ck.MaxAge, "plain login keeps a browser-session cookie")
		}
	}
}

func TestSignupWhileAuthenticatedRedirectsToLogout(t *testing.T) {
	r, rp := testRouter(t)
	cl := newClient(t, r)
	signupAndLogin(t, cl, rp, "alice")

	w := cl.get("/signup/")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/logout/", w.Header().Get("Location"))
}

func TestSignupPasswordMismatch(t *testing.T) {
	r, _ := testRouter(t)
	cl := newClient(t, r)

	w := cl.post("/signup/", url.Values{
		"username":         {"alice"},
		"password":         {"one"},
		"password_confirm": {"two"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match")
}

func TestLogout(t *testing.T) {
	r, rp := testRouter(t)
	cl := newClient(t, r)
	signupAndLogin(t, cl, rp, "alice")

	w := cl.get("/logout/")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))

	// session is gone: logout now bounces to login via the middleware
	w = cl.get("/logout/")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
}

func TestEditProfileAnonymous(t *testing.T) {
	r, _ := testRouter(t)
	cl := newClient(t, r)

	w := cl.get("/edit-profile/")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))

	// the flash lands on the login page
	w = cl.get("/login/")
	assert.Contains(t, w.Body.String(), "You are not logged in.")
}

func TestEditProfileRename(t *testing.T) {
	r, rp := testRouter(t)
	cl := newClient(t, r)
	u := signupAndLogin(t, cl, rp, "alice")

	w := cl.post("/edit-profile/", url.Values{"username": {"alicja"}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	got, err := rp.UserByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alicja", got.Username)
}

func TestEditProfileUsernameTaken(t *testing.T) {
	r, rp := testRouter(t)
	bobCl := newClient(t, r)
	signupAndLogin(t, bobCl, rp, "bob")

	cl := newClient(t, r)
	signupAndLogin(t, cl, rp, "alice")

	w := cl.post("/edit-profile/", url.Values{"username": {"bob"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username taken")
}

func TestDeleteAccountUnauthenticated(t *testing.T) {
	r, _ := testRouter(t)
	cl := newClient(t, r)

	w := cl.get("/delete-account/")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = cl.post("/delete-account/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAccountRemovesEverything(t *testing.T) {
	r, rp := testRouter(t)
	cl := newClient(t, r)
	u := signupAndLogin(t, cl, rp, "alice")
	cat := seedCatalog(t, rp)

	st, err := rp.CreateStore("Alice's shop", u.ID)
	require.NoError(t, err)
	w := cl.post("/stores/"+itoa(st.ID)+"/products/", url.Values{
		"name":        {"Kettle"},
		"price":       {"49.90"},
		"category_id": {itoa(cat.ID)},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = cl.post("/delete-account/", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))

	_, err = rp.UserByID(u.ID)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	_, err = rp.StoreByID(st.ID)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	products, err := rp.SearchProducts("")
	require.NoError(t, err)
	assert.Empty(t, products, "account deletion cascades to stores and products")
}
