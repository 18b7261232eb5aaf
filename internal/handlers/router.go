package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/internal/repo"
)

// NewRouter wires sessions, templates and every route.
func NewRouter(gdb *gorm.DB, viewsGlob, sessionSecret string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("storefront_session", store))

	r.LoadHTMLGlob(viewsGlob)

	h := New(repo.New(gdb))

	r.GET("/login/", h.LoginForm)
	r.POST("/login/", h.Login)
	r.GET("/signup/", h.SignupForm)
	r.POST("/signup/", h.Signup)
	r.GET("/logout/", mustLogin(), h.Logout)
	r.GET("/edit-profile/", h.EditProfileForm)
	r.POST("/edit-profile/", h.EditProfile)
	r.GET("/delete-account/", h.DeleteAccountForm)
	r.POST("/delete-account/", h.DeleteAccount)

	r.GET("/stores/", h.StoreList)
	r.GET("/stores/add", mustLogin(), h.AddStoreForm)
	r.POST("/stores/add", mustLogin(), h.AddStore)
	r.GET("/stores/:store_id/", h.StoreDetail)

	r.GET("/categories/add", mustLogin(), h.AddCategoryForm)
	r.POST("/categories/add", mustLogin(), h.AddCategory)

	r.GET("/stores/:store_id/products/", mustLogin(), h.AddProductForm)
	r.POST("/stores/:store_id/products/", mustLogin(), h.AddProduct)
	r.GET("/stores/:store_id/products/:product_id/update/", mustLogin(), h.UpdateProductForm)
	r.POST("/stores/:store_id/products/:product_id/update/", mustLogin(), h.UpdateProduct)
	r.GET("/stores/:store_id/products/:product_id/delete/", mustLogin(), h.DeleteProductForm)
	r.POST("/stores/:store_id/products/:product_id/delete/", mustLogin(), h.DeleteProduct)
	r.GET("/stores/:store_id/products/:product_id/", h.LowerPrices)

	r.GET("/", h.CategoryProducts)
	r.GET("/search/", h.SearchProducts)

	return r
}
