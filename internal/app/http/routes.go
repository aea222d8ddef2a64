package routes

import (
	"net/http"

	authapi "art-collector/internal/api/auth"
	usersapi "art-collector/internal/api/users"
	worksapi "art-collector/internal/api/works"
	"art-collector/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth       *authapi.Handler
	Users      *usersapi.Handler
	Collection *worksapi.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(middleware.NotFound)

	public := r.Group("/")
	public.GET("", h.Auth.Home)
	public.GET("/home", h.Auth.Home)
	public.GET("/register", h.Auth.RegisterPage)
	public.POST("/register", h.Auth.Register)
	public.POST("/login", h.Auth.Login)
	public.GET("/logout", h.Auth.Logout)
	public.POST("/forgotten", h.Auth.Forgotten)
	public.GET("/password_reset/:id/:token", h.Auth.ResetPage)
	public.POST("/password_reset/:id/:token", h.Auth.Reset)

	// Authenticated
	prefs := r.Group("/preferences", middleware.RequireUser())
	prefs.GET("", h.Users.Preferences)
	prefs.PUT("", h.Users.UpdatePreferences)
	prefs.PUT("/edit", h.Users.UpdatePreferences)
	prefs.PUT("/change_password", h.Users.ChangePassword)
	prefs.GET("/deleteAcc", h.Users.DeleteAccountPage)
	prefs.DELETE("/deleteAcc/confirmed", h.Users.DeleteAccount)

	collection := r.Group("/collection", middleware.RequireUser())
	collection.GET("", h.Collection.Index)
	collection.GET("/new", h.Collection.New)
	collection.POST("", h.Collection.Create)
	collection.POST("/export_collection", h.Collection.Export)
	collection.GET("/show/:id", h.Collection.Show)
	collection.GET("/show/:id/edit", h.Collection.Edit)
	collection.GET("/show/:id/edit/images", h.Collection.EditImages)
	collection.PUT("/show/:id", h.Collection.Update)
	collection.DELETE("/show/:id", h.Collection.Delete)
}
