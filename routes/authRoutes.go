package routes

import (
	"civicreport-be/controllers"
	"civicreport-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.RouterGroup, ac *controllers.AuthController, opts Options) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.RegisterUser)
		auth.POST("/login", ac.LoginUser)
		auth.GET("/me", middlewares.AuthMiddleware(opts.JWTSecret), ac.GetMe)
		auth.POST("/logout", ac.LogoutUser)
	}
}
