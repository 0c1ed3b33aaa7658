package routes

import (
	"github.com/gin-gonic/gin"

	"taxi_service/internal/controllers"
	"taxi_service/internal/middleware"
)

func AuthRoutes(r *gin.Engine, ac *controllers.AuthController, limiter *middleware.RateLimiter) {
	auth := r.Group("/accounts")
	{
		auth.GET("/login/", ac.LoginPage)
		if limiter != nil {
			auth.POST("/login/", limiter.RateLimit(), ac.Login)
		} else {
			auth.POST("/login/", ac.Login)
		}
		auth.POST("/logout/", ac.Logout)
	}
}

func HomeRoutes(rg *gin.RouterGroup, hc *controllers.HomeController) {
	rg.GET("/", hc.Index)
}
