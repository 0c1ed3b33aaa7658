package routes

import (
	"github.com/gin-gonic/gin"

	"taxi_service/internal/controllers"
)

func DriverRoutes(rg *gin.RouterGroup, dc *controllers.DriverController) {
	drivers := rg.Group("/drivers")
	{
		drivers.GET("/", dc.List)
		drivers.GET("/create/", dc.CreateForm)
		drivers.POST("/create/", dc.Create)
		drivers.GET("/:id/", dc.Detail)
		drivers.GET("/:id/update/", dc.UpdateForm)
		drivers.POST("/:id/update/", dc.Update)
		drivers.GET("/:id/delete/", dc.DeleteConfirm)
		drivers.POST("/:id/delete/", dc.Delete)
	}
}
