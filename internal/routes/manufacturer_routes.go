package routes

import (
	"github.com/gin-gonic/gin"

	"taxi_service/internal/controllers"
)

func ManufacturerRoutes(rg *gin.RouterGroup, mc *controllers.ManufacturerController) {
	manufacturers := rg.Group("/manufacturers")
	{
		manufacturers.GET("/", mc.List)
		manufacturers.GET("/create/", mc.CreateForm)
		manufacturers.POST("/create/", mc.Create)
		manufacturers.GET("/:id/update/", mc.UpdateForm)
		manufacturers.POST("/:id/update/", mc.Update)
		manufacturers.GET("/:id/delete/", mc.DeleteConfirm)
		manufacturers.POST("/:id/delete/", mc.Delete)
	}
}
