package routes

import (
	"github.com/gin-gonic/gin"

	"taxi_service/internal/controllers"
)

func CarRoutes(rg *gin.RouterGroup, cc *controllers.CarController) {
	cars := rg.Group("/cars")
	{
		cars.GET("/", cc.List)
		cars.GET("/create/", cc.CreateForm)
		cars.POST("/create/", cc.Create)
		cars.GET("/:id/", cc.Detail)
		cars.GET("/:id/update/", cc.UpdateForm)
		cars.POST("/:id/update/", cc.Update)
		cars.GET("/:id/delete/", cc.DeleteConfirm)
		cars.POST("/:id/delete/", cc.Delete)
		cars.POST("/:id/toggle-assign/", cc.ToggleAssign)
	}
}
