package routes

import (
	"github.com/JahvoL/mall-end/controllers"
	"github.com/JahvoL/mall-end/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes.
func SetupRouter(addressCtl *controllers.AddressController) *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			utils.SuccessData(c, gin.H{"status": "ok"})
		})

		address := api.Group("/address")
		{
			address.POST("", addressCtl.Save)
			address.PUT("", addressCtl.Update)
			address.DELETE("/:id", addressCtl.Delete)
			address.GET("", addressCtl.FindAll)
			address.GET("/page", addressCtl.FindPage)
			address.GET("/page/front", addressCtl.FindPageFront)
			address.GET("/:id", addressCtl.FindByID)
		}
	}

	return router
}
