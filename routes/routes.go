package routes

import (
	"mkh-consultation-backend/config"
	"mkh-consultation-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://mkh-haircare.com",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		consultations := api.Group("/consultations")
		{
			consultations.POST("", controllers.SubmitConsultation)
			consultations.POST("/report", controllers.DownloadReport)
		}

		api.GET("/test-images", controllers.TestImages)
	}

	return r
}
