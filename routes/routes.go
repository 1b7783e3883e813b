package routes

import (
	"github.com/Type-Of-Null/Silant-Skillfactory/config"
	"github.com/Type-Of-Null/Silant-Skillfactory/handlers"
	"github.com/Type-Of-Null/Silant-Skillfactory/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes настройка маршрутов
func SetupRoutes(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), middleware.Recovery())

	// CORS конфигурация
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Создание обработчиков
	authHandler := handlers.NewAuthHandler()
	carHandler := handlers.NewCarHandler(cfg)
	maintenanceHandler := handlers.NewMaintenanceHandler()
	complaintHandler := handlers.NewComplaintHandler()
	catalogHandler := handlers.NewCatalogHandler()

	r.GET("/health", handlers.Health)

	// API маршруты
	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)

		// Машины
		cars := api.Group("/cars")
		{
			cars.GET("", carHandler.GetCars)
			cars.POST("", carHandler.CreateCar)
			cars.GET("/:vin", carHandler.GetCarByVin)
		}

		// Журнал ТО
		maintenance := api.Group("/maintenance")
		{
			maintenance.GET("", maintenanceHandler.GetMaintenance)
			maintenance.POST("", maintenanceHandler.CreateMaintenance)
		}

		// Журнал рекламаций
		complaints := api.Group("/complaints")
		{
			complaints.GET("", complaintHandler.GetComplaints)
			complaints.POST("", complaintHandler.CreateComplaint)
		}

		// Справочники
		catalogs := api.Group("/models")
		{
			catalogs.GET("/clients", catalogHandler.GetClients)
			catalogs.GET("/:category", catalogHandler.GetCatalogItems)
			catalogs.POST("/:category", catalogHandler.CreateCatalogItem)
			catalogs.GET("/:category/:id", catalogHandler.GetCatalogItem)
			catalogs.PUT("/:category/:id", catalogHandler.UpdateCatalogItem)
			catalogs.DELETE("/:category/:id", catalogHandler.DeleteCatalogItem)
		}

		api.GET("/tables", handlers.GetTables)
	}

	return r
}
