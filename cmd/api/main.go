package main

import (
	"fmt"
	"log"

	"powergrid-forecast-api/catalog"
	"powergrid-forecast-api/config"
	"powergrid-forecast-api/handlers"
	"powergrid-forecast-api/middleware"
	"powergrid-forecast-api/ml"
	"powergrid-forecast-api/models"
	"powergrid-forecast-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql db handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Material{},
		&models.Forecast{},
		&models.ForecastMaterial{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional: the cache degrades to no-ops without it.
	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, running without cache: %v", err)
	}

	// The model and scaler load once and stay immutable. A failed load
	// keeps the process up but fails every inference call with 503.
	engine, err := ml.Load(cfg.Model.ArtifactPath)
	if err != nil {
		log.Printf("MODEL LOAD FAILED, forecast endpoints will return 503: %v", err)
		engine = nil
	} else {
		log.Printf("ML model + scaler loaded: version=%s outputs=%d",
			engine.Version(), engine.OutputSize())
	}

	authService := services.NewAuthService(cfg.JWT)
	forecastService := services.NewForecastService(db, engine, catalog.UnitPrices, catalog.MaterialIndex)

	authHandler := handlers.NewAuthHandler(db, authService)
	forecastHandler := handlers.NewForecastHandler(forecastService, cache)
	projectsHandler := handlers.NewProjectsHandler(db)
	materialsHandler := handlers.NewMaterialsHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)

	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "UP",
			"message": "Powergrid Forecast API is running",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	forecast := router.Group("/forecast")
	{
		forecast.POST("/predict", forecastHandler.Predict)
		forecast.POST("/save", forecastHandler.Save)
		forecast.GET("/history", forecastHandler.History)
		forecast.GET("/", forecastHandler.Root)
		forecast.GET("", forecastHandler.List)
	}

	authorized := router.Group("/", middleware.RequireAuth(authService))
	{
		authorized.POST("/projects/create", projectsHandler.Create)
		authorized.GET("/projects/user/:user_id", projectsHandler.GetForUser)
		authorized.GET("/projects", projectsHandler.List)
		authorized.POST("/materials/create", materialsHandler.Create)
		authorized.GET("/materials/project/:project_id", materialsHandler.GetForProject)
		authorized.GET("/materials/summary", materialsHandler.Summary)
	}

	router.GET("/dashboard/stats", dashboardHandler.Stats)
	router.GET("/ws/forecasts", handlers.ForecastStream(cache, authService))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
