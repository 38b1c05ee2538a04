package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopease/shopease/controllers"
	"github.com/shopease/shopease/database"
	"github.com/shopease/shopease/logger"
	"github.com/shopease/shopease/middleware"
	"github.com/shopease/shopease/repository"
	"github.com/shopease/shopease/routes"
	"github.com/shopease/shopease/services"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(cfg.MongoURI, cfg.MongoDB); err != nil {
		logger.Log.Fatal("Could not connect to MongoDB", zap.Error(err))
	}
	defer database.Close()

	orderRepo := repository.NewMongoOrderRepository(database.DB)
	productRepo := repository.NewMongoProductRepository(database.DB)
	userRepo := repository.NewMongoUserRepository(database.DB)

	tokens := services.NewTokenService(cfg.JWTSecret)
	orderService := services.NewOrderService(orderRepo, productRepo)
	productService := services.NewProductService(productRepo)
	authService := services.NewAuthService(userRepo, tokens)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(r,
		controllers.NewOrderController(orderService),
		controllers.NewProductController(productService),
		controllers.NewAuthController(authService),
		tokens,
	)

	logger.Log.Info("Shop-ease API started", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
