package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Rinde17/stocky/docs"
	"github.com/Rinde17/stocky/internal/auth"
	"github.com/Rinde17/stocky/internal/cache"
	"github.com/Rinde17/stocky/internal/config"
	"github.com/Rinde17/stocky/internal/database"
	"github.com/Rinde17/stocky/internal/handlers"
	"github.com/Rinde17/stocky/internal/repository"
	"github.com/Rinde17/stocky/internal/service"
	"github.com/Rinde17/stocky/pkg/logger"
	"github.com/Rinde17/stocky/pkg/middleware"
)

// @title           Stocky API
// @version         1.0
// @description     Multi-tenant inventory tracking API: items, item types and per-user dashboard statistics.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg := config.Load()

	log := logger.New(cfg.Environment)
	defer log.Sync()

	log.Info("Starting Stocky API",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
	)

	db, err := database.Open(cfg.SQLitePath, log)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	itemRepo := repository.NewSQLiteItemRepository(db)
	itemTypeRepo := repository.NewSQLiteItemTypeRepository(db)
	userRepo := repository.NewSQLiteUserRepository(db)

	itemService := service.NewItemService(log, itemRepo, itemTypeRepo, userRepo)
	itemTypeService := service.NewItemTypeService(log, itemTypeRepo)
	dashboardService := service.NewDashboardService(itemService, itemTypeService)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, log)
	authHandler := auth.NewAuthHandler(jwtManager, userRepo, log)

	var cacheClient cache.Cache
	if cfg.UseCache {
		cacheClient = cache.NewCache(cfg, log)
	}

	inventoryHandler := handlers.NewInventoryHandler(log, itemService, itemTypeService, cacheClient)
	itemTypeHandler := handlers.NewItemTypeHandler(log, itemTypeService, cacheClient)
	dashboardHandler := handlers.NewDashboardHandler(log, itemService, dashboardService, cacheClient, cfg.CacheTTL)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RecoveryHandler(log))
	router.Use(logger.GinMiddleware(log))
	router.Use(middleware.RequestIDMiddleware(log))
	router.Use(middleware.ErrorHandler(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "stocky-api"})
	})

	router.GET("/login", authHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.POST("/register", authHandler.Register)
	router.POST("/logout", authHandler.Logout)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app := router.Group("/app")
	app.Use(middleware.AuthMiddleware(jwtManager, log))
	{
		app.GET("/dashboard", dashboardHandler.GetDashboard)

		app.GET("/inventory", inventoryHandler.Index)
		app.POST("/inventory", inventoryHandler.Create)
		app.PUT("/inventory/:id", inventoryHandler.Update)
		app.DELETE("/inventory/:id", inventoryHandler.Delete)
		app.PATCH("/user/low-stock-threshold", inventoryHandler.UpdateLowStockThreshold)

		app.GET("/item-types", itemTypeHandler.Index)
		app.POST("/item-types", itemTypeHandler.Create)
		app.PUT("/item-types/:id", itemTypeHandler.Update)
		app.DELETE("/item-types/:id", itemTypeHandler.Delete)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("Stocky API listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
