package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/abdullah-housing/housing-backend/config"
	"github.com/abdullah-housing/housing-backend/controllers"
	"github.com/abdullah-housing/housing-backend/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg := config.Load()

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := store.Connect(ctx, store.Config{URI: cfg.DatabaseURL, Database: cfg.DatabaseName})
	if err != nil {
		log.Fatalf("store connect error: %v", err)
	}
	log.Println("Connected to MongoDB:", cfg.DatabaseName)

	router := gin.Default()

	// Allow-all CORS for the marketing frontend
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowCredentials = false
	corsCfg.AllowHeaders = []string{"*"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	health := &controllers.HealthController{Store: st, Cfg: cfg}
	auth := &controllers.AuthController{Store: st}
	content := &controllers.ContentController{Store: st}

	router.GET("/", health.Root)
	router.GET("/test", health.Test)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", auth.Register)
			authGroup.POST("/login", auth.Login)
		}

		api.GET("/projects", content.ListProjects)
		api.POST("/projects", content.CreateProject)
		api.GET("/plots", content.ListPlots)
		api.POST("/plots", content.CreatePlot)
		api.GET("/noc", content.NOCInfo)
		api.GET("/map", content.MapInfo)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine for graceful shutdown
	go func() {
		log.Printf("🚀 Server started on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt (Ctrl+C)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Server forced to shutdown:", err)
	}

	if err := st.Disconnect(shutdownCtx); err != nil {
		log.Println("Error disconnecting MongoDB:", err)
	}

	log.Println("Server exited properly ✅")
}
