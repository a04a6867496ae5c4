package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pse_restaurant_admin/internal/api"
	"pse_restaurant_admin/internal/middleware"
	"pse_restaurant_admin/internal/router"
	"pse_restaurant_admin/internal/session"
	"pse_restaurant_admin/pkg/utils"
)

func main() {
	utils.InitLogger()

	// Backend and session configuration from environment variables.
	backendURL := utils.Getenv("BACKEND_URL", "https://pse-restaurant-be.final25.psewmad.org/api")
	sessionFile := utils.Getenv("SESSION_FILE", ".pse_admin_session.json")

	sess, err := session.New(session.NewFileStore(sessionFile))
	if err != nil {
		utils.LogError(err, "Failed to load persisted session")
		log.Fatalf("Failed to load persisted session: %v", err)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	client := api.NewClient(backendURL, httpClient, sess)
	utils.LogInfo("Backend client initialized", map[string]interface{}{"backend_url": backendURL})

	engine := gin.Default()
	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())

	// CORS configuration for the dashboard frontend.
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.Setup(engine, client, sess)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Admin gateway starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start admin gateway")
		log.Fatalf("Failed to start admin gateway: %v", err)
	}
}
