package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Config holds the router's HTTP-facing settings.
type Config struct {
	Mode       string
	Origins    []string
	AuthSecret string
}

// NewRouter assembles the gin engine: CORS, a public healthcheck, and
// the authenticated practice API.
func NewRouter(cfg Config, practice *PracticeHandler) *gin.Engine {
	if cfg.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(RequireAuth(cfg.AuthSecret))
	{
		api.POST("/practice/next", practice.Next)
		api.POST("/practice/answer", practice.Answer)
		api.POST("/practice/submit", practice.Submit)
		api.GET("/practice/session", practice.Session)
		api.DELETE("/practice/session", practice.DeleteSession)
		api.DELETE("/practice/sessions", practice.DeleteAllSessions)
		api.POST("/maintenance/cleanup", practice.Cleanup)
	}

	return router
}
