package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Prompt ---
	promptGroup := router.Group("/prompt")
	{
		promptGroup.GET("/options", h.GetOptions)       // Accepted keys for every enum field of the form
		promptGroup.POST("/assemble", h.AssemblePrompt) // Form -> prompt text
		promptGroup.POST("/generate", h.GeneratePrompt) // Prompt text (or form) -> model output
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// NewRouter builds the engine with the middleware the server runs with.
func NewRouter(h *APIHandler) *gin.Engine {
	router := gin.New()        // Use gin.New() for more control over middleware
	router.Use(gin.Logger())   // Request logging
	router.Use(gin.Recovery()) // Add panic recovery middleware
	RegisterRoutes(router, h)
	return router
}
