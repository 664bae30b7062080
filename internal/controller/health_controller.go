package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "UP",
		"message":   "Quiz API is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// RootHandler godoc
// @Summary API info
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (ctrl *Controller) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Quiz Learning Platform API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health":      "/health",
			"auth":        "/api/auth",
			"quiz":        "/api/quiz",
			"attempts":    "/api/attempts",
			"user":        "/api/user",
			"leaderboard": "/api/leaderboard",
		},
	})
}
