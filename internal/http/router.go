// Package http serves the keep-alive endpoints. Hosting platforms that
// sleep idle processes poll these to keep the bot running.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func NewRouter(health *HealthController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bot is running")
	})
	router.GET("/health", health.Status)

	return router
}
