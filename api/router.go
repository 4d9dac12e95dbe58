package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sales_bot/internal/sales"
)

// InitRoutes registers the webhook endpoints on the given Gin engine. The
// collaborators are constructed once at process start and injected here.
func InitRoutes(e *gin.Engine, salesService *sales.Service, messenger Messenger, responder Responder, verifyToken string, logger *zap.Logger) {
	h := NewWebhookHandler(salesService, messenger, responder, verifyToken, logger)

	e.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "WhatsApp Sales Bot is running.")
	})
	e.GET("/webhook", h.handleVerify)
	e.POST("/webhook", h.handleEvent)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
