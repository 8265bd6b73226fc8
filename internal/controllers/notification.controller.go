package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/api"
)

// NotificationController proxies the browser push-subscription endpoints so
// the service worker only ever talks to this origin.
type NotificationController struct {
	api *api.Client
	log zerolog.Logger
}

func NewNotificationController(apiClient *api.Client, log zerolog.Logger) *NotificationController {
	return &NotificationController{api: apiClient, log: log}
}

// PublicKey returns the VAPID public key as JSON.
func (nc *NotificationController) PublicKey(c *gin.Context) {
	key, err := nc.api.NotificationPublicKey(c.Request.Context())
	if err != nil {
		nc.log.Warn().Err(err).Msg("Failed to fetch notification public key")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Push notifications are unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicKey": key})
}

// Subscribe forwards the browser's push subscription object untouched.
func (nc *NotificationController) Subscribe(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 64<<10))
	if err != nil || !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription payload"})
		return
	}
	if err := nc.api.SubscribeNotifications(c.Request.Context(), json.RawMessage(body)); err != nil {
		nc.log.Warn().Err(err).Msg("Failed to register push subscription")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to register subscription"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed"})
}

// Unsubscribe removes a push subscription by its endpoint URL.
func (nc *NotificationController) Unsubscribe(c *gin.Context) {
	var req struct {
		Endpoint string `json:"endpoint" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Endpoint is required"})
		return
	}
	if err := nc.api.UnsubscribeNotifications(c.Request.Context(), req.Endpoint); err != nil {
		nc.log.Warn().Err(err).Msg("Failed to remove push subscription")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to remove subscription"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unsubscribed"})
}
