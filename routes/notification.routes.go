package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/controllers"
)

func RegisterNotificationRoutes(router *gin.Engine, notificationController *controllers.NotificationController) {
	notificationRoutes := router.Group("/api/notifications")
	{
		notificationRoutes.GET("/public-key", notificationController.PublicKey)
		notificationRoutes.POST("/subscribe", notificationController.Subscribe)
		notificationRoutes.POST("/unsubscribe", notificationController.Unsubscribe)
	}
}
