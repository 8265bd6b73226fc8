package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/controllers"
)

func RegisterSeoRoutes(router *gin.Engine, seoController *controllers.SEOController) {
	router.GET("/robots.txt", seoController.Robots)
	router.GET("/sitemap.xml", seoController.Sitemap)
}
