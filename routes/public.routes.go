package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/cache"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/controllers"
)

func RegisterPublicRoutes(router *gin.Engine, publicController *controllers.PublicController, pages *cache.Pages) {
	cached := router.Group("/", cache.Page(pages))
	{
		cached.GET("/", publicController.Home)
		cached.GET("/news", publicController.News)
		cached.GET("/topics", publicController.Topics)
		cached.GET("/topics/:slug", publicController.Topic)
		cached.GET("/authors", publicController.Authors)
		cached.GET("/authors/:slug", publicController.Author)
		cached.GET("/blog", publicController.Blog)
		cached.GET("/blog/:id", publicController.BlogPost)
	}

	router.GET("/news/:category/:id", publicController.LegacyArticle)
	router.GET("/lessons/:category/:lesson", publicController.Lesson)
	router.GET("/search", publicController.Search)

	router.GET("/contact", publicController.ShowContact)
	router.POST("/contact", publicController.SubmitContact)

	router.GET("/privacy", publicController.StaticPage("privacy.html", "Privacy Policy", "/privacy"))
	router.GET("/terms", publicController.StaticPage("terms.html", "Terms of Service", "/terms"))
	router.GET("/data-retention", publicController.StaticPage("data_retention.html", "Data Retention", "/data-retention"))

	router.NoRoute(publicController.NotFound)
}
