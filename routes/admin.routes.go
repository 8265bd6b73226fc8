package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/controllers"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/middleware"
)

// AdminControllers bundles everything mounted under /admin.
type AdminControllers struct {
	Auth           *controllers.AuthController
	News           *controllers.NewsAdminController
	Categories     *controllers.CategoryAdminController
	Blogs          *controllers.BlogAdminController
	Advertisements *controllers.AdvertisementAdminController
	Profile        *controllers.ProfileController
	Settings       *controllers.SettingsController
}

func RegisterAdminRoutes(router *gin.Engine, ctrl AdminControllers, secureCookies bool) {
	admin := router.Group("/admin")
	admin.Use(middleware.SessionGate(secureCookies))
	{
		admin.GET("", ctrl.Auth.ShowLogin)
		admin.POST("/login", ctrl.Auth.Login)
		admin.POST("/logout", ctrl.Auth.Logout)

		admin.GET("/dashboard", ctrl.News.Dashboard)

		newsRoutes := admin.Group("/dashboard/news")
		{
			newsRoutes.GET("", ctrl.News.List)
			newsRoutes.GET("/new", ctrl.News.New)
			newsRoutes.POST("", ctrl.News.Create)
			newsRoutes.GET("/:id/edit", ctrl.News.Edit)
			newsRoutes.POST("/:id", ctrl.News.Update)
			newsRoutes.POST("/:id/delete", ctrl.News.Delete)
			newsRoutes.POST("/:id/status", ctrl.News.SetStatus)
		}

		categoryRoutes := admin.Group("/dashboard/categories")
		{
			categoryRoutes.GET("", ctrl.Categories.List)
			categoryRoutes.POST("", ctrl.Categories.Create)
			categoryRoutes.POST("/:id", ctrl.Categories.Update)
			categoryRoutes.POST("/:id/delete", ctrl.Categories.Delete)
		}

		blogRoutes := admin.Group("/dashboard/blogs")
		{
			blogRoutes.GET("", ctrl.Blogs.List)
			blogRoutes.POST("", ctrl.Blogs.Create)
			blogRoutes.POST("/:id", ctrl.Blogs.Update)
			blogRoutes.POST("/:id/delete", ctrl.Blogs.Delete)
		}

		adRoutes := admin.Group("/dashboard/ads")
		{
			adRoutes.GET("", ctrl.Advertisements.List)
			adRoutes.POST("", ctrl.Advertisements.Create)
			adRoutes.POST("/:id", ctrl.Advertisements.Update)
			adRoutes.POST("/:id/delete", ctrl.Advertisements.Delete)
		}

		admin.GET("/dashboard/profile", ctrl.Profile.Show)
		admin.POST("/dashboard/profile", ctrl.Profile.Update)
		admin.POST("/dashboard/profile/delete", ctrl.Profile.DeleteAccount)

		admin.GET("/dashboard/settings", ctrl.Settings.Show)
		admin.POST("/dashboard/settings/editors", ctrl.Settings.CreateEditor)
	}
}
