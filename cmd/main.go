package main

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/api"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/cache"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/config"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/controllers"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/middleware"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/seo"
	"github.com/yateeshchaturvedi/News-Blog-UI/internal/upload"
	"github.com/yateeshchaturvedi/News-Blog-UI/pkg/logger"
	"github.com/yateeshchaturvedi/News-Blog-UI/routes"
)

func main() {
	// The .env file is optional; containers pass real env vars.
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	pages, err := cache.New(cfg.Cache.RedisURL, cfg.Cache.PageTTL)
	if err != nil {
		log.Warn().Err(err).Msg("Page cache disabled, continuing without Redis")
		pages = nil
	}
	defer pages.Close()

	apiClient := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log)
	site := seo.NewSite(cfg.Site.URL)
	images := upload.NewSaver(cfg.Upload.Dir)

	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.MaxMultipartMemory = cfg.Upload.MaxUploadSize

	router.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	})
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "web/static")
	router.Static("/news-images", cfg.Upload.Dir)
	router.StaticFile("/sw.js", "web/static/sw.js")

	publicController := controllers.NewPublicController(apiClient, site, log)
	seoController := controllers.NewSEOController(apiClient, site, log)
	notificationController := controllers.NewNotificationController(apiClient, log)

	adminControllers := routes.AdminControllers{
		Auth:           controllers.NewAuthController(apiClient, cfg.Production(), log),
		News:           controllers.NewNewsAdminController(apiClient, pages, images, log),
		Categories:     controllers.NewCategoryAdminController(apiClient, pages, log),
		Blogs:          controllers.NewBlogAdminController(apiClient, pages, log),
		Advertisements: controllers.NewAdvertisementAdminController(apiClient, pages, images, log),
		Profile:        controllers.NewProfileController(apiClient, images, cfg.Production(), log),
		Settings:       controllers.NewSettingsController(apiClient, log),
	}

	routes.RegisterPublicRoutes(router, publicController, pages)
	routes.RegisterSeoRoutes(router, seoController)
	routes.RegisterNotificationRoutes(router, notificationController)
	routes.RegisterAdminRoutes(router, adminControllers, cfg.Production())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("api", cfg.API.BaseURL).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
	log.Info().Msg("Server stopped")
}
