// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/QuillstackMedia/quillstack-go/internal/application/container"
	"github.com/QuillstackMedia/quillstack-go/internal/presentation/http/handlers"
	"github.com/QuillstackMedia/quillstack-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	pageHandlers := handlers.NewPageHandlers(container.PageService, container.FragmentRenderer, container.Logger, container.PerfTracker)
	articleHandlers := handlers.NewArticleHandlers(container.ArticleService, container.FragmentRenderer, container.Logger, container.PerfTracker)
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger, container.PerfTracker)
	statusHandlers := handlers.NewStatusHandlers(container.CMSClient, container.Logger, container.PerfTracker)

	api := r.Group("/api/v1")
	api.Use(middleware.SiteMiddleware())
	api.Use(middleware.EditModeMiddleware(container.AuthService))
	{
		// Editor authentication
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandlers.PostLogin)
			auth.GET("/status", authHandlers.GetAuthStatus)
		}

		// Normalized content endpoints
		apiContent := api.Group("/content")
		{
			apiContent.GET("/pages/:slug", pageHandlers.GetPageBySlug)
			apiContent.GET("/articles", articleHandlers.GetArticles)
			apiContent.GET("/articles/:slug", articleHandlers.GetArticleBySlug)
		}

		// Fragment rendering endpoints
		fragments := api.Group("/fragments")
		{
			fragments.GET("/pages/:slug", pageHandlers.GetPageFragment)
			fragments.GET("/articles", articleHandlers.GetArticleListFragment)
			fragments.GET("/articles/:slug", articleHandlers.GetArticleFragment)
		}

		// Service status
		api.GET("/cms/status", statusHandlers.GetCMSStatus)
	}

	return r
}
