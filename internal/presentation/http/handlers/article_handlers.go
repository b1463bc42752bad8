package handlers

import (
	"net/http"
	"time"

	"github.com/QuillstackMedia/quillstack-go/internal/application/services"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/logging"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/performance"
	"github.com/QuillstackMedia/quillstack-go/internal/presentation/http/middleware"
	"github.com/QuillstackMedia/quillstack-go/internal/presentation/templates"
	"github.com/gin-gonic/gin"
)

// ArticleHandlers handles HTTP requests for article endpoints
type ArticleHandlers struct {
	articleService *services.ArticleService
	renderer       *templates.FragmentRenderer
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewArticleHandlers creates a new article handlers instance
func NewArticleHandlers(articleService *services.ArticleService, renderer *templates.FragmentRenderer, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ArticleHandlers {
	return &ArticleHandlers{
		articleService: articleService,
		renderer:       renderer,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetArticleBySlug handles GET /api/v1/content/articles/:slug
func (h *ArticleHandlers) GetArticleBySlug(c *gin.Context) {
	start := time.Now()

	siteCtx, exists := middleware.GetSiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "site context not found"})
		return
	}

	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article slug is required"})
		return
	}

	marker := h.perfTracker.StartOperation("get_article_by_slug_request", siteCtx.SiteID)
	defer marker.Complete()

	result := h.articleService.GetBySlug(c.Request.Context(), slug)
	if result.IsErrored() {
		marker.SetSuccess(false)
		c.JSON(statusForContentError(result.Error), gin.H{"error": result.Error})
		return
	}

	h.logger.Content().Info("Get article request completed", "slug", slug, "duration", time.Since(start))

	c.JSON(http.StatusOK, result)
}

// GetArticles handles GET /api/v1/content/articles
func (h *ArticleHandlers) GetArticles(c *gin.Context) {
	start := time.Now()

	siteCtx, exists := middleware.GetSiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "site context not found"})
		return
	}

	marker := h.perfTracker.StartOperation("get_articles_request", siteCtx.SiteID)
	defer marker.Complete()

	result := h.articleService.List(c.Request.Context())
	if result.IsErrored() {
		marker.SetSuccess(false)
		c.JSON(statusForContentError(result.Error), gin.H{"error": result.Error})
		return
	}

	h.logger.Content().Info("Get articles request completed", "duration", time.Since(start))

	c.JSON(http.StatusOK, result)
}

// GetArticleFragment handles GET /api/v1/fragments/articles/:slug
func (h *ArticleHandlers) GetArticleFragment(c *gin.Context) {
	siteCtx, exists := middleware.GetSiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "site context not found"})
		return
	}

	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article slug is required"})
		return
	}
	editMode := middleware.GetEditMode(c)

	marker := h.perfTracker.StartOperation("get_article_fragment_request", siteCtx.SiteID)
	defer marker.Complete()

	result := h.articleService.GetBySlug(c.Request.Context(), slug)
	if result.IsErrored() {
		marker.SetSuccess(false)
		c.JSON(statusForContentError(result.Error), gin.H{"error": result.Error})
		return
	}

	html, err := h.renderer.RenderArticle(result, siteCtx.Connection, editMode)
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GetArticleListFragment handles GET /api/v1/fragments/articles
func (h *ArticleHandlers) GetArticleListFragment(c *gin.Context) {
	siteCtx, exists := middleware.GetSiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "site context not found"})
		return
	}
	editMode := middleware.GetEditMode(c)

	marker := h.perfTracker.StartOperation("get_article_list_fragment_request", siteCtx.SiteID)
	defer marker.Complete()

	result := h.articleService.List(c.Request.Context())
	if result.IsErrored() {
		marker.SetSuccess(false)
		c.JSON(statusForContentError(result.Error), gin.H{"error": result.Error})
		return
	}

	html, err := h.renderer.RenderArticleList(result, siteCtx.Connection, editMode)
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
