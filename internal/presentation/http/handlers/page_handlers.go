// Package handlers provides HTTP handlers for content and fragment endpoints
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/QuillstackMedia/quillstack-go/internal/application/services"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/logging"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/performance"
	"github.com/QuillstackMedia/quillstack-go/internal/presentation/http/middleware"
	"github.com/QuillstackMedia/quillstack-go/internal/presentation/templates"
	"github.com/gin-gonic/gin"
)

// PageHandlers handles HTTP requests for page endpoints
type PageHandlers struct {
	pageService *services.PageService
	renderer    *templates.FragmentRenderer
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewPageHandlers creates a new page handlers instance
func NewPageHandlers(pageService *services.PageService, renderer *templates.FragmentRenderer, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *PageHandlers {
	return &PageHandlers{
		pageService: pageService,
		renderer:    renderer,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetPageBySlug handles GET /api/v1/content/pages/:slug
func (h *PageHandlers) GetPageBySlug(c *gin.Context) {
	start := time.Now()

	siteCtx, exists := middleware.GetSiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "site context not found"})
		return
	}

	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page slug is required"})
		return
	}
	variation := c.Query("variation")

	marker := h.perfTracker.StartOperation("get_page_by_slug_request", siteCtx.SiteID)
	defer marker.Complete()

	result := h.pageService.GetBySlug(c.Request.Context(), slug, variation)
	if result.IsErrored() {
		marker.SetSuccess(false)
		c.JSON(statusForContentError(result.Error), gin.H{"error": result.Error})
		return
	}

	h.logger.Content().Info("Get page request completed", "slug", slug, "duration", time.Since(start))

	c.JSON(http.StatusOK, result)
}

// GetPageFragment handles GET /api/v1/fragments/pages/:slug
func (h *PageHandlers) GetPageFragment(c *gin.Context) {
	siteCtx, exists := middleware.GetSiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "site context not found"})
		return
	}

	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page slug is required"})
		return
	}
	variation := c.Query("variation")
	editMode := middleware.GetEditMode(c)

	marker := h.perfTracker.StartOperation("get_page_fragment_request", siteCtx.SiteID)
	defer marker.Complete()

	result := h.pageService.GetBySlug(c.Request.Context(), slug, variation)
	if result.IsErrored() {
		marker.SetSuccess(false)
		c.JSON(statusForContentError(result.Error), gin.H{"error": result.Error})
		return
	}

	html, err := h.renderer.RenderPage(result, siteCtx.Connection, editMode)
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// statusForContentError maps a terminal content error onto an HTTP status.
// Shape errors are not-found conditions; everything else is an upstream
// transport failure.
func statusForContentError(message string) int {
	if strings.HasPrefix(message, "Cannot find") {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
