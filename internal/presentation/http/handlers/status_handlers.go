package handlers

import (
	"net/http"
	"time"

	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/cms"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/logging"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/performance"
	"github.com/QuillstackMedia/quillstack-go/internal/presentation/http/middleware"
	"github.com/QuillstackMedia/quillstack-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// StatusHandlers handles HTTP requests for service status endpoints
type StatusHandlers struct {
	cmsClient   *cms.Client
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewStatusHandlers creates a new status handlers instance
func NewStatusHandlers(cmsClient *cms.Client, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *StatusHandlers {
	return &StatusHandlers{
		cmsClient:   cmsClient,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetCMSStatus handles GET /api/v1/cms/status
func (h *StatusHandlers) GetCMSStatus(c *gin.Context) {
	start := time.Now()

	siteCtx, exists := middleware.GetSiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "site context not found"})
		return
	}

	marker := h.perfTracker.StartOperation("get_cms_status_request", siteCtx.SiteID)
	defer marker.Complete()

	status := gin.H{
		"endpoint": config.CMSEndpointBase,
		"site":     siteCtx.SiteID,
		"uptime":   h.perfTracker.Uptime().String(),
	}

	if err := h.cmsClient.Ping(c.Request.Context()); err != nil {
		marker.SetError(err)
		status["reachable"] = false
		status["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}

	status["reachable"] = true
	h.logger.CMS().Debug("CMS status check completed", "duration", time.Since(start))

	c.JSON(http.StatusOK, status)
}
