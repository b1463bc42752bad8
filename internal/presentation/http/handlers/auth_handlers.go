package handlers

import (
	"net/http"
	"time"

	"github.com/QuillstackMedia/quillstack-go/internal/application/services"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/logging"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/performance"
	"github.com/QuillstackMedia/quillstack-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandlers handles HTTP requests for editor authentication endpoints
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// LoginRequest represents the request body for editor login
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// PostLogin handles POST /api/v1/auth/login
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	start := time.Now()

	siteCtx, exists := middleware.GetSiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "site context not found"})
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	marker := h.perfTracker.StartOperation("post_login_request", siteCtx.SiteID)
	defer marker.Complete()

	result := h.authService.AuthenticateEditor(req.Password)
	if !result.Success {
		marker.SetSuccess(false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": result.Error})
		return
	}

	h.logger.Auth().Info("Editor login completed", "duration", time.Since(start))

	c.JSON(http.StatusOK, result)
}

// GetAuthStatus handles GET /api/v1/auth/status
func (h *AuthHandlers) GetAuthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"editMode": middleware.GetEditMode(c),
	})
}
