package middleware

import (
	"github.com/QuillstackMedia/quillstack-go/internal/presentation/templates"
	"github.com/QuillstackMedia/quillstack-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// SiteContext carries the per-request connection metadata the authoring tool
// needs: which CMS instance the rendered page is attached to, derived from
// the request's canonical address.
type SiteContext struct {
	SiteID       string
	CanonicalURL string
	Connection   templates.Connection
}

// SiteMiddleware derives the site context for every request.
func SiteMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		canonical := scheme + "://" + c.Request.Host + c.Request.URL.Path

		siteCtx := &SiteContext{
			SiteID:       config.CMSSiteID,
			CanonicalURL: canonical,
			Connection: templates.Connection{
				Marker:       "graphql|" + config.CMSEndpointBase + "|" + config.CMSSiteID,
				SiteID:       config.CMSSiteID,
				CanonicalURL: canonical,
			},
		}

		c.Set("site", siteCtx)
		c.Next()
	}
}

// GetSiteContext retrieves the site context from gin context
func GetSiteContext(c *gin.Context) (*SiteContext, bool) {
	siteCtx, exists := c.Get("site")
	if !exists {
		return nil, false
	}

	ctx, ok := siteCtx.(*SiteContext)
	return ctx, ok
}
