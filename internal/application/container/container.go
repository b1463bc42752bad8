// Package container provides dependency injection for all singleton services
package container

import (
	"net/http"

	"github.com/QuillstackMedia/quillstack-go/internal/application/services"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/cms"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/logging"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/performance"
	"github.com/QuillstackMedia/quillstack-go/internal/presentation/templates"
	"github.com/QuillstackMedia/quillstack-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Content Services (stateless singletons)
	PageService    *services.PageService
	ArticleService *services.ArticleService
	AuthService    *services.AuthService

	// Presentation
	FragmentRenderer *templates.FragmentRenderer

	// Infrastructure Dependencies
	CMSClient   *cms.Client
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
}

// NewContainer creates and wires all singleton services
func NewContainer() (*Container, error) {
	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.OutputToFile = config.LogToFile
	loggerConfig.LogDirectory = config.LogDirectory
	loggerConfig.DefaultLevel = logging.ParseLevel(config.LogLevelDefault)

	logger, err := logging.NewChanneledLogger(loggerConfig)
	if err != nil {
		return nil, err
	}

	perfTracker := performance.NewTracker(performance.DefaultTrackerConfig())

	cmsClient := cms.NewClient(
		config.CMSEndpointBase,
		&http.Client{Timeout: config.CMSHTTPTimeout},
		logger,
	)

	return &Container{
		// Content Services
		PageService:    services.NewPageService(cmsClient, logger),
		ArticleService: services.NewArticleService(cmsClient, logger),
		AuthService:    services.NewAuthService(logger),

		// Presentation
		FragmentRenderer: templates.NewFragmentRenderer(logger),

		// Infrastructure
		CMSClient:   cmsClient,
		Logger:      logger,
		PerfTracker: perfTracker,
	}, nil
}
