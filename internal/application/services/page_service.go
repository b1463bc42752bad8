package services

import (
	"context"
	"time"

	"github.com/QuillstackMedia/quillstack-go/internal/domain/entities/content"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/logging"
)

// PageService fetches page content by slug through the persisted query
// layer. Pages carry a _references map for embedded assets, and the optional
// variation selector from the request query string is forwarded to the CMS.
type PageService struct {
	executor QueryExecutor
	logger   *logging.ChanneledLogger
}

// NewPageService creates a new page service
func NewPageService(executor QueryExecutor, logger *logging.ChanneledLogger) *PageService {
	return &PageService{
		executor: executor,
		logger:   logger,
	}
}

// GetBySlug runs one page-by-slug fetch cycle to completion. Variation, when
// non-empty, is forwarded as an extra query parameter.
func (s *PageService) GetBySlug(ctx context.Context, slug, variation string) content.Result {
	start := time.Now()

	var extra map[string]string
	if variation != "" {
		extra = map[string]string{"variation": variation}
	}

	result := fetchBySlug(ctx, s.executor, content.KindPage, slug, extra, true)

	if result.IsErrored() {
		s.logger.Content().Warn("Page fetch errored", "slug", slug, "error", result.Error, "duration", time.Since(start))
	} else {
		s.logger.Content().Info("Page resolved", "slug", slug, "references", len(result.References), "duration", time.Since(start))
	}

	return result
}

// NewHook returns a stateful hook bound to this service for consumers whose
// identifying slug changes over their lifetime.
func (s *PageService) NewHook() *SlugHook {
	return newSlugHook(func(ctx context.Context, slug string, extra map[string]string) content.Result {
		return fetchBySlug(ctx, s.executor, content.KindPage, slug, extra, true)
	})
}
