package services

import (
	"context"
	"time"

	"github.com/QuillstackMedia/quillstack-go/internal/domain/entities/content"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/logging"
)

// ArticleService fetches article content through the persisted query layer.
// Unlike pages, article-by-slug does not forward a variation selector and
// its payload carries no references map.
type ArticleService struct {
	executor QueryExecutor
	logger   *logging.ChanneledLogger
}

// NewArticleService creates a new article service
func NewArticleService(executor QueryExecutor, logger *logging.ChanneledLogger) *ArticleService {
	return &ArticleService{
		executor: executor,
		logger:   logger,
	}
}

// GetBySlug runs one article-by-slug fetch cycle to completion.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) content.Result {
	start := time.Now()

	result := fetchBySlug(ctx, s.executor, content.KindArticle, slug, nil, false)

	if result.IsErrored() {
		s.logger.Content().Warn("Article fetch errored", "slug", slug, "error", result.Error, "duration", time.Since(start))
	} else {
		s.logger.Content().Info("Article resolved", "slug", slug, "duration", time.Since(start))
	}

	return result
}

// List runs one article listing fetch cycle to completion.
func (s *ArticleService) List(ctx context.Context) content.Result {
	start := time.Now()

	result := fetchList(ctx, s.executor, content.KindArticle)

	if result.IsErrored() {
		s.logger.Content().Warn("Article list fetch errored", "error", result.Error, "duration", time.Since(start))
	} else {
		s.logger.Content().Info("Article list resolved", "duration", time.Since(start))
	}

	return result
}

// NewHook returns a stateful hook bound to article-by-slug.
func (s *ArticleService) NewHook() *SlugHook {
	return newSlugHook(func(ctx context.Context, slug string, _ map[string]string) content.Result {
		return fetchBySlug(ctx, s.executor, content.KindArticle, slug, nil, false)
	})
}

// NewListHook returns a stateful hook bound to the article listing.
func (s *ArticleService) NewListHook() *ListHook {
	return newListHook(func(ctx context.Context) content.Result {
		return fetchList(ctx, s.executor, content.KindArticle)
	})
}
