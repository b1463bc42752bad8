package templates

import (
	"encoding/json"
	"testing"

	"github.com/QuillstackMedia/quillstack-go/internal/domain/entities/content"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer(t *testing.T) *FragmentRenderer {
	t.Helper()
	config := logging.DefaultLoggerConfig()
	config.OutputToConsole = false
	logger, err := logging.NewChanneledLogger(config)
	require.NoError(t, err)
	return NewFragmentRenderer(logger)
}

func testConnection() Connection {
	return Connection{
		Marker:       "graphql|http://localhost:4502/graphql/execute.json/quillstack|quillstack",
		SiteID:       "quillstack",
		CanonicalURL: "http://localhost:8080/home",
	}
}

func TestRenderPageWithReferencedImage(t *testing.T) {
	payload := json.RawMessage(`{
		"_id": "p1",
		"slug": "home",
		"title": "Welcome",
		"lede": {"plaintext": "A short intro"},
		"body": {"html": "<p>Main <em>content</em></p>"},
		"featuredImage": {"_id": "asset-1"}
	}`)
	references := map[string]json.RawMessage{
		"asset-1": json.RawMessage(`{"url": "/content/dam/hero.png", "alt": "Hero"}`),
	}
	result := content.Resolved(payload, references)

	got, err := testRenderer(t).RenderPage(result, testConnection(), true)
	require.NoError(t, err)

	assert.Contains(t, got, `<article class="page"`)
	assert.Contains(t, got, `data-cms-connection="graphql|http://localhost:4502/graphql/execute.json/quillstack|quillstack"`)
	assert.Contains(t, got, `data-cms-site="quillstack"`)
	assert.Contains(t, got, `data-content-slug="home"`)
	assert.Contains(t, got, `<h1 data-edit-prop="title" data-edit-type="text" data-edit-role="heading">Welcome</h1>`)
	assert.Contains(t, got, `<p data-edit-prop="lede" data-edit-type="text">A short intro</p>`)
	assert.Contains(t, got, `<img src="/content/dam/hero.png" alt="Hero" data-edit-prop="featuredImage" data-edit-type="media"/>`)
	assert.Contains(t, got, `<div data-edit-prop="body" data-edit-type="richtext"><p>Main <em>content</em></p></div>`)
}

func TestRenderPageOutsideEditModeIsClean(t *testing.T) {
	result := content.Resolved(json.RawMessage(`{"slug":"home","title":"Welcome"}`), nil)

	got, err := testRenderer(t).RenderPage(result, testConnection(), false)
	require.NoError(t, err)

	assert.Contains(t, got, "<h1>Welcome</h1>")
	assert.NotContains(t, got, "data-edit-")
	// Connection metadata is present regardless of edit mode.
	assert.Contains(t, got, "data-cms-connection=")
}

func TestRenderPageRejectsUnresolvedResult(t *testing.T) {
	renderer := testRenderer(t)

	_, err := renderer.RenderPage(content.Pending(), testConnection(), false)
	require.Error(t, err)

	_, err = renderer.RenderPage(content.Errored("Cannot find Page with slug: x"), testConnection(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot find Page with slug: x")
}

func TestRenderArticleDetailIncludesMain(t *testing.T) {
	payload := json.RawMessage(`{
		"slug": "first-post",
		"title": "First Post",
		"authorFragment": "Jordan Reyes",
		"synopsis": {"plaintext": "What this is about"},
		"main": {"html": "<p>Full body</p>"}
	}`)
	result := content.Resolved(payload, nil)

	got, err := testRenderer(t).RenderArticle(result, testConnection(), true)
	require.NoError(t, err)

	assert.Contains(t, got, `<article class="article"`)
	assert.Contains(t, got, `<h1 data-edit-prop="title" data-edit-type="text" data-edit-role="heading">First Post</h1>`)
	assert.Contains(t, got, `data-edit-prop="authorFragment"`)
	assert.Contains(t, got, `data-edit-role="byline"`)
	assert.Contains(t, got, `<div data-edit-prop="main" data-edit-type="richtext"><p>Full body</p></div>`)
}

func TestRenderArticleListLinksEntriesByItemPath(t *testing.T) {
	payload := json.RawMessage(`[
		{"node": {"slug": "first-post", "title": "First Post", "main": {"html": "<p>Body one</p>"}}},
		{"node": {"slug": "second-post", "title": "Second Post", "synopsis": {"plaintext": "Teaser"}}}
	]`)
	result := content.Resolved(payload, nil)

	got, err := testRenderer(t).RenderArticleList(result, testConnection(), true)
	require.NoError(t, err)

	assert.Contains(t, got, `<section class="article-list"`)
	assert.Contains(t, got, `data-edit-item="articles/first-post"`)
	assert.Contains(t, got, `data-edit-item="articles/second-post"`)
	// List entries render teaser headings, not the detail heading.
	assert.Contains(t, got, `<h3 data-edit-prop="title"`)
	assert.NotContains(t, got, "<h1")
	// Full bodies stay on the detail view.
	assert.NotContains(t, got, "Body one")
	assert.Contains(t, got, "Teaser")
}

func TestRenderPageFallsBackToImagePath(t *testing.T) {
	payload := json.RawMessage(`{
		"slug": "home",
		"title": "Welcome",
		"featuredImage": {"_path": "/content/dam/fallback.png"}
	}`)
	result := content.Resolved(payload, nil)

	got, err := testRenderer(t).RenderPage(result, testConnection(), false)
	require.NoError(t, err)

	assert.Contains(t, got, `<img src="/content/dam/fallback.png"/>`)
}
