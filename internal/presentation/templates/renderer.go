package templates

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/QuillstackMedia/quillstack-go/internal/domain/entities/content"
	"github.com/QuillstackMedia/quillstack-go/internal/domain/entities/editing"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/observability/logging"
)

// Connection identifies the CMS backend instance attached to the rendered
// page, derived from the request's canonical address. The authoring tool
// reads it from the fragment root to know where edits should land.
type Connection struct {
	Marker       string
	SiteID       string
	CanonicalURL string
}

// FragmentRenderer turns resolved content results into HTML fragments with
// editable-field annotations.
type FragmentRenderer struct {
	logger *logging.ChanneledLogger
}

// NewFragmentRenderer creates a new fragment renderer
func NewFragmentRenderer(logger *logging.ChanneledLogger) *FragmentRenderer {
	return &FragmentRenderer{logger: logger}
}

// RenderPage renders a resolved page result as a fragment. An errored result
// returns an error; callers map it to their not-found or failure view.
func (fr *FragmentRenderer) RenderPage(result content.Result, conn Connection, editMode bool) (string, error) {
	start := time.Now()

	if !result.IsResolved() {
		return "", fmt.Errorf("cannot render unresolved page result: %s", result.Error)
	}

	var page content.PageDocument
	if err := json.Unmarshal(result.Content, &page); err != nil {
		return "", fmt.Errorf("failed to decode page content: %w", err)
	}

	binder := NewBinder(editMode)

	var html strings.Builder
	writeFragmentOpen(&html, "article", "page", conn, page.Slug)

	html.WriteString(binder.Render(editing.Resolve("title", editing.Source{Plaintext: page.Title}).WithRole("heading"), "h1"))
	if page.Lede != nil {
		html.WriteString(binder.Render(editing.Resolve("lede", textSource(page.Lede)), "p"))
	}
	if src, alt := resolveImage(page.FeaturedImage, result.References); src != "" {
		html.WriteString(binder.RenderImage("featuredImage", src, alt))
	}
	if page.Body != nil {
		html.WriteString(binder.Render(editing.Resolve("body", textSource(page.Body)), "div"))
	}

	html.WriteString("</article>")

	fr.logger.Render().Debug("Rendered page fragment", "slug", page.Slug, "editMode", editMode, "duration", time.Since(start))

	return html.String(), nil
}

// RenderArticle renders a resolved article result as a fragment.
func (fr *FragmentRenderer) RenderArticle(result content.Result, conn Connection, editMode bool) (string, error) {
	start := time.Now()

	if !result.IsResolved() {
		return "", fmt.Errorf("cannot render unresolved article result: %s", result.Error)
	}

	var article content.ArticleDocument
	if err := json.Unmarshal(result.Content, &article); err != nil {
		return "", fmt.Errorf("failed to decode article content: %w", err)
	}

	binder := NewBinder(editMode)

	var html strings.Builder
	writeFragmentOpen(&html, "article", "article", conn, article.Slug)
	writeArticleFields(&html, binder, article, "")
	html.WriteString("</article>")

	fr.logger.Render().Debug("Rendered article fragment", "slug", article.Slug, "editMode", editMode, "duration", time.Since(start))

	return html.String(), nil
}

// RenderArticleList renders a resolved article listing as a fragment. Each
// entry's fields carry a nested-path identifier linking them back to their
// list position.
func (fr *FragmentRenderer) RenderArticleList(result content.Result, conn Connection, editMode bool) (string, error) {
	start := time.Now()

	if !result.IsResolved() {
		return "", fmt.Errorf("cannot render unresolved article list result: %s", result.Error)
	}

	var edges []content.ArticleEdge
	if err := json.Unmarshal(result.Content, &edges); err != nil {
		return "", fmt.Errorf("failed to decode article list content: %w", err)
	}

	binder := NewBinder(editMode)

	var html strings.Builder
	writeFragmentOpen(&html, "section", "article-list", conn, "")
	for _, edge := range edges {
		itemPath := "articles/" + edge.Node.Slug
		html.WriteString(`<div class="article-teaser">`)
		writeArticleFields(&html, binder, edge.Node, itemPath)
		html.WriteString("</div>")
	}
	html.WriteString("</section>")

	fr.logger.Render().Debug("Rendered article list fragment", "count", len(edges), "editMode", editMode, "duration", time.Since(start))

	return html.String(), nil
}

func writeArticleFields(html *strings.Builder, binder *Binder, article content.ArticleDocument, itemPath string) {
	title := editing.Resolve("title", editing.Source{Plaintext: article.Title}).WithRole("heading")
	if itemPath != "" {
		title = title.WithItemPath(itemPath)
		html.WriteString(binder.Render(title, "h3"))
	} else {
		html.WriteString(binder.Render(title, "h1"))
	}

	if article.Author != "" {
		author := editing.Resolve("authorFragment", editing.Source{Plaintext: article.Author}).WithRole("byline")
		if itemPath != "" {
			author = author.WithItemPath(itemPath)
		}
		html.WriteString(binder.Render(author, "p"))
	}

	if article.Synopsis != nil {
		synopsis := editing.Resolve("synopsis", textSource(article.Synopsis))
		if itemPath != "" {
			synopsis = synopsis.WithItemPath(itemPath)
		}
		html.WriteString(binder.Render(synopsis, "p"))
	}

	// Full body only on detail renders
	if itemPath == "" && article.Main != nil {
		html.WriteString(binder.Render(editing.Resolve("main", textSource(article.Main)), "div"))
	}
}

func writeFragmentOpen(html *strings.Builder, tag, class string, conn Connection, slug string) {
	html.WriteString("<" + tag)
	html.WriteString(` class=`)
	writeAttrValue(html, class)
	if conn.Marker != "" {
		html.WriteString(` data-cms-connection=`)
		writeAttrValue(html, conn.Marker)
	}
	if conn.SiteID != "" {
		html.WriteString(` data-cms-site=`)
		writeAttrValue(html, conn.SiteID)
	}
	if slug != "" {
		html.WriteString(` data-content-slug=`)
		writeAttrValue(html, slug)
	}
	html.WriteString(">")
}

func textSource(text *content.TextContent) editing.Source {
	return editing.Source{Plaintext: text.Plaintext, HTML: text.HTML}
}

// resolveImage follows an embedded asset reference through the payload's
// _references map to a usable source URL.
func resolveImage(ref *content.ImageReference, references map[string]json.RawMessage) (string, string) {
	if ref == nil {
		return "", ""
	}

	resolved := *ref
	if resolved.URL == "" && resolved.ID != "" {
		if raw, ok := references[resolved.ID]; ok {
			var node content.ImageReference
			if err := json.Unmarshal(raw, &node); err == nil {
				if node.URL != "" {
					resolved.URL = node.URL
				}
				if resolved.Alt == "" {
					resolved.Alt = node.Alt
				}
				if resolved.Path == "" {
					resolved.Path = node.Path
				}
			}
		}
	}

	src := resolved.URL
	if src == "" {
		src = resolved.Path
	}
	return src, resolved.Alt
}
