// Package content defines the application's core content-related domain entities.
package content

// TextContent is an authored text field as delivered by the CMS. HTML, when
// present, is trusted CMS-authored markup and is rendered without escaping.
type TextContent struct {
	HTML      string `json:"html,omitempty"`
	Plaintext string `json:"plaintext,omitempty"`
}

// ImageReference points at an asset managed by the CMS DAM. Embedded images
// carry only an ID; the full node lives in the _references map of the payload.
type ImageReference struct {
	ID   string `json:"_id,omitempty"`
	Path string `json:"_path,omitempty"`
	URL  string `json:"url,omitempty"`
	Alt  string `json:"alt,omitempty"`
}

// PageDocument is the renderable shape of a page content record.
type PageDocument struct {
	ID            string          `json:"_id"`
	Path          string          `json:"_path,omitempty"`
	Slug          string          `json:"slug"`
	Title         string          `json:"title"`
	Variation     string          `json:"_variation,omitempty"`
	Lede          *TextContent    `json:"lede,omitempty"`
	Body          *TextContent    `json:"body,omitempty"`
	FeaturedImage *ImageReference `json:"featuredImage,omitempty"`
}

// ArticleDocument is the renderable shape of an article content record.
type ArticleDocument struct {
	ID            string          `json:"_id"`
	Path          string          `json:"_path,omitempty"`
	Slug          string          `json:"slug"`
	Title         string          `json:"title"`
	Author        string          `json:"authorFragment,omitempty"`
	Synopsis      *TextContent    `json:"synopsis,omitempty"`
	Main          *TextContent    `json:"main,omitempty"`
	FeaturedImage *ImageReference `json:"featuredImage,omitempty"`
}

// ArticleEdge wraps an article in the paginated list response.
type ArticleEdge struct {
	Cursor string          `json:"cursor,omitempty"`
	Node   ArticleDocument `json:"node"`
}
