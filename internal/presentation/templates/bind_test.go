package templates

import (
	"testing"

	"github.com/QuillstackMedia/quillstack-go/internal/domain/entities/editing"
	"github.com/stretchr/testify/assert"
)

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name      string
		src       editing.Source
		wantType  editing.FieldType
		wantValue string
	}{
		{
			name:      "inline wins over everything",
			src:       editing.Source{Inline: "override", Plaintext: "plain", HTML: "<p>rich</p>"},
			wantType:  editing.FieldTypeText,
			wantValue: "override",
		},
		{
			name:      "plaintext wins over html",
			src:       editing.Source{Plaintext: "plain", HTML: "<p>rich</p>"},
			wantType:  editing.FieldTypeText,
			wantValue: "plain",
		},
		{
			name:      "html used when nothing else",
			src:       editing.Source{HTML: "<p>rich</p>"},
			wantType:  editing.FieldTypeRichText,
			wantValue: "<p>rich</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := editing.Resolve("title", tt.src)
			assert.Equal(t, tt.wantType, field.Type)
			assert.Equal(t, tt.wantValue, field.Value)
			assert.Equal(t, "title", field.Prop)
			assert.False(t, field.IsEmpty())
		})
	}
}

func TestResolveEmptySource(t *testing.T) {
	field := editing.Resolve("title", editing.Source{})
	assert.True(t, field.IsEmpty())

	binder := NewBinder(true)
	assert.Empty(t, binder.Render(field, "h1"))
}

func TestRenderEditModeAttachesMetadata(t *testing.T) {
	binder := NewBinder(true)
	field := editing.Resolve("title", editing.Source{Plaintext: "Hello"})

	got := binder.Render(field, "h1")

	assert.Equal(t, `<h1 data-edit-prop="title" data-edit-type="text">Hello</h1>`, got)
}

func TestRenderOutsideEditModeIsClean(t *testing.T) {
	binder := NewBinder(false)
	field := editing.Resolve("title", editing.Source{Plaintext: "Hello"})

	got := binder.Render(field, "h1")

	assert.Equal(t, `<h1>Hello</h1>`, got)
	assert.NotContains(t, got, "data-edit-")
}

func TestRenderEscapesPlainText(t *testing.T) {
	binder := NewBinder(false)
	field := editing.Resolve("title", editing.Source{Plaintext: `<script>alert("x")</script>`})

	got := binder.Render(field, "p")

	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
}

func TestRenderRichTextPassesThroughUnescaped(t *testing.T) {
	binder := NewBinder(true)
	field := editing.Resolve("body", editing.Source{HTML: `<p>Hello <strong>world</strong></p>`})

	got := binder.Render(field, "div")

	assert.Equal(t, `<div data-edit-prop="body" data-edit-type="richtext"><p>Hello <strong>world</strong></p></div>`, got)
}

func TestRenderDefaultTags(t *testing.T) {
	binder := NewBinder(false)

	text := binder.Render(editing.Resolve("t", editing.Source{Plaintext: "x"}), "marquee")
	rich := binder.Render(editing.Resolve("b", editing.Source{HTML: "<p>x</p>"}), "marquee")

	assert.Equal(t, "<span>x</span>", text)
	assert.Equal(t, "<div><p>x</p></div>", rich)
}

func TestRenderRoleAndItemPathMetadata(t *testing.T) {
	binder := NewBinder(true)
	field := editing.Resolve("title", editing.Source{Plaintext: "Hello"}).
		WithRole("heading").
		WithItemPath("articles/first-post")

	got := binder.Render(field, "h3")

	assert.Contains(t, got, `data-edit-role="heading"`)
	assert.Contains(t, got, `data-edit-item="articles/first-post"`)
}

func TestRenderImage(t *testing.T) {
	binder := NewBinder(true)

	got := binder.RenderImage("featuredImage", "/content/dam/hero.png", "Hero")

	assert.Equal(t, `<img src="/content/dam/hero.png" alt="Hero" data-edit-prop="featuredImage" data-edit-type="media"/>`, got)
}

func TestRenderImageWithoutSource(t *testing.T) {
	binder := NewBinder(true)
	assert.Empty(t, binder.RenderImage("featuredImage", "", "Hero"))
}

func TestRenderImageOutsideEditMode(t *testing.T) {
	binder := NewBinder(false)

	got := binder.RenderImage("featuredImage", "/content/dam/hero.png", "")

	assert.Equal(t, `<img src="/content/dam/hero.png"/>`, got)
}
