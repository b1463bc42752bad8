// Package templates provides editable-field binding and fragment rendering
// for content fetched from the headless CMS.
package templates

import (
	"html/template"
	"strings"

	"github.com/QuillstackMedia/quillstack-go/internal/domain/entities/editing"
)

var (
	// textEscaper is a pre-parsed template used for securely escaping plain
	// text content, for consistency across the project.
	textEscaper = template.Must(template.New("textEscaper").Parse("{{.}}"))

	// attrEscaper renders attribute values safely to prevent attribute
	// injection from content-derived strings.
	attrEscaper = template.Must(template.New("attrEscaper").Parse(`"{{.}}"`))

	// allowedTags restricts which wrapper tags a caller can request for a
	// bound field. Anything else falls back to the variant default.
	allowedTags = map[string]struct{}{
		"div":  {},
		"p":    {},
		"span": {},
		"h1":   {},
		"h2":   {},
		"h3":   {},
		"h4":   {},
	}
)

// Binder maps resolved editable fields to markup fragments. In edit mode
// every non-empty fragment carries data-edit-prop and data-edit-type on its
// root element so the external authoring tool can resolve the source field
// from the DOM in one lookup; outside edit mode the same markup renders
// clean.
type Binder struct {
	EditMode bool
}

// NewBinder creates a binder. Edit mode is granted per request, after editor
// authentication.
func NewBinder(editMode bool) *Binder {
	return &Binder{EditMode: editMode}
}

// Render produces the markup fragment for a resolved field, or the empty
// string for the empty variant. Callers must tolerate an empty render.
// Plain text values are escaped; rich text is trusted CMS-authored HTML and
// passes through unescaped. Sanitization, if required, is the editorial
// pipeline's responsibility.
func (b *Binder) Render(field editing.Field, tag string) string {
	if field.IsEmpty() {
		return ""
	}

	safeTag := defaultTagFor(field.Type)
	if _, ok := allowedTags[tag]; ok {
		safeTag = tag
	}

	var html strings.Builder
	html.WriteString("<" + safeTag)
	b.writeEditAttrs(&html, field)
	html.WriteString(">")

	switch field.Type {
	case editing.FieldTypeRichText:
		// Trusted markup pass-through.
		html.WriteString(field.Value)
	default:
		writeEscaped(&html, field.Value)
	}

	html.WriteString("</" + safeTag + ">")
	return html.String()
}

// RenderImage produces an img fragment for an asset-backed field, or the
// empty string when the asset has no usable source.
func (b *Binder) RenderImage(prop, src, alt string) string {
	if src == "" {
		return ""
	}

	var html strings.Builder
	html.WriteString(`<img src=`)
	writeAttrValue(&html, src)
	if alt != "" {
		html.WriteString(` alt=`)
		writeAttrValue(&html, alt)
	}
	if b.EditMode && prop != "" {
		html.WriteString(` data-edit-prop=`)
		writeAttrValue(&html, prop)
		html.WriteString(` data-edit-type="media"`)
	}
	html.WriteString("/>")
	return html.String()
}

func (b *Binder) writeEditAttrs(html *strings.Builder, field editing.Field) {
	if !b.EditMode || field.Prop == "" {
		return
	}

	html.WriteString(` data-edit-prop=`)
	writeAttrValue(html, field.Prop)
	html.WriteString(` data-edit-type=`)
	writeAttrValue(html, string(field.Type))
	if field.Role != "" {
		html.WriteString(` data-edit-role=`)
		writeAttrValue(html, field.Role)
	}
	if field.ItemPath != "" {
		html.WriteString(` data-edit-item=`)
		writeAttrValue(html, field.ItemPath)
	}
}

func defaultTagFor(fieldType editing.FieldType) string {
	if fieldType == editing.FieldTypeRichText {
		return "div"
	}
	return "span"
}

func writeEscaped(html *strings.Builder, value string) {
	if err := textEscaper.Execute(html, value); err != nil {
		html.WriteString("<!-- error escaping text -->")
	}
}

func writeAttrValue(html *strings.Builder, value string) {
	if err := attrEscaper.Execute(html, value); err != nil {
		html.WriteString(`""`)
	}
}
