// Package editing defines the editable-field value model consumed by the
// external visual authoring tool.
package editing

// FieldType tags the edit affordance the authoring tool offers for a field.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeRichText FieldType = "richtext"
	FieldTypeMedia    FieldType = "media"
)

// Source carries the candidate values an editable field can resolve from.
// Inline is caller-supplied literal content and wins over fetched content.
type Source struct {
	Inline    string
	Plaintext string
	HTML      string
}

// Field is a resolved editable value ready for binding into markup. A zero
// Field is empty and produces no fragment and no metadata.
type Field struct {
	Prop     string    // logical property name, echoed verbatim into metadata
	Type     FieldType // edit affordance tag
	Value    string    // plain text or raw HTML depending on Type
	Role     string    // optional semantic role, metadata only
	ItemPath string    // optional nested-path link for sub-fields of a list item
}

// Resolve selects exactly one variant for a field by input precedence:
// inline override text, then plaintext content, then rich-text HTML, then
// empty. Rich-text HTML is trusted CMS-authored markup; no sanitization
// happens here or downstream.
func Resolve(prop string, src Source) Field {
	switch {
	case src.Inline != "":
		return Field{Prop: prop, Type: FieldTypeText, Value: src.Inline}
	case src.Plaintext != "":
		return Field{Prop: prop, Type: FieldTypeText, Value: src.Plaintext}
	case src.HTML != "":
		return Field{Prop: prop, Type: FieldTypeRichText, Value: src.HTML}
	default:
		return Field{}
	}
}

// WithRole attaches a semantic role tag to the field.
func (f Field) WithRole(role string) Field {
	f.Role = role
	return f
}

// WithItemPath links the field to a sub-path of an aggregate, such as one
// entry of a list.
func (f Field) WithItemPath(path string) Field {
	f.ItemPath = path
	return f
}

// IsEmpty reports whether the field resolved to the empty variant.
func (f Field) IsEmpty() bool {
	return f.Type == "" && f.Value == ""
}
