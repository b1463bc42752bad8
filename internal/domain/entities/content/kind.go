package content

import "strings"

// Kind names a slug-addressed content type. Persisted query names and
// payload collection keys are derived from it by convention.
type Kind string

const (
	KindPage    Kind = "page"
	KindArticle Kind = "article"
)

// BySlugQuery is the persisted query name for single-record lookup.
func (k Kind) BySlugQuery() string { return string(k) + "-by-slug" }

// ListQuery is the persisted query name for the paginated listing.
func (k Kind) ListQuery() string { return string(k) + "s" }

// ListKey is the expected top-level collection key in a by-slug payload.
func (k Kind) ListKey() string { return string(k) + "List" }

// PaginatedKey is the expected top-level collection key in a list payload.
func (k Kind) PaginatedKey() string { return string(k) + "Paginated" }

// Display is the capitalized kind name used in not-found messages.
func (k Kind) Display() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}
