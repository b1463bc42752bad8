package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/QuillstackMedia/quillstack-go/internal/domain/entities/content"
)

// slugCollection is the expected collection shape of a by-slug payload.
type slugCollection struct {
	Items      []json.RawMessage          `json:"items"`
	References map[string]json.RawMessage `json:"_references"`
}

// paginatedCollection is the expected collection shape of a list payload.
type paginatedCollection struct {
	Edges json.RawMessage `json:"edges"`
}

// fetchBySlug runs the <kind>-by-slug persisted query and normalizes the
// outcome. The payload must contain <kind>List.items with exactly one match;
// zero and multiple matches are both a not-found condition, distinct from
// transport failure but surfaced through the same error channel. References
// are forwarded only when includeRefs is set.
func fetchBySlug(ctx context.Context, executor QueryExecutor, kind content.Kind, slug string, extra map[string]string, includeRefs bool) content.Result {
	params := make(map[string]string, len(extra)+1)
	for key, value := range extra {
		if value != "" {
			params[key] = value
		}
	}
	params["slug"] = slug

	payload, err := executor.Execute(ctx, kind.BySlugQuery(), params)
	if err != nil {
		return content.Errored(err.Error())
	}

	notFound := fmt.Sprintf("Cannot find %s with slug: %s", kind.Display(), slug)

	var root map[string]json.RawMessage
	if err := json.Unmarshal(payload, &root); err != nil {
		return content.Errored(notFound)
	}

	listRaw, ok := root[kind.ListKey()]
	if !ok {
		return content.Errored(notFound)
	}

	var collection slugCollection
	if err := json.Unmarshal(listRaw, &collection); err != nil {
		return content.Errored(notFound)
	}

	if len(collection.Items) != 1 {
		return content.Errored(notFound)
	}

	if !includeRefs {
		return content.Resolved(collection.Items[0], nil)
	}
	return content.Resolved(collection.Items[0], collection.References)
}

// fetchList runs the <kind>s persisted query and normalizes the outcome. The
// payload must contain <kind>Paginated.edges as a non-empty array; an absent
// or empty collection is a not-found condition.
func fetchList(ctx context.Context, executor QueryExecutor, kind content.Kind) content.Result {
	payload, err := executor.Execute(ctx, kind.ListQuery(), nil)
	if err != nil {
		return content.Errored(err.Error())
	}

	notFound := fmt.Sprintf("Cannot find %ss", kind.Display())

	var root map[string]json.RawMessage
	if err := json.Unmarshal(payload, &root); err != nil {
		return content.Errored(notFound)
	}

	paginatedRaw, ok := root[kind.PaginatedKey()]
	if !ok {
		return content.Errored(notFound)
	}

	var collection paginatedCollection
	if err := json.Unmarshal(paginatedRaw, &collection); err != nil {
		return content.Errored(notFound)
	}

	var edges []json.RawMessage
	if err := json.Unmarshal(collection.Edges, &edges); err != nil || len(edges) == 0 {
		return content.Errored(notFound)
	}

	return content.Resolved(collection.Edges, nil)
}
