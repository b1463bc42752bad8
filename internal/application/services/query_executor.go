// Package services provides application-level services that orchestrate
// business logic and coordinate between the query executor and domain entities.
package services

import (
	"context"
	"encoding/json"
)

// QueryExecutor is the fetch primitive the content services build on. The
// production implementation is the cms.Client persisted query client.
type QueryExecutor interface {
	Execute(ctx context.Context, queryName string, params map[string]string) (json.RawMessage, error)
}
