package content

import "encoding/json"

// State describes where a Result sits in its fetch lifecycle.
type State string

const (
	StatePending  State = "pending"
	StateResolved State = "resolved"
	StateErrored  State = "errored"
)

// Result is the tri-state outcome of one content fetch cycle. Content and
// Error are mutually exclusive: a resolved result never carries an error and
// an errored result never carries content. Results are replaced wholesale
// when the identifying parameter changes, never mutated after resolution.
type Result struct {
	State      State                      `json:"state"`
	Content    json.RawMessage            `json:"content,omitempty"`
	References map[string]json.RawMessage `json:"references,omitempty"`
	Error      string                     `json:"error,omitempty"`
}

// Pending returns the initial state of a fetch cycle.
func Pending() Result {
	return Result{State: StatePending}
}

// Resolved wraps successfully fetched content. References are the auxiliary
// mapping of referenced-entity identifiers to their content, when the query
// provides one.
func Resolved(payload json.RawMessage, references map[string]json.RawMessage) Result {
	return Result{State: StateResolved, Content: payload, References: references}
}

// Errored wraps a terminal failure message. Transport failures and shape
// mismatches both surface through this channel.
func Errored(message string) Result {
	return Result{State: StateErrored, Error: message}
}

func (r Result) IsPending() bool  { return r.State == StatePending }
func (r Result) IsResolved() bool { return r.State == StateResolved }
func (r Result) IsErrored() bool  { return r.State == StateErrored }

// Settled reports whether the result reached a terminal state.
func (r Result) Settled() bool { return r.State != StatePending }
