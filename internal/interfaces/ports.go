package interfaces

import "context"

// Generator wraps the generative-text provider. Implementations never return
// an error: provider failures are mapped to fixed degraded-service text at
// this boundary.
type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

// Messenger sends an outbound reply on a platform channel.
type Messenger interface {
	SendMessage(to, content string) error
}

// RecordStore appends to and reads back a named append-only log. Appends are
// best effort from the pipeline's point of view: callers log failures to the
// diagnostic channel and move on.
type RecordStore interface {
	Append(log string, record any) error
	List(log string, out any) error
	Clear(log string) error
}

// DocumentStore loads and saves a single named JSON document, for state that
// is a snapshot rather than an append-only list.
type DocumentStore interface {
	Load(name string, out any) error
	Save(name string, doc any) error
}
