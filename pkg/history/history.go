// Package history records planner generations.
//
// Each successful pipeline run appends a [Record] holding the prompt, the
// raw style that was used and the artifacts written per page size. Stores:
//
//   - [NullStore]: keeps nothing (history disabled).
//   - [FileStore]: one JSON file per record, for the CLI.
//   - [MongoStore]: a MongoDB collection, for the HTTP server.
//
// A stored style can be fed back into the renderer to reproduce a
// collection without another AI call.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/plannerkit/pkg/style"
)

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 20

// Artifact points at the files written for one page size.
type Artifact struct {
	Size    string `json:"size" bson:"size"`
	PDF     string `json:"pdf" bson:"pdf"`
	Preview string `json:"preview" bson:"preview"`
}

// Record describes one generation.
type Record struct {
	ID         string     `json:"id" bson:"_id"`
	Prompt     string     `json:"prompt" bson:"prompt"`
	Source     string     `json:"source" bson:"source"`
	Variant    string     `json:"variant" bson:"variant"`
	Style      style.Raw  `json:"style" bson:"style"`
	Artifacts  []Artifact `json:"artifacts" bson:"artifacts"`
	DurationMS int64      `json:"duration_ms" bson:"duration_ms"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
}

// NewRecord returns a record with a fresh id and creation time.
func NewRecord(prompt string) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// Store persists generation records.
type Store interface {
	// Add stores r. Records are immutable once added.
	Add(ctx context.Context, r *Record) error

	// Get returns the record with id, or a NOT_FOUND error.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]Record, error)

	// Close releases backend resources.
	Close() error
}

// NullStore discards every record.
type NullStore struct{}

func (NullStore) Add(context.Context, *Record) error { return nil }
func (NullStore) Close() error                       { return nil }

func (NullStore) Get(_ context.Context, id string) (*Record, error) { return nil, notFound(id) }

func (NullStore) List(context.Context, int) ([]Record, error) { return nil, nil }

func listLimit(n int) int {
	if n <= 0 {
		return DefaultListLimit
	}
	return n
}
