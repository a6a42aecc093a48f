package history

import (
	"context"
	"testing"
	"time"

	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/style"
)

func TestNewRecord(t *testing.T) {
	a, b := NewRecord("boho"), NewRecord("boho")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("ids = %q, %q, want distinct non-empty", a.ID, b.ID)
	}
	if a.CreatedAt.IsZero() || a.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt = %v, want UTC timestamp", a.CreatedAt)
	}
}

func TestNullStore(t *testing.T) {
	var s Store = NullStore{}
	ctx := context.Background()
	if err := s.Add(ctx, NewRecord("x")); err != nil {
		t.Errorf("Add() error = %v", err)
	}
	if _, err := s.Get(ctx, "x"); !perrors.Is(err, perrors.ErrCodeNotFound) {
		t.Errorf("Get() error = %v, want NOT_FOUND", err)
	}
	if recs, _ := s.List(ctx, 5); len(recs) != 0 {
		t.Errorf("List() = %d records, want 0", len(recs))
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i, prompt := range []string{"first", "second", "third"} {
		r := NewRecord(prompt)
		r.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		r.Style = style.Raw{style.KeyTitle: prompt, style.KeyWeeklySections: []any{"Mon"}}
		r.Artifacts = []Artifact{{Size: "a4", PDF: "planner_a4_x.pdf", Preview: "planner_a4_x_preview.png"}}
		if err := s.Add(ctx, r); err != nil {
			t.Fatalf("Add() error: %v", err)
		}
		ids = append(ids, r.ID)
	}

	got, err := s.Get(ctx, ids[1])
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Prompt != "second" || got.Style[style.KeyTitle] != "second" {
		t.Errorf("Get() = %+v", got)
	}
	if len(got.Artifacts) != 1 || got.Artifacts[0].Size != "a4" {
		t.Errorf("Artifacts = %+v", got.Artifacts)
	}

	recs, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(recs) != 2 || recs[0].Prompt != "third" || recs[1].Prompt != "second" {
		t.Errorf("List(2) prompts = %v", prompts(recs))
	}
	if all, _ := s.List(ctx, 0); len(all) != 3 {
		t.Errorf("List(0) = %d records, want 3", len(all))
	}
}

func TestFileStoreRejectsBadIDs(t *testing.T) {
	s, _ := NewFileStore(t.TempDir())
	ctx := context.Background()

	if err := s.Add(ctx, &Record{ID: "../escape"}); err == nil {
		t.Error("Add() with path id succeeded")
	}
	if _, err := s.Get(ctx, "../escape"); !perrors.Is(err, perrors.ErrCodeNotFound) {
		t.Errorf("Get() error = %v, want NOT_FOUND", err)
	}
	if _, err := s.Get(ctx, NewRecord("").ID); !perrors.Is(err, perrors.ErrCodeNotFound) {
		t.Errorf("Get() missing error = %v, want NOT_FOUND", err)
	}
}

func TestNewMongoStoreUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewMongoStore(ctx, MongoOptions{URI: "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200"})
	if err == nil {
		t.Fatal("NewMongoStore() error = nil, want connection failure")
	}
}

func TestNewMongoStoreEmptyURI(t *testing.T) {
	_, err := NewMongoStore(context.Background(), MongoOptions{})
	if !perrors.Is(err, perrors.ErrCodeInvalidConfig) {
		t.Errorf("NewMongoStore() error = %v, want INVALID_CONFIG", err)
	}
}

func prompts(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Prompt
	}
	return out
}
