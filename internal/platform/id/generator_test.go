package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	g := NewUUIDGenerator("req_")
	got, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if !strings.HasPrefix(got, "req_") {
		t.Fatalf("expected req_ prefix, got %q", got)
	}
	parsed, err := uuid.Parse(strings.TrimPrefix(got, "req_"))
	if err != nil {
		t.Fatalf("parse uuid: %v", err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected uuid v7, got v%d", parsed.Version())
	}
}
