package id

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	g := NewUUIDGenerator()

	first, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected uuid, got %q: %v", first, err)
	}
}

func TestTimestampGenerator_NewID(t *testing.T) {
	now := time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC)
	g := NewTimestampGenerator("sub_", func() time.Time { return now })

	got, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if want := "sub_1754827200000"; got != want {
		t.Fatalf("unexpected id: got=%s want=%s", got, want)
	}
}

func TestValidUUID(t *testing.T) {
	v, err := NewUUIDGenerator().NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if !ValidUUID(v) {
		t.Fatalf("expected generated id %q to be valid", v)
	}
	for _, bad := range []string{"", "abc", "{" + v + "}", "urn:uuid:" + v} {
		if ValidUUID(bad) {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}
