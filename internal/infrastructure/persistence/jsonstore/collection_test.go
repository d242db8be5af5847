package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestReadAllMissingFileIsEmpty(t *testing.T) {
	coll, err := NewCollection[record](t.TempDir(), "things")
	if err != nil {
		t.Fatalf("new collection: %v", err)
	}

	records, err := coll.ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(records))
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	coll, err := NewCollection[record](t.TempDir(), "things")
	if err != nil {
		t.Fatalf("new collection: %v", err)
	}

	want := []record{{ID: "a", Name: "first"}, {ID: "b", Name: "second"}}
	if err := coll.WriteAll(want); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := coll.ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].Name != "second" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestMutateErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	coll, err := NewCollection[record](dir, "things")
	if err != nil {
		t.Fatalf("new collection: %v", err)
	}
	if err := coll.WriteAll([]record{{ID: "keep"}}); err != nil {
		t.Fatalf("write: %v", err)
	}

	boom := errors.New("boom")
	err = coll.Mutate(func(records []record) ([]record, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected mutate to surface the callback error, got %v", err)
	}

	got, err := coll.ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 || got[0].ID != "keep" {
		t.Fatalf("failed mutate must not touch the file: %+v", got)
	}
}

func TestCorruptFileSurfacesError(t *testing.T) {
	dir := t.TempDir()
	coll, err := NewCollection[record](dir, "things")
	if err != nil {
		t.Fatalf("new collection: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "things.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if _, err := coll.ReadAll(); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}
