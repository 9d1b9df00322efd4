package graphstore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mohamedthameursassi/transit-astar/routing"
)

func sameNetwork(t *testing.T, want, got *routing.Network[string]) {
	t.Helper()
	wantIDs, gotIDs := want.IDs(), got.IDs()
	if strings.Join(wantIDs, ",") != strings.Join(gotIDs, ",") {
		t.Fatalf("node order differs: want %v, got %v", wantIDs, gotIDs)
	}
	for _, id := range wantIDs {
		w, _ := want.Node(id)
		g, _ := got.Node(id)
		if w.Coord != g.Coord {
			t.Errorf("node %s: coordinate %v, want %v", id, g.Coord, w.Coord)
		}
		if len(w.Edges) != len(g.Edges) {
			t.Errorf("node %s: %d edges, want %d", id, len(g.Edges), len(w.Edges))
			continue
		}
		for i := range w.Edges {
			if w.Edges[i] != g.Edges[i] {
				t.Errorf("node %s edge %d: %v, want %v", id, i, g.Edges[i], w.Edges[i])
			}
		}
	}
}

func subway(t *testing.T) *routing.Network[string] {
	t.Helper()
	g, err := LoadJSON(strings.NewReader(subwayJSON))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGobRoundTrip(t *testing.T) {
	want := subway(t)
	var buf bytes.Buffer
	if err := SaveGob(&buf, want); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}
	got, err := LoadGob(&buf)
	if err != nil {
		t.Fatalf("LoadGob: %v", err)
	}
	sameNetwork(t, want, got)
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "graph.db")

	store, err := OpenStore(ctx, path)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer store.Close()

	want := subway(t)
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// saving twice replaces the snapshot
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sameNetwork(t, want, got)

	opened, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sameNetwork(t, want, opened)
}

func TestOpenMissingSQLiteFile(t *testing.T) {
	if _, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected an error for a missing database")
	}
}

func TestLoadFileAndDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "subway.json"), []byte(subwayJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := SaveGob(&buf, subway(t)); err != nil {
		t.Fatal(err)
	}
	gobPath := filepath.Join(dir, "subway.gob")
	if err := os.WriteFile(gobPath, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := Open(context.Background(), gobPath)
	if err != nil {
		t.Fatalf("Open gob: %v", err)
	}
	sameNetwork(t, subway(t), g)

	graphs, err := LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(graphs) != 1 || graphs["subway"] == nil {
		t.Fatalf("expected only the subway graph, got %v", graphs)
	}

	if _, err := LoadFile(filepath.Join(dir, "notes.txt")); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}
