package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func TestLoadFile(t *testing.T) {
	pack, err := NewLoader(filepath.Join("testdata", "starter.yaml"), nil).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if pack.ID != "starter" || pack.Name != "Starter" {
		t.Errorf("pack = %s/%s, want starter/Starter", pack.ID, pack.Name)
	}
	if pack.Len() != 2 {
		t.Fatalf("levels = %d, want 2", pack.Len())
	}

	first := pack.Level(0)
	if first.ID() != "starter-01" || first.Name() != "Warm Up" || first.Height() != 3 {
		t.Errorf("first level = %s/%s/%d rows", first.ID(), first.Name(), first.Height())
	}

	// Defaults and block-scalar maps
	second := pack.Level(1)
	if second.ID() != "starter-02" {
		t.Errorf("generated id = %s, want starter-02", second.ID())
	}
	if second.Height() != 3 || second.Width() != 7 {
		t.Errorf("map level size = %dx%d, want 7x3", second.Width(), second.Height())
	}
}

func TestLoadDir(t *testing.T) {
	pack, err := NewLoader(filepath.Join("testdata", "dir"), nil).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if pack.ID != "dir" {
		t.Errorf("pack id = %s, want dir", pack.ID)
	}

	// broken.yaml is skipped, notes.txt ignored, files ordered by path
	want := []string{"a-01", "b-one", "b-two"}
	if pack.Len() != len(want) {
		t.Fatalf("levels = %d, want %d", pack.Len(), len(want))
	}
	for i, id := range want {
		if got := pack.Level(i).ID(); got != id {
			t.Errorf("level %d = %s, want %s", i, got, id)
		}
	}
}

func TestLoadDirEmpty(t *testing.T) {
	if _, err := NewLoader(t.TempDir(), nil).Load(); err == nil {
		t.Error("expected error for directory without packs")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"), nil).Load(); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestParseSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no levels", "id: x\n"},
		{"empty levels", "levels: []\n"},
		{"rows and map", "levels:\n  - rows: [\"#@#\"]\n    map: \"#@#\"\n"},
		{"neither rows nor map", "levels:\n  - id: lonely\n"},
		{"unknown field", "levels:\n  - rows: [\"#@#\"]\n    goals: 3\n"},
		{"bad id", "id: \"has space\"\nlevels:\n  - rows: [\"#@#\"]\n"},
		{"rows not strings", "levels:\n  - rows: [[1, 2]]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "test")
			var verr *jsonschema.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("err = %v, want *jsonschema.ValidationError", err)
			}
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("levels: [\n"), "test"); err == nil {
		t.Error("expected yaml error")
	}
}

func TestParseFallbackID(t *testing.T) {
	pack, err := Parse([]byte("levels:\n  - rows: [\"#@$.#\"]\n"), "mine")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if pack.ID != "mine" || pack.Name != "mine" || pack.Level(0).ID() != "mine-01" {
		t.Errorf("pack = %+v, level %s", pack, pack.Level(0).ID())
	}
}

func TestLoadFileWrapsValidationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("levels: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader(path, nil).LoadFile(path)
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("err = %v, want wrapped *jsonschema.ValidationError", err)
	}
}
