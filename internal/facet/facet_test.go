package facet

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinCatalog(t *testing.T) {
	catalog, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	tests := []struct {
		name string
		want int
	}{
		{"daily_quiet_time", 5},
		{"team_call_attendance", 15},
		{"daily_journaling", 2},
		{"weekly_curriculum", 15},
	}
	for _, tt := range tests {
		got, ok := catalog.Default(tt.name)
		if !ok {
			t.Fatalf("%s missing from catalog", tt.name)
		}
		if got != tt.want {
			t.Fatalf("%s default=%d want %d", tt.name, got, tt.want)
		}
	}

	if catalog.Has("not_a_real_facet") {
		t.Fatal("unknown facet reported as known")
	}

	names := catalog.Names()
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestLoadFromFileReplacesCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facets.yaml")
	content := "facets:\n  pushups: 1\n  situps: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, _ := catalog.Default("pushups"); got != 1 {
		t.Fatalf("pushups default=%d want 1", got)
	}
	if catalog.Has("daily_quiet_time") {
		t.Fatal("file load should replace the built-in set")
	}
}

func TestLoadEmptyFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facets.yaml")
	if err := os.WriteFile(path, []byte("facets: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty facet set")
	}
}
