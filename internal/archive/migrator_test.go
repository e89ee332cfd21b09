package archive

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUpFilesFiltersAndOrders(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"000002_indexes.up.sql",
		"000001_archive_ticks.up.sql",
		"000001_archive_ticks.down.sql",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := upFiles(dir)
	if err != nil {
		t.Fatalf("upFiles: %v", err)
	}
	want := []string{"000001_archive_ticks.up.sql", "000002_indexes.up.sql"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestVersionOf(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"000001_archive_ticks.up.sql", "000001"},
		{"42_short.up.sql", "42"},
		{"noversion.sql", "noversion.sql"},
	}
	for _, tc := range cases {
		if got := versionOf(tc.name); got != tc.want {
			t.Errorf("versionOf(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
