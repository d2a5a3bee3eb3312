package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	data := "abc123\n\n# skipped comment\n  def456  \nghi789\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	ids, err := readIDFile(path)
	if err != nil {
		t.Fatalf("readIDFile: %v", err)
	}
	want := []string{"abc123", "def456", "ghi789"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestReadIDFileMissing(t *testing.T) {
	_, err := readIDFile(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("missing file accepted")
	}
	if CategoryOf(err) != CategoryFilesystem {
		t.Errorf("category = %q, want %q", CategoryOf(err), CategoryFilesystem)
	}
}
