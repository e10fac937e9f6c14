package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDumpToTmpFile(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	scholarships := DefaultSeed().Scholarships[:2]

	filename, err := DumpToTmpFile("scholarships", scholarships)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(filename), "scholarships_") {
		t.Fatalf("unexpected file name %q", filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}

	var got []*Scholarship
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decoding dump: %v", err)
	}
	if len(got) != 2 || got[0].ID != scholarships[0].ID || got[1].ID != scholarships[1].ID {
		t.Fatalf("unexpected dump content: %s", data)
	}
}
