package compiledb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func entry(file string, args ...string) Command {
	return Command{Directory: "/p", File: file, Arguments: args}
}

func TestMergeReplacesAndAppends(t *testing.T) {
	existing := Database{entry("src/a.cpp", "g++", "-c", "src/a.cpp"), entry("src/b.cpp", "g++")}
	updates := Database{entry("src/b.cpp", "g++", "-O2"), entry("src/c.cpp", "g++")}

	merged := existing.Merge(updates)

	if len(merged) != 3 {
		t.Fatalf("len(merged) = %d, want 3", len(merged))
	}
	if merged[0].File != "src/a.cpp" || merged[1].File != "src/b.cpp" || merged[2].File != "src/c.cpp" {
		t.Errorf("merged order = %v", merged)
	}
	if len(merged[1].Arguments) != 2 || merged[1].Arguments[1] != "-O2" {
		t.Errorf("entry for b.cpp not replaced: %v", merged[1])
	}
}

func TestMergeDoesNotMutateReceiver(t *testing.T) {
	existing := Database{entry("src/a.cpp", "g++")}
	existing.Merge(Database{entry("src/a.cpp", "clang++")})

	if existing[0].Arguments[0] != "g++" {
		t.Errorf("receiver mutated: %v", existing[0])
	}
}

func TestEqual(t *testing.T) {
	a := Database{entry("x.c", "gcc", "-c", "x.c")}
	b := Database{entry("x.c", "gcc", "-c", "x.c")}
	if !a.Equal(b) {
		t.Error("identical databases reported unequal")
	}
	b[0].Arguments = []string{"gcc", "-O2", "-c", "x.c"}
	if a.Equal(b) {
		t.Error("differing databases reported equal")
	}
	if a.Equal(a[:0]) {
		t.Error("databases of differing length reported equal")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	db := Database{entry("src/main.cpp", "g++", "-DX=1", "-c", "src/main.cpp")}

	if err := db.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !db.Equal(loaded) {
		t.Errorf("round trip mismatch: %v != %v", loaded, db)
	}

	// Atomic write must not leave temp files behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "."+FileName) {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{not json]"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load succeeded on malformed database")
	}
}
