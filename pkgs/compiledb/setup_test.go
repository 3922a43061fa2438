package compiledb

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/opencontrol/prebuild/buildenv"
)

func quietEnv(root, name string) *buildenv.Env {
	env := buildenv.New(root, name)
	env.SetStdout(io.Discard)
	env.SetStderr(io.Discard)
	return env
}

func TestSetupWritesDatabase(t *testing.T) {
	root := writeTree(t, "src/main.cpp")
	env := quietEnv(root, "teensy41")

	if err := Setup(env); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	db, err := Load(filepath.Join(root, FileName))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(db) != 1 || db[0].File != filepath.Join("src", "main.cpp") {
		t.Errorf("db = %v", db)
	}
}

func TestSetupSkipsUnchanged(t *testing.T) {
	root := writeTree(t, "src/main.cpp")
	env := quietEnv(root, "teensy41")

	if err := Setup(env); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	path := filepath.Join(root, FileName)
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(20 * time.Millisecond)
	if err := Setup(env); err != nil {
		t.Fatalf("second Setup: %v", err)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("unchanged database was rewritten")
	}
}

func TestSetupMergesAcrossEnvironments(t *testing.T) {
	root := writeTree(t, "src/main.cpp")
	if err := Setup(quietEnv(root, "teensy41")); err != nil {
		t.Fatalf("Setup teensy41: %v", err)
	}

	// A second environment compiling an extra file must not drop the
	// first environment's entries.
	extra := filepath.Join(root, "test", "native_main.cpp")
	if err := os.MkdirAll(filepath.Dir(extra), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(extra, []byte("// test\n"), 0644); err != nil {
		t.Fatal(err)
	}
	env := quietEnv(root, "native")
	env.Set("PROJECT_SRC_DIR", "$PROJECT_DIR/test")

	if err := Setup(env); err != nil {
		t.Fatalf("Setup native: %v", err)
	}
	db, err := Load(filepath.Join(root, FileName))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(db) != 2 {
		t.Fatalf("len(db) = %d, want 2: %v", len(db), db)
	}
}

func TestSetupUnresolvedVariableFails(t *testing.T) {
	env := quietEnv("", "e")
	env.Set("BUILD_DIR", "$UNDEFINED")

	if err := Setup(env); err == nil {
		t.Error("Setup succeeded with unresolved variable")
	}
}
