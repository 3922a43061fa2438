package compiledb

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencontrol/prebuild/buildenv"
	"github.com/opencontrol/prebuild/internal/lockedfile"
)

// Setup regenerates the project's compilation database. It is the
// built-in pre-build hook registered as "setup_compile_commands".
//
// Entries are merged into any existing database so that a run for one
// environment does not drop files that only another environment
// compiles. An unchanged database is not rewritten, keeping its mtime
// stable for clangd.
func Setup(env *buildenv.Env) error {
	gen, err := NewGenerator(env)
	if err != nil {
		return err
	}
	generated, err := gen.Generate()
	if err != nil {
		return err
	}

	path := filepath.Join(gen.ProjectDir, FileName)

	// Concurrent pre-build runs (one per environment) race on the
	// database file.
	lockDir := filepath.Join(gen.ProjectDir, ".pio")
	if err := os.MkdirAll(lockDir, 0755); err != nil {
		return err
	}
	unlock, err := lockedfile.MutexAt(filepath.Join(lockDir, ".compiledb.lock")).Lock()
	if err != nil {
		return err
	}
	defer unlock()

	existing, err := Load(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	merged := existing.Merge(generated)
	if merged.Equal(existing) {
		fmt.Fprintf(env.Stdout(), "compiledb: %s is up to date\n", FileName)
		return nil
	}
	if err := merged.Save(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(env.Stdout(), "compiledb: wrote %s (%d entries)\n", FileName, len(merged))
	return nil
}
