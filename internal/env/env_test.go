package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWorkDir(t *testing.T) {
	workDir, err := WorkDir()
	if err != nil {
		t.Fatalf("WorkDir: %v", err)
	}

	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		t.Fatalf("os.UserCacheDir: %v", err)
	}
	if want := filepath.Join(userCacheDir, ".prebuild"); workDir != want {
		t.Errorf("WorkDir = %q, want %q", workDir, want)
	}
}

func TestHooksDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	hooksDir, err := HooksDir()
	if err != nil {
		t.Fatalf("HooksDir: %v", err)
	}
	info, err := os.Stat(hooksDir)
	if err != nil {
		t.Fatalf("hooks dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("HooksDir created a file, not a directory")
	}

	// Idempotent.
	again, err := HooksDir()
	if err != nil {
		t.Fatalf("second HooksDir: %v", err)
	}
	if again != hooksDir {
		t.Errorf("HooksDir not stable: %q then %q", hooksDir, again)
	}
}
