package vcs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// initSourceRepo creates a local git repository with one committed
// hook script and returns its path.
func initSourceRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}

	run("init")
	script := filepath.Join(dir, "lint_hook.gox")
	if err := os.WriteFile(script, []byte("// hook\n"), 0644); err != nil {
		t.Fatal(err)
	}
	run("add", ".")
	run("-c", "commit.gpgsign=false", "commit", "-m", "add lint hook")
	return dir
}

func TestSyncClonesIntoEmptyDir(t *testing.T) {
	src := initSourceRepo(t)
	dst := filepath.Join(t.TempDir(), "hooks")

	vcs := NewGitVCS()
	if err := vcs.Sync(context.Background(), src, "", dst); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "lint_hook.gox")); err != nil {
		t.Errorf("synced script missing: %v", err)
	}
}

func TestSyncIsRepeatable(t *testing.T) {
	src := initSourceRepo(t)
	dst := filepath.Join(t.TempDir(), "hooks")
	vcs := NewGitVCS()
	ctx := context.Background()

	if err := vcs.Sync(ctx, src, "", dst); err != nil {
		t.Fatalf("first Sync: %v", err)
	}
	if err := vcs.Sync(ctx, src, "", dst); err != nil {
		t.Fatalf("second Sync: %v", err)
	}
}

func TestLatest(t *testing.T) {
	src := initSourceRepo(t)

	hash, err := NewGitVCS().Latest(context.Background(), src)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(hash) != 40 {
		t.Errorf("hash = %q, want 40 hex chars", hash)
	}
}

func TestLatestBadRemote(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	_, err := NewGitVCS().Latest(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Latest succeeded for a missing remote")
	}
}
