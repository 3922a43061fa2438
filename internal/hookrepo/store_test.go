package hookrepo

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// fakeVCS records Sync calls and materializes a hook script in the
// destination directory.
type fakeVCS struct {
	synced []string
}

func (f *fakeVCS) Sync(ctx context.Context, remote, ref, dir string) error {
	f.synced = append(f.synced, remote)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "lint_hook.gox"), []byte("// hook\n"), 0644)
}

func (f *fakeVCS) Latest(ctx context.Context, remote string) (string, error) {
	return "deadbeef", nil
}

func TestStoreSync(t *testing.T) {
	base := t.TempDir()
	v := &fakeVCS{}

	store, err := New(base, "github.com/opencontrol/prebuild-hooks", v)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := store.Sync(context.Background()); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	want := []string{"https://github.com/opencontrol/prebuild-hooks"}
	if !reflect.DeepEqual(v.synced, want) {
		t.Errorf("synced remotes = %v, want %v", v.synced, want)
	}
	wantDir := filepath.Join(base, "github.com", "opencontrol", "prebuild-hooks")
	if store.Dir() != wantDir {
		t.Errorf("Dir = %q, want %q", store.Dir(), wantDir)
	}
	if _, err := os.Stat(filepath.Join(wantDir, "lint_hook.gox")); err != nil {
		t.Errorf("synced script missing: %v", err)
	}
}

func TestStoreLatest(t *testing.T) {
	store, err := New(t.TempDir(), "github.com/opencontrol/prebuild-hooks", &fakeVCS{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rev, err := store.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if rev != "deadbeef" {
		t.Errorf("Latest = %q, want the remote HEAD hash", rev)
	}
}

func TestNewRejectsBadPaths(t *testing.T) {
	for _, p := range []string{"", "owner/repo", "github.com//repo", "github.com/../repo/x"} {
		if _, err := New(t.TempDir(), p, &fakeVCS{}); err == nil {
			t.Errorf("New(%q) succeeded, want error", p)
		}
	}
}

func TestInstalled(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "github.com", "x", "hooks-a")
	b := filepath.Join(root, "github.com", "x", "hooks-b")
	for _, dir := range []string{a, b} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(a, "lint_hook.gox"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	// b has no scripts and must not be listed.
	if err := os.WriteFile(filepath.Join(b, "README.md"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Installed(root)
	if err != nil {
		t.Fatalf("Installed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{a}) {
		t.Errorf("Installed = %v, want [%s]", got, a)
	}
}
