// Package hookrepo manages locally mirrored hook collections.
package hookrepo

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencontrol/prebuild/internal/loader"
	"github.com/opencontrol/prebuild/internal/lockedfile"
	"github.com/opencontrol/prebuild/internal/vcs"
)

// Store is one hook collection mirrored from a git remote into a
// local directory.
type Store struct {
	dir    string
	remote string
	vcs    vcs.VCS
}

// New creates a Store for the collection at repoPath
// ("host/owner/repo") rooted under baseDir.
func New(baseDir, repoPath string, v vcs.VCS) (*Store, error) {
	if err := validateRepoPath(repoPath); err != nil {
		return nil, err
	}
	return &Store{
		dir:    filepath.Join(baseDir, filepath.FromSlash(repoPath)),
		remote: "https://" + repoPath,
		vcs:    v,
	}, nil
}

// Dir returns the local directory of the collection, suitable for
// appending to a hook search path.
func (s *Store) Dir() string {
	return s.dir
}

// Sync mirrors the remote collection into the local directory. A file
// lock serializes concurrent syncs of the same collection.
func (s *Store) Sync(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.dir), 0700); err != nil {
		return err
	}
	unlock, err := lockedfile.MutexAt(s.dir + ".lock").Lock()
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.vcs.Sync(ctx, s.remote, "", s.dir); err != nil {
		return fmt.Errorf("sync %s: %w", s.remote, err)
	}
	return nil
}

// Latest returns the commit hash of the remote collection's HEAD.
func (s *Store) Latest(ctx context.Context) (string, error) {
	return s.vcs.Latest(ctx, s.remote)
}

// validateRepoPath checks a "host/owner/repo" collection path.
func validateRepoPath(repoPath string) error {
	parts := strings.Split(repoPath, "/")
	if len(parts) < 3 {
		return fmt.Errorf("invalid collection path %q, expected host/owner/repo", repoPath)
	}
	for _, p := range parts {
		if p == "" || p == "." || p == ".." {
			return fmt.Errorf("invalid collection path %q", repoPath)
		}
	}
	return nil
}

// Installed returns the directories under root that contain at least
// one hook script, sorted by path.
func Installed(root string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, loader.ScriptSuffix) {
			return nil
		}
		dir := filepath.Dir(path)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}
