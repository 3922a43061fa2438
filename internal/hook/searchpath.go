package hook

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/opencontrol/prebuild/internal/loader"
)

// SearchPath is the ordered list of directories searched for hook
// scripts. Entries are not deduplicated: prepending the same
// directory twice legitimately produces duplicate entries, which is
// harmless for resolution.
type SearchPath struct {
	dirs []string
}

// Prepend inserts dir at the front of the search path so it shadows
// every existing entry.
func (p *SearchPath) Prepend(dir string) {
	p.dirs = append([]string{dir}, p.dirs...)
}

// Append adds dir at the end of the search path.
func (p *SearchPath) Append(dir string) {
	p.dirs = append(p.dirs, dir)
}

// Dirs returns the current entries in search order.
func (p *SearchPath) Dirs() []string {
	return slices.Clone(p.dirs)
}

// Resolve returns the path of the first script named
// "<name>_hook.gox" found on the search path.
func (p *SearchPath) Resolve(name string) (string, bool) {
	for _, dir := range p.dirs {
		path := filepath.Join(dir, name+loader.ScriptSuffix)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Scripts returns the paths of all hook scripts visible on the search
// path, front entries first. A script shadowed by an earlier entry
// with the same file name is omitted.
func (p *SearchPath) Scripts() []string {
	var scripts []string
	seen := make(map[string]bool)
	for _, dir := range p.dirs {
		matches, _ := filepath.Glob(filepath.Join(dir, "*"+loader.ScriptSuffix))
		for _, m := range matches {
			base := filepath.Base(m)
			if seen[base] {
				continue
			}
			seen[base] = true
			scripts = append(scripts, m)
		}
	}
	return scripts
}
