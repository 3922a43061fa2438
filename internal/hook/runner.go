package hook

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goplus/ixgo"
	"golang.org/x/mod/semver"

	"github.com/opencontrol/prebuild/buildenv"
	"github.com/opencontrol/prebuild/hookfile"
	"github.com/opencontrol/prebuild/internal/loader"
)

// HelperDirName is the project subdirectory holding auxiliary build
// scripts, relative to the project root.
const HelperDirName = "script/pio"

// SetupHook is the hook invoked at the pre-build phase to regenerate
// the compilation database.
const SetupHook = "setup_compile_commands"

// Runner resolves hooks and invokes them. Resolution order is the
// static registry first, then the script search path.
type Runner struct {
	Registry *Registry
	Path     *SearchPath

	// Version is the running tool version, checked against a script's
	// MinVersion declaration. Empty disables the check.
	Version string

	loader loader.Loader
}

// NewRunner returns a Runner over the given registry with an empty
// search path.
func NewRunner(reg *Registry, version string) *Runner {
	return &Runner{
		Registry: reg,
		Path:     new(SearchPath),
		Version:  version,
	}
}

// PreBuild runs the pre-build phase for the project described by env:
// the project's helper script directory is pushed to the front of the
// search path and the setup hook is invoked exactly once with env.
//
// The helper directory is prepended unconditionally — no existence
// check, no deduplication — so calling PreBuild twice in one process
// produces a duplicate search path entry and nothing else.
func (r *Runner) PreBuild(env *buildenv.Env) error {
	helperDir := filepath.Join(env.ProjectDir(), HelperDirName)
	r.Path.Prepend(helperDir)
	return r.Run(SetupHook, env)
}

// Run resolves the named hook and invokes it once, passing env
// through unmodified. A hook that cannot be resolved or that fails is
// fatal to the caller; there is no retry or fallback.
func (r *Runner) Run(name string, env *buildenv.Env) error {
	if fn, ok := r.Registry.Lookup(name); ok {
		return fn(env)
	}
	path, ok := r.Path.Resolve(name)
	if !ok {
		return fmt.Errorf("hook %q not found (searched: %s)", name, strings.Join(r.Path.Dirs(), ", "))
	}
	return r.runScript(name, path, env)
}

// RunScript loads a hook script by path and fires its onPreBuild
// event with env.
func (r *Runner) RunScript(path string, env *buildenv.Env) error {
	name := strings.TrimSuffix(filepath.Base(path), loader.ScriptSuffix)
	return r.runScript(name, path, env)
}

func (r *Runner) runScript(name, path string, env *buildenv.Env) error {
	elem, err := r.scriptLoader().Load(path)
	if err != nil {
		return fmt.Errorf("hook %q: %w", name, err)
	}

	if minVer, _ := elem.Value("minVersion").(string); minVer != "" && r.Version != "" {
		if !semver.IsValid(minVer) {
			return fmt.Errorf("hook %q: invalid MinVersion %q", name, minVer)
		}
		if semver.Compare(r.Version, minVer) < 0 {
			return fmt.Errorf("hook %q requires prebuild %s or newer (running %s)", name, minVer, r.Version)
		}
	}

	fn, _ := elem.Value("fOnPreBuild").(func(*buildenv.Env, *hookfile.Result))
	if fn == nil {
		return fmt.Errorf("hook %q: script declares no onPreBuild event", name)
	}
	out := new(hookfile.Result)
	fn(env, out)
	if errs := out.Errs(); len(errs) > 0 {
		return fmt.Errorf("hook %q: %w", name, errors.Join(errs...))
	}
	return nil
}

func (r *Runner) scriptLoader() loader.Loader {
	if r.loader == nil {
		r.loader = loader.NewHookLoader(ixgo.NewContext(ixgo.SupportMultipleInterp))
	}
	return r.loader
}
