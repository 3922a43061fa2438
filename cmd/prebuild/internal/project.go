package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencontrol/prebuild/buildenv"
	"github.com/opencontrol/prebuild/internal/env"
	"github.com/opencontrol/prebuild/internal/hook"
	"github.com/opencontrol/prebuild/internal/hookrepo"
	"github.com/opencontrol/prebuild/internal/project"
	"github.com/opencontrol/prebuild/pkgs/compiledb"
)

// resolveProject locates the project root from an optional positional
// argument and parses its manifest.
func resolveProject(args []string) (projectDir string, cfg *project.Config, err error) {
	projectDir = "."
	if len(args) > 0 {
		projectDir = args[0]
	}
	projectDir, err = filepath.Abs(projectDir)
	if err != nil {
		return "", nil, err
	}

	iniPath := filepath.Join(projectDir, project.IniFile)
	if _, err := os.Stat(iniPath); os.IsNotExist(err) {
		return "", nil, fmt.Errorf("%s not found in %s, not a PlatformIO project", project.IniFile, projectDir)
	}
	cfg, err = project.Parse(iniPath, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse %s: %w", project.IniFile, err)
	}
	return projectDir, cfg, nil
}

// pickEnv chooses the environment to run for: the -e flag if given,
// otherwise the project's first default environment.
func pickEnv(cfg *project.Config, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if v := os.Getenv("PLATFORMIO_DEFAULT_ENVS"); v != "" {
		v, _, _ = strings.Cut(v, ",")
		return strings.TrimSpace(v), nil
	}
	envs := cfg.DefaultEnvs()
	if len(envs) == 0 {
		return "", fmt.Errorf("no environments defined in %s", project.IniFile)
	}
	return envs[0], nil
}

// newEnv builds the environment object handed to hooks, overlaying
// the project manifest onto the standard variables.
func newEnv(projectDir string, cfg *project.Config, envName string) *buildenv.Env {
	e := buildenv.New(projectDir, envName)
	e.Set("PROJECT_SRC_DIR", "$PROJECT_DIR/"+cfg.SrcDir())
	e.Set("PROJECT_INCLUDE_DIR", "$PROJECT_DIR/"+cfg.IncludeDir())
	if dir := os.Getenv("PLATFORMIO_BUILD_DIR"); dir != "" {
		e.Set("BUILD_DIR", filepath.Join(dir, "$PIOENV"))
	}
	if flags := cfg.BuildFlags(envName); len(flags) > 0 {
		e.Set("BUILD_FLAGS", strings.Join(flags, " "))
	}
	if v, ok := cfg.Get("env:"+envName, "custom_cxx"); ok {
		e.Set("CXX", v)
	}
	if v, ok := cfg.Get("env:"+envName, "custom_cc"); ok {
		e.Set("CC", v)
	}
	return e
}

// newRunner wires the hook runner: the built-in setup hook plus any
// installed shared hook collections on the search path.
func newRunner() *hook.Runner {
	reg := hook.NewRegistry()
	reg.Register(hook.SetupHook, compiledb.Setup)

	r := hook.NewRunner(reg, Version)
	hooksDir, err := env.HooksDir()
	if err != nil {
		return r
	}
	dirs, err := hookrepo.Installed(hooksDir)
	if err != nil {
		return r
	}
	for _, dir := range dirs {
		r.Path.Append(dir)
	}
	return r
}
