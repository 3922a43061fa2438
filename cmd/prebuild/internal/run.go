package internal

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencontrol/prebuild/internal/hook"
	"github.com/opencontrol/prebuild/internal/loader"
	"github.com/opencontrol/prebuild/internal/project"
)

var runEnvName string
var runVerbose bool

var runCmd = &cobra.Command{
	Use:   "run [project-dir]",
	Short: "Run the pre-build hook phase",
	Long: `Run executes the pre-build hooks for a PlatformIO project: the built-in
compile commands setup, then any helper scripts found in the project's
script/pio directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runEnvName, "environment", "e", "", "Environment to run for (default: first default_envs entry)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Enable verbose hook output")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	projectDir, cfg, err := resolveProject(args)
	if err != nil {
		return err
	}
	envName, err := pickEnv(cfg, runEnvName)
	if err != nil {
		return err
	}

	env := newEnv(projectDir, cfg, envName)
	if !runVerbose {
		env.SetStdout(io.Discard)
	}

	runner := newRunner()
	if err := runner.PreBuild(env); err != nil {
		return fmt.Errorf("pre-build failed: %w", err)
	}

	// The setup hook ran; fire the project's remaining helper scripts
	// in search order, then any extra_scripts the manifest names.
	ran := make(map[string]bool)
	for _, script := range runner.Path.Scripts() {
		name := strings.TrimSuffix(filepath.Base(script), loader.ScriptSuffix)
		if name == hook.SetupHook {
			continue
		}
		if err := runner.RunScript(script, env); err != nil {
			return fmt.Errorf("pre-build failed: %w", err)
		}
		ran[script] = true
	}
	for _, script := range extraHookScripts(projectDir, cfg, envName) {
		if ran[script] {
			continue
		}
		if err := runner.RunScript(script, env); err != nil {
			return fmt.Errorf("pre-build failed: %w", err)
		}
	}
	return nil
}

// extraHookScripts returns the hook scripts named by the manifest's
// extra_scripts for the pre-build phase, as absolute paths. post:
// entries and scripts in other languages are left to PlatformIO.
func extraHookScripts(projectDir string, cfg *project.Config, envName string) []string {
	var scripts []string
	for _, entry := range cfg.ExtraScripts(envName) {
		path := entry
		if phase, rest, ok := strings.Cut(entry, ":"); ok && (phase == "pre" || phase == "post") {
			if phase == "post" {
				continue
			}
			path = rest
		}
		if !strings.HasSuffix(path, loader.ScriptSuffix) {
			continue
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectDir, path)
		}
		scripts = append(scripts, path)
	}
	return scripts
}
