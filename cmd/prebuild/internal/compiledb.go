package internal

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opencontrol/prebuild/pkgs/compiledb"
	"github.com/opencontrol/prebuild/x/pio"
)

var compiledbEnvName string
var compiledbVerbose bool
var compiledbExec bool

var compiledbCmd = &cobra.Command{
	Use:   "compiledb [project-dir]",
	Short: "Regenerate the compile commands database",
	Long: `Compiledb regenerates compile_commands.json for a project without
running any other hooks. With --exec the database is produced by the
build tool itself (pio run -t compiledb) for exact toolchain flags.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompiledb,
}

func init() {
	compiledbCmd.Flags().StringVarP(&compiledbEnvName, "environment", "e", "", "Environment to generate for (default: first default_envs entry)")
	compiledbCmd.Flags().BoolVarP(&compiledbVerbose, "verbose", "v", false, "Enable verbose output")
	compiledbCmd.Flags().BoolVar(&compiledbExec, "exec", false, "Delegate generation to the build tool")
	rootCmd.AddCommand(compiledbCmd)
}

func runCompiledb(cmd *cobra.Command, args []string) error {
	projectDir, cfg, err := resolveProject(args)
	if err != nil {
		return err
	}
	envName, err := pickEnv(cfg, compiledbEnvName)
	if err != nil {
		return err
	}

	if compiledbExec {
		p := pio.New(projectDir)
		if !compiledbVerbose {
			p.SetStdout(io.Discard)
		}
		if err := p.CompileDB(envName); err != nil {
			return fmt.Errorf("pio run -t compiledb failed: %w", err)
		}
		return nil
	}

	env := newEnv(projectDir, cfg, envName)
	if !compiledbVerbose {
		env.SetStdout(io.Discard)
	}
	return compiledb.Setup(env)
}
