package internal

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opencontrol/prebuild/internal/env"
	"github.com/opencontrol/prebuild/internal/hook"
	"github.com/opencontrol/prebuild/internal/hookrepo"
	"github.com/opencontrol/prebuild/internal/vcs"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Inspect and install pre-build hooks",
}

var hooksLsCmd = &cobra.Command{
	Use:   "ls [project-dir]",
	Short: "List hooks resolvable for a project",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHooksLs,
}

var hooksGetCmd = &cobra.Command{
	Use:   "get host/owner/repo",
	Short: "Install a shared hook collection",
	Long:  `Get mirrors a git repository of helper scripts into the local hook cache, making its hooks resolvable for every project.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHooksGet,
}

func init() {
	hooksCmd.AddCommand(hooksLsCmd)
	hooksCmd.AddCommand(hooksGetCmd)
	rootCmd.AddCommand(hooksCmd)
}

func runHooksLs(cmd *cobra.Command, args []string) error {
	projectDir, _, err := resolveProject(args)
	if err != nil {
		return err
	}

	runner := newRunner()
	runner.Path.Prepend(filepath.Join(projectDir, hook.HelperDirName))

	for _, name := range runner.Registry.Names() {
		fmt.Printf("%s\t(builtin)\n", name)
	}
	for _, script := range runner.Path.Scripts() {
		fmt.Printf("%s\t(%s)\n", filepath.Base(script), filepath.Dir(script))
	}
	return nil
}

func runHooksGet(cmd *cobra.Command, args []string) error {
	hooksDir, err := env.HooksDir()
	if err != nil {
		return fmt.Errorf("failed to get hooks dir: %w", err)
	}
	store, err := hookrepo.New(hooksDir, args[0], vcs.NewGitVCS())
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := store.Sync(ctx); err != nil {
		return err
	}
	rev, err := store.Latest(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", args[0], err)
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	fmt.Printf("Installed %s@%s\n", args[0], rev)
	return nil
}
