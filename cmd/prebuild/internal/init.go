package internal

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opencontrol/prebuild/internal/hook"
)

//go:embed custom_hook.gox
var starterFS embed.FS

var initCmd = &cobra.Command{
	Use:   "init [project-dir]",
	Short: "Scaffold the project's hook script directory",
	Long:  `Init creates the script/pio directory with a starter hook script. An existing script is left unchanged.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	projectDir, _, err := resolveProject(args)
	if err != nil {
		return err
	}

	helperDir := filepath.Join(projectDir, hook.HelperDirName)
	if err := os.MkdirAll(helperDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", helperDir, err)
	}

	scriptPath := filepath.Join(helperDir, "custom_hook.gox")
	if _, err := os.Stat(scriptPath); err == nil {
		fmt.Printf("%s already exists\n", scriptPath)
		return nil
	}

	content, err := starterFS.ReadFile("custom_hook.gox")
	if err != nil {
		return fmt.Errorf("failed to read starter script: %w", err)
	}
	if err := os.WriteFile(scriptPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", scriptPath, err)
	}

	fmt.Printf("Initialized %s\n", scriptPath)
	return nil
}
