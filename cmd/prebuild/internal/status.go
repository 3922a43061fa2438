package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/opencontrol/prebuild/pkgs/compiledb"
)

var statusCmd = &cobra.Command{
	Use:   "status [project-dir]",
	Short: "Show the state of the compile commands database",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	projectDir, _, err := resolveProject(args)
	if err != nil {
		return err
	}

	path := filepath.Join(projectDir, compiledb.FileName)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Printf("%s: not generated yet (run 'prebuild run')\n", compiledb.FileName)
		return nil
	}
	if err != nil {
		return err
	}
	db, err := compiledb.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d entries, %s, updated %s\n",
		compiledb.FileName, len(db),
		humanize.Bytes(uint64(info.Size())),
		humanize.Time(info.ModTime()))
	return nil
}
