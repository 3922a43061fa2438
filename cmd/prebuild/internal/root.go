package internal

import (
	"log"

	"github.com/spf13/cobra"
)

// Version is the running tool version, checked against MinVersion
// declarations in hook scripts.
const Version = "v0.3.0"

var rootCmd = &cobra.Command{
	Use:     "prebuild",
	Short:   "prebuild runs pre-build hooks for PlatformIO projects",
	Long:    `prebuild runs pre-build hooks for PlatformIO projects, keeping the compile commands database used by clangd and other editor tooling up to date.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
