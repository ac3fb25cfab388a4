// Package main implements the vela CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vela/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "vela",
	Short: "Vela IR toolchain",
	Long:  "Vela lowers a typed module's IR to basic blocks and, optionally, to erased Lua source.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(irCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	cobra.OnInitialize(applyColorMode)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyColorMode reads the --color persistent flag and sets
// color.NoColor accordingly before any command runs.
func applyColorMode() {
	mode, err := rootCmd.PersistentFlags().GetString("color")
	if err != nil {
		return
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return false
	}
	return quiet
}

func colorEnabled() bool {
	return !color.NoColor
}

func printf(cmd *cobra.Command, format string, args ...any) {
	if isQuiet(cmd) {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
