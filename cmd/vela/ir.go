package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"vela/internal/buildpipeline"
	"vela/internal/ir"
	"vela/internal/project"
)

var (
	irShowBlocks bool
	irCachePath  string
)

func init() {
	irCmd.Flags().BoolVar(&irShowBlocks, "blocks", false, "dump lowered basic blocks instead of the command tree")
	irCmd.Flags().StringVar(&irCachePath, "cache", "", "module cache path (default: <out_dir>/<name>.irc)")
}

var irCmd = &cobra.Command{
	Use:   "ir [path]",
	Short: "Print a module's IR",
	Long:  "Ir loads the cached module for the project at path and prints its command tree, or its basic blocks with --blocks.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIR,
}

func runIR(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	manifestPath, root, err := resolveManifestPath(dir)
	if err != nil {
		return err
	}
	manifest, err := project.Load(manifestPath)
	if err != nil {
		return err
	}

	cachePath := irCachePath
	if cachePath == "" {
		cachePath = filepath.Join(root, manifest.Build.OutDir, manifest.Package.Name+".irc")
	}
	mod, ok, err := buildpipeline.LoadModuleCache(cachePath)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no module cache at %q", cachePath)
	}

	if irShowBlocks {
		for _, f := range mod.Functions[1:] {
			if f.Blocks == nil {
				f.Body = ir.Clean(f.Body)
				ir.GenerateBasicBlocks(f)
			}
		}
	}

	ir.DumpModule(cmd.OutOrStdout(), mod, irShowBlocks)
	return nil
}
