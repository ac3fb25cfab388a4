package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"vela/internal/buildpipeline"
	"vela/internal/project"
)

var (
	buildEmitLua    bool
	buildEmitBlocks bool
	buildCachePath  string
	buildNoUI       bool
)

func init() {
	buildCmd.Flags().BoolVar(&buildEmitLua, "emit-lua", false, "translate the entry source to erased Lua, next to it")
	buildCmd.Flags().BoolVar(&buildEmitBlocks, "emit-ir", false, "write a basic-block IR dump under [build].out_dir")
	buildCmd.Flags().StringVar(&buildCachePath, "cache", "", "module cache path (default: <out_dir>/<name>.irc)")
	buildCmd.Flags().BoolVar(&buildNoUI, "no-ui", false, "print plain progress lines instead of the interactive view")
}

var buildCmd = &cobra.Command{
	Use:   "build [path]",
	Short: "Lower a module's IR and emit its build artifacts",
	Long:  "Build reads vela.toml, lowers every function in the cached module to basic blocks, and optionally emits an IR dump or erased Lua source.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
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

	cachePath := buildCachePath
	if cachePath == "" {
		cachePath = filepath.Join(root, manifest.Build.OutDir, manifest.Package.Name+".irc")
	}
	mod, ok, err := buildpipeline.LoadModuleCache(cachePath)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no module cache at %q; nothing to build (vela has no source front end of its own)", cachePath)
	}

	req := &buildpipeline.BuildRequest{
		Module:     mod,
		Manifest:   manifest,
		CachePath:  cachePath,
		EmitBlocks: buildEmitBlocks,
		EmitLua:    buildEmitLua || manifest.Build.EmitLua,
	}

	funcNames := make([]string, 0, len(mod.Functions)-1)
	for _, f := range mod.Functions[1:] {
		funcNames = append(funcNames, f.Name)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var result buildpipeline.BuildResult
	if !buildNoUI && !isQuiet(cmd) && isTerminal(os.Stdout) {
		result, err = runBuildWithUI(ctx, "vela build", funcNames, req)
	} else {
		result, err = buildpipeline.Build(ctx, req)
	}
	if err != nil {
		return err
	}

	if result.EmittedPath != "" {
		printf(cmd, "wrote %s\n", result.EmittedPath)
	}
	return nil
}

func resolveManifestPath(dir string) (manifestPath, root string, err error) {
	info, statErr := os.Stat(dir)
	if statErr == nil && !info.IsDir() {
		abs, absErr := filepath.Abs(dir)
		if absErr != nil {
			abs = dir
		}
		return abs, filepath.Dir(abs), nil
	}
	found, ok, err := project.FindManifest(dir)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", fmt.Errorf("no %s found under %q", project.ManifestName, dir)
	}
	return found, filepath.Dir(found), nil
}
