package buildpipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vela/internal/erase"
	"vela/internal/ir"
	"vela/internal/project"
)

// BuildRequest configures a full build: load, lower, emit.
type BuildRequest struct {
	Module      *ir.Module
	Manifest    project.Manifest
	CachePath   string // msgpack module cache; empty disables caching
	EmitBlocks  bool   // write a DumpBlocks listing per function under Manifest.Build.OutDir
	EmitLua     bool   // translate the entry source to Lua via internal/erase
	Progress    ProgressSink
	Concurrency int
}

// BuildResult captures build artefacts and stage timings.
type BuildResult struct {
	Timings     Timings
	EmittedPath string
}

// Build validates the module's entry, lowers every function to basic
// blocks, and optionally writes a textual IR dump and a refreshed
// module cache.
func Build(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	var result BuildResult
	if req == nil || req.Module == nil {
		return result, fmt.Errorf("missing build request")
	}

	loadStart := time.Now()
	emitFunc(req.Progress, "", StageLoad, StatusWorking, nil, 0)
	if err := ValidateEntry(req.Module, req.Manifest.Package.Entry); err != nil {
		emitFunc(req.Progress, "", StageLoad, StatusError, err, 0)
		return result, err
	}
	result.Timings.Set(StageLoad, time.Since(loadStart))
	emitFunc(req.Progress, "", StageLoad, StatusDone, nil, result.Timings.Duration(StageLoad))

	lowerRes, err := LowerModule(ctx, &LowerRequest{
		Module:      req.Module,
		Progress:    req.Progress,
		Concurrency: req.Concurrency,
	})
	if err != nil {
		return result, err
	}
	result.Timings.Set(StageLower, lowerRes.Timings.Duration(StageLower))

	emitStart := time.Now()
	emitFunc(req.Progress, "", StageEmit, StatusWorking, nil, 0)

	if req.CachePath != "" {
		if err := SaveModuleCache(req.CachePath, req.Module); err != nil {
			emitFunc(req.Progress, "", StageEmit, StatusError, err, 0)
			return result, err
		}
	}

	if req.EmitBlocks {
		outDir := req.Manifest.Build.OutDir
		if outDir == "" {
			outDir = "out"
		}
		if err := os.MkdirAll(outDir, 0o750); err != nil {
			err = fmt.Errorf("failed to create output dir %q: %w", outDir, err)
			emitFunc(req.Progress, "", StageEmit, StatusError, err, 0)
			return result, err
		}
		path := filepath.Join(outDir, req.Manifest.Package.Name+".ir.txt")
		if err := writeBlockDump(path, req.Module); err != nil {
			emitFunc(req.Progress, "", StageEmit, StatusError, err, 0)
			return result, err
		}
		result.EmittedPath = path
	}

	if req.EmitLua {
		path, err := emitLua(req.Manifest)
		if err != nil {
			emitFunc(req.Progress, "", StageEmit, StatusError, err, 0)
			return result, err
		}
		result.EmittedPath = path
	}

	result.Timings.Set(StageEmit, time.Since(emitStart))
	emitFunc(req.Progress, "", StageEmit, StatusDone, nil, result.Timings.Duration(StageEmit))
	return result, nil
}

// emitLua reads the sidecar named by [build].regions_file, erases the
// type and comment regions it describes out of the source it names,
// and writes the result next to that source with a .lua extension.
func emitLua(manifest project.Manifest) (string, error) {
	if manifest.Build.RegionsFile == "" {
		return "", fmt.Errorf("emit-lua requires [build].regions_file in vela.toml")
	}
	rf, err := project.LoadRegions(manifest.Build.RegionsFile)
	if err != nil {
		return "", err
	}
	src, err := os.ReadFile(rf.Source)
	if err != nil {
		return "", fmt.Errorf("failed to read entry source %q: %w", rf.Source, err)
	}
	out, err := erase.Erase(string(src), rf.TypeRegions, rf.CommentRegions)
	if err != nil {
		return "", fmt.Errorf("failed to erase types from %q: %w", rf.Source, err)
	}
	luaPath := strings.TrimSuffix(rf.Source, filepath.Ext(rf.Source)) + ".lua"
	if err := os.WriteFile(luaPath, []byte(out), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", luaPath, err)
	}
	return luaPath, nil
}

func writeBlockDump(path string, mod *ir.Module) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write IR dump %q: %w", path, err)
	}
	defer f.Close()

	for _, fn := range mod.Functions[1:] {
		ir.DumpBlocks(f, fn)
	}
	return nil
}
