package buildpipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"vela/internal/ir"
)

// LowerRequest configures the Clean+GenerateBasicBlocks stage.
type LowerRequest struct {
	Module      *ir.Module
	Progress    ProgressSink
	Concurrency int // 0 means GOMAXPROCS, chosen by errgroup's default scheduling
}

// LowerResult captures stage timings for the lowering pass.
type LowerResult struct {
	Timings Timings
}

// LowerModule runs Clean and then GenerateBasicBlocks over every
// function in req.Module. Functions are independent of one another at
// this stage, so they run concurrently across an errgroup.Group;
// req.Concurrency caps how many run at once (SetLimit), 0 leaving the
// group unlimited.
func LowerModule(ctx context.Context, req *LowerRequest) (LowerResult, error) {
	var result LowerResult
	if req == nil || req.Module == nil {
		return result, fmt.Errorf("missing module to lower")
	}
	start := time.Now()

	g, _ := errgroup.WithContext(ctx)
	if req.Concurrency > 0 {
		g.SetLimit(req.Concurrency)
	}

	// Functions[0] is the reserved slot; real functions start at index 1.
	for _, f := range req.Module.Functions[1:] {
		f := f
		emitFunc(req.Progress, f.Name, StageLower, StatusQueued, nil, 0)
		g.Go(func() error {
			fnStart := time.Now()
			emitFunc(req.Progress, f.Name, StageLower, StatusWorking, nil, 0)
			f.Body = ir.Clean(f.Body)
			ir.GenerateBasicBlocks(f)
			emitFunc(req.Progress, f.Name, StageLower, StatusDone, nil, time.Since(fnStart))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		emitFunc(req.Progress, "", StageLower, StatusError, err, 0)
		return result, err
	}

	result.Timings.Set(StageLower, time.Since(start))
	return result, nil
}

// SaveModuleCache serializes mod with msgpack and writes it to path.
func SaveModuleCache(path string, mod *ir.Module) error {
	data, err := msgpack.Marshal(mod)
	if err != nil {
		return fmt.Errorf("failed to encode module cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write module cache %q: %w", path, err)
	}
	return nil
}

// LoadModuleCache reads and decodes a module previously written by
// SaveModuleCache. ok is false (with a nil error) when path does not
// exist, the ordinary "no cache yet" case.
func LoadModuleCache(path string) (mod *ir.Module, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read module cache %q: %w", path, err)
	}
	mod = &ir.Module{}
	if err := msgpack.Unmarshal(data, mod); err != nil {
		return nil, false, fmt.Errorf("failed to decode module cache %q: %w", path, err)
	}
	return mod, true, nil
}

func emitFunc(sink ProgressSink, fn string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{Func: fn, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}
