package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"mixplan/codec"
	"mixplan/config"
	"mixplan/executor"
	"mixplan/hullplot"
	"mixplan/internal/gzipcodec"
	"mixplan/measurement"
	"mixplan/multiplan"
	"mixplan/planner"
	"mixplan/report"
)

// RunOptions collects mixplan's flags, already parsed and validated by
// main's flag.FlagSet.
type RunOptions struct {
	Paths      []string
	ConfigPath string
	Budget     time.Duration
	OutDir     string
	Estimate   bool
	PlotPath   string
	Watch      bool
}

// document is one input file, held in memory for the lifetime of a run.
type document struct {
	path string
	data []byte
}

// Run loads configuration, measures every document against the configured
// codec ladder, plans the cheapest mix that fits the budget, prints a
// report of the decision, and executes it.
func Run(ctx context.Context, opts RunOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	budget := opts.Budget
	if budget == 0 {
		budget = cfg.GlobalBudget()
	}

	codecs, err := gzipcodec.Ladder(cfg.CodecLadder)
	if err != nil {
		return fmt.Errorf("resolve codec ladder: %w", err)
	}

	docs := make([]document, len(opts.Paths))
	for i, path := range opts.Paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		docs[i] = document{path: path, data: data}
	}

	var estimator *codec.EstimatorDescriptor
	if opts.Estimate {
		estimator = &codec.EstimatorDescriptor{
			BlockRatio: cfg.Estimator.BlockRatio,
			BlockCount: cfg.Estimator.BlockCount,
		}
	}

	hulls := make([]planner.Hull, len(docs))
	for i, d := range docs {
		measurements, err := measureDocument(ctx, d.data, codecs, estimator)
		if err != nil {
			return fmt.Errorf("measure %s: %w", d.path, err)
		}
		hull, err := planner.Build(measurements)
		if err != nil {
			return fmt.Errorf("build hull for %s: %w", d.path, err)
		}
		hulls[i] = hull
	}

	if opts.PlotPath != "" {
		if err := hullplot.SavePNG(hulls[0], opts.PlotPath); err != nil {
			log.Printf("Warning: plot %s failed: %v", opts.PlotPath, err)
		}
	}

	mixes, err := plan(hulls, budget)
	if err != nil {
		return fmt.Errorf("plan budget: %w", err)
	}
	fmt.Print(report.RenderMix(mixes))

	if opts.Watch {
		return runWatch(ctx, docs, mixes, opts.OutDir)
	}
	return executeAll(ctx, docs, mixes, opts.OutDir)
}

// loadConfig resolves path (or config.GetConfigPath's default) and loads
// it; a missing file silently falls back to DefaultConfig, as config.Load
// does.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = config.GetConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// measureDocument runs every codec in ladder against data and returns the
// resulting measurements, in ladder order.
func measureDocument(ctx context.Context, data []byte, ladder []codec.Codec, estimator *codec.EstimatorDescriptor) ([]measurement.Measurement, error) {
	out := make([]measurement.Measurement, len(ladder))
	for i, c := range ladder {
		duration, size, err := c.Measure(ctx, data, estimator)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name(), err)
		}
		out[i] = measurement.New(duration, size, c)
	}
	return out, nil
}

// plan queries a single hull directly, or builds and queries a joint plan
// when there is more than one document, printing whichever report is
// relevant along the way.
func plan(hulls []planner.Hull, budget time.Duration) ([]planner.OptimalMix, error) {
	if len(hulls) == 1 {
		mix, err := hulls[0].Query(budget)
		if err != nil {
			return nil, err
		}
		fmt.Print(report.RenderHull(hulls[0], &mix))
		return []planner.OptimalMix{mix}, nil
	}

	joint, err := multiplan.Build(hulls)
	if err != nil {
		return nil, err
	}
	fmt.Print(report.RenderMultiPlan(joint))
	return joint.Query(budget)
}

// executeAll runs executor.Execute against every document in sequence,
// writing each result into outDir and printing any non-fatal divergence
// warning.
func executeAll(ctx context.Context, docs []document, mixes []planner.OptimalMix, outDir string) error {
	for i, d := range docs {
		outPath := outputPath(outDir, d.path)
		result, err := executeOne(ctx, d, mixes[i], outPath)
		if err != nil {
			return err
		}
		fmt.Print(report.RenderDivergenceWarning(result.DivergenceWarning))
		fmt.Printf("%s -> %s (%d bytes, %s)\n", d.path, outPath, result.BytesWritten, result.Elapsed)
	}
	return nil
}

func executeOne(ctx context.Context, d document, mix planner.OptimalMix, outPath string) (executor.Result, error) {
	f, err := os.Create(outPath)
	if err != nil {
		return executor.Result{}, fmt.Errorf("create %s: %w", outPath, err)
	}

	result, execErr := executor.Execute(ctx, d.data, mix, f, nil)
	closeErr := f.Close()

	if execErr != nil {
		return executor.Result{}, fmt.Errorf("execute %s: %w", d.path, execErr)
	}
	if closeErr != nil {
		return executor.Result{}, fmt.Errorf("close %s: %w", outPath, closeErr)
	}
	return result, nil
}

// outputPath names the compressed sibling of path inside dir.
func outputPath(dir, path string) string {
	return filepath.Join(dir, filepath.Base(path)+".mixplan")
}
