// Command mixplan measures a document against a codec ladder, builds its
// diminishing-returns hull, and executes the cheapest mix of configurations
// that fits a wall-clock budget — writing a compressed (or split-mixed)
// output file and a human-readable report of the decision.
//
// Given more than one input file, mixplan plans them jointly: the budget is
// spent across documents by marginal benefit rather than split evenly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to TOML config (default: ./mixplan.toml or $HOME/.config/mixplan/config.toml)")
	budgetFlag := flag.String("budget", "", "total wall-clock budget, e.g. 30s (default: config's global_budget_seconds)")
	outDir := flag.String("out", ".", "directory to write compressed output files into")
	estimate := flag.Bool("estimate", false, "measure codecs via sampled estimation instead of full compression")
	plotPath := flag.String("plot", "", "write a PNG of the first document's hull curve to this path")
	watch := flag.Bool("watch", false, "show an interactive progress view while executing")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("Usage: mixplan [flags] <file> [file...]")
		fmt.Println("Example: mixplan -budget 30s -out ./dist report.json access.log")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()
		return 1
	}

	var budget time.Duration
	if *budgetFlag != "" {
		d, err := time.ParseDuration(*budgetFlag)
		if err != nil {
			log.Printf("Warning: invalid -budget %q: %v", *budgetFlag, err)
			return 1
		}
		budget = d
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		cancel()
	}()

	opts := RunOptions{
		Paths:      args,
		ConfigPath: *configPath,
		Budget:     budget,
		OutDir:     *outDir,
		Estimate:   *estimate,
		PlotPath:   *plotPath,
		Watch:      *watch,
	}

	if err := Run(ctx, opts); err != nil {
		fmt.Fprintln(os.Stderr, "mixplan:", err)
		return 1
	}
	return 0
}
