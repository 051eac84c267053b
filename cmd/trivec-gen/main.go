package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/trivec/internal/gen"
)

func main() {
	var (
		max         = flag.Int("max", 81, "Highest generated length")
		out         = flag.String("out", "sizes_gen.go", "Output file path")
		pkg         = flag.String("pkg", "trivec", "Target package name")
		strict      = flag.Bool("strict", false, "Fail on out-of-range lengths instead of truncating")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive layout inspector")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		gen.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*out, *pkg, *max, *strict); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(out, pkg string, max int, strict bool) error {
	// Refuse to regenerate over a file with a newer format
	if existing, err := os.ReadFile(out); err == nil {
		if err := gen.CheckCompat(existing); err != nil {
			return err
		}
	}

	data, err := gen.Generate(gen.Options{Pkg: pkg, Max: max, Strict: strict})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if err := gen.WriteFile(out, data); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d bytes)\n", out, len(data))
	return nil
}
