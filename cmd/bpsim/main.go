// Package main provides the entry point for bpsim.
// bpsim replays a branch trace through a set of branch predictors and reports
// how many outcomes each one predicted correctly.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"golang.org/x/term"

	"github.com/sarchlab/bpsim/config"
	"github.com/sarchlab/bpsim/harness"
	"github.com/sarchlab/bpsim/trace"
)

// Console formats.
const (
	formatAuto  = "auto"
	formatRaw   = "raw"
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bpsim", flag.ContinueOnError)
	fs.SetOutput(stderr)

	outputPath := fs.String("o", "output.txt", "File the raw results are appended to (empty disables)")
	configPath := fs.String("config", "", "Path to sweep configuration JSON or YAML file")
	format := fs.String("format", formatAuto, "Console format: raw, table, csv, json or auto")
	parallel := fs.Int("parallel", 1, "Number of configurations evaluated at once")
	verbose := fs.Bool("v", false, "Verbose output")
	profileTop := fs.Int("profile-top", 0, "Print the N most mispredicted branches of each predictor")
	cpuProfile := fs.String("cpuprofile", "", "write cpu profile to file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: bpsim [options] <trace_file>\n")
		_, _ = fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return 1
	}

	tracePath := fs.Arg(0)
	logger := newLogger(stderr, *verbose)

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
	}
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error in config: %v\n", err)
		return 1
	}

	consoleFormat, err := resolveFormat(*format, stdout)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "Error creating CPU profile: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()

		if err := pprof.StartCPUProfile(f); err != nil {
			_, _ = fmt.Fprintf(stderr, "Error starting CPU profile: %v\n", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()

	records, err := trace.Load(tracePath, cfg.TraceFormat())
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error loading trace: %v\n", err)
		return 1
	}
	logger.V(1).Info("loaded trace", "path", tracePath, "records", len(records))

	h := harness.NewHarness(harness.HarnessConfig{
		Config:      cfg,
		Parallelism: *parallel,
		Output:      stdout,
		Logger:      logger,
	})

	var profiler *harness.MispredictionProfiler
	if *profileTop > 0 {
		profiler = harness.NewMispredictionProfiler()
		h.AcceptHook(profiler)
	}

	reports := h.Run(records)

	if *outputPath != "" {
		if err := appendRaw(*outputPath, reports); err != nil {
			_, _ = fmt.Fprintf(stderr, "Error writing results: %v\n", err)
			return 1
		}
	}

	switch consoleFormat {
	case formatTable:
		h.PrintResults(reports)
	case formatCSV:
		h.PrintCSV(reports)
	case formatJSON:
		if err := h.PrintJSON(reports); err != nil {
			_, _ = fmt.Fprintf(stderr, "Error writing JSON: %v\n", err)
			return 1
		}
	default:
		h.PrintRaw(reports)
	}

	if profiler != nil {
		h.PrintProfile(profiler, reports, *profileTop)
	}

	logger.V(1).Info("finished", "elapsed", time.Since(start))

	return 0
}

// resolveFormat picks the console format. Auto prints a table to terminals
// and the raw format everywhere else.
func resolveFormat(format string, stdout io.Writer) (string, error) {
	switch format {
	case formatRaw, formatTable, formatCSV, formatJSON:
		return format, nil
	case formatAuto:
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return formatTable, nil
		}
		return formatRaw, nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

// appendRaw appends the raw results to the file at path.
func appendRaw(path string, reports []harness.Report) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	if err := harness.WriteRaw(f, reports); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return f.Close()
}

// newLogger writes log lines to w. Verbose enables V(1) progress lines.
func newLogger(w io.Writer, verbose bool) logr.Logger {
	var mu sync.Mutex

	verbosity := 0
	if verbose {
		verbosity = 1
	}

	return funcr.New(func(prefix, args string) {
		mu.Lock()
		defer mu.Unlock()

		if prefix != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}
