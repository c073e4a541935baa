// Package harness evaluates every predictor family over a trace and prints
// the results.
package harness

import (
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/sarchlab/akita/v4/sim"
	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/bpsim/config"
	"github.com/sarchlab/bpsim/predictor"
	"github.com/sarchlab/bpsim/trace"
)

// PointResult is the accuracy of one configuration of a family.
type PointResult struct {
	// Param is the table size or history width. Zero for families without a
	// sweep.
	Param uint64 `json:"param,omitempty"`

	Correct uint64 `json:"correct"`
	Total   uint64 `json:"total"`

	// AccuracyPercent is Correct/Total as a percentage.
	AccuracyPercent float64 `json:"accuracy_percent"`
}

// Result returns the point as a predictor.Result.
func (p PointResult) Result() predictor.Result {
	return predictor.Result{Correct: p.Correct, Total: p.Total}
}

// Report holds every configuration result of one predictor family.
type Report struct {
	// Name identifies the predictor family.
	Name string `json:"name"`

	// Description explains the predictor.
	Description string `json:"description"`

	// Swept is set for families evaluated over several configurations.
	Swept bool `json:"swept"`

	// ParamName names the swept parameter.
	ParamName string `json:"param_name,omitempty"`

	// Points are the per-configuration results, in ascending parameter
	// order.
	Points []PointResult `json:"points"`
}

// HarnessConfig configures the evaluation harness.
type HarnessConfig struct {
	// Config is the predictor sweep. Nil means config.DefaultConfig().
	Config *config.Config

	// Parallelism is the number of configurations evaluated at once.
	// Values below 2 evaluate sequentially.
	Parallelism int

	// Output is where to write results (default: os.Stdout)
	Output io.Writer

	// Logger receives progress at verbosity 1. The zero value discards.
	Logger logr.Logger
}

// DefaultConfig returns a sequential harness configuration with the
// reference sweep.
func DefaultConfig() HarnessConfig {
	return HarnessConfig{
		Config:      config.DefaultConfig(),
		Parallelism: 1,
		Output:      os.Stdout,
	}
}

// Harness runs predictor families over traces.
type Harness struct {
	config    HarnessConfig
	evaluator *predictor.Evaluator
	families  []predictor.Family
}

// NewHarness creates a new harness. The sweep configuration must already be
// valid.
func NewHarness(config HarnessConfig) *Harness {
	if config.Config == nil {
		config.Config = DefaultConfig().Config
	}
	if config.Output == nil {
		config.Output = os.Stdout
	}

	return &Harness{
		config:    config,
		evaluator: predictor.NewEvaluator(),
		families:  Families(config.Config),
	}
}

// Families returns the predictor families in report order.
func (h *Harness) Families() []predictor.Family {
	return h.families
}

// AcceptHook attaches a hook to every evaluation. Hooks must be safe for
// concurrent use when Parallelism is above 1.
func (h *Harness) AcceptHook(hook sim.Hook) {
	h.evaluator.AcceptHook(hook)
}

// Run evaluates every family over records. Reports come back in family order
// with points in configuration order, whatever the parallelism.
func (h *Harness) Run(records []trace.Record) []Report {
	reports := make([]Report, len(h.families))
	for i, f := range h.families {
		reports[i] = Report{
			Name:        f.Name,
			Description: descriptions[f.Name],
			Swept:       f.Swept,
			ParamName:   paramNames[f.Name],
			Points:      make([]PointResult, len(f.Points)),
		}
	}

	// A limit of 1 runs points one after another in submission order.
	var g errgroup.Group
	g.SetLimit(max(h.config.Parallelism, 1))

	for fi, f := range h.families {
		for pi, p := range f.Points {
			g.Go(func() error {
				reports[fi].Points[pi] = h.runPoint(f.Name, p, records)
				return nil
			})
		}
	}
	_ = g.Wait()

	return reports
}

// runPoint evaluates a single configuration.
func (h *Harness) runPoint(
	family string,
	p predictor.Point,
	records []trace.Record,
) PointResult {
	start := time.Now()
	res := h.evaluator.Evaluate(family, p.Param, p.New(), records)

	h.config.Logger.V(1).Info("evaluated",
		"predictor", family,
		"param", p.Param,
		"correct", res.Correct,
		"total", res.Total,
		"elapsed", time.Since(start))

	return PointResult{
		Param:           p.Param,
		Correct:         res.Correct,
		Total:           res.Total,
		AccuracyPercent: res.Accuracy(),
	}
}
