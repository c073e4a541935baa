package harness

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sarchlab/bpsim/config"
)

// Version is reported in JSON output.
const Version = "1.0.0"

// WriteRaw writes reports in the canonical "correct,total;" line format: one
// line per family, configurations separated by "; " and each line ending in
// ";\n".
func WriteRaw(w io.Writer, reports []Report) error {
	bw := bufio.NewWriter(w)
	for _, r := range reports {
		for i, p := range r.Points {
			sep := "; "
			if i == len(r.Points)-1 {
				sep = ";\n"
			}
			if _, err := fmt.Fprintf(bw, "%d,%d%s", p.Correct, p.Total, sep); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// PrintRaw outputs results in the canonical line format.
func (h *Harness) PrintRaw(reports []Report) {
	_ = WriteRaw(h.config.Output, reports)
}

// PrintResults outputs results in a human-readable format.
func (h *Harness) PrintResults(reports []Report) {
	out := h.config.Output

	_, _ = fmt.Fprintln(out, "=== Branch Predictor Accuracy ===")
	_, _ = fmt.Fprintln(out, "")

	for _, r := range reports {
		_, _ = fmt.Fprintf(out, "Predictor: %s\n", r.Name)
		_, _ = fmt.Fprintf(out, "  Description: %s\n", r.Description)

		if !r.Swept {
			for _, p := range r.Points {
				_, _ = fmt.Fprintf(out, "  Correct:  %d / %d\n", p.Correct, p.Total)
				_, _ = fmt.Fprintf(out, "  Accuracy: %.2f%%\n", p.AccuracyPercent)
			}
			_, _ = fmt.Fprintln(out, "")
			continue
		}

		_, _ = fmt.Fprintf(out, "  %-14s %12s %12s %9s\n", r.ParamName, "correct", "total", "accuracy")
		for _, p := range r.Points {
			_, _ = fmt.Fprintf(out, "  %-14d %12d %12d %8.2f%%\n",
				p.Param, p.Correct, p.Total, p.AccuracyPercent)
		}
		_, _ = fmt.Fprintln(out, "")
	}
}

// PrintCSV outputs results in CSV format for spreadsheet comparison.
func (h *Harness) PrintCSV(reports []Report) {
	_, _ = fmt.Fprintln(h.config.Output, "predictor,param,correct,total,accuracy_percent")

	for _, r := range reports {
		for _, p := range r.Points {
			_, _ = fmt.Fprintf(h.config.Output, "%s,%d,%d,%d,%.3f\n",
				r.Name,
				p.Param,
				p.Correct,
				p.Total,
				p.AccuracyPercent,
			)
		}
	}
}

// EvaluationReport is the complete JSON output format.
type EvaluationReport struct {
	// Metadata about the run
	Metadata ReportMetadata `json:"metadata"`

	// Results is the list of per-family reports
	Results []Report `json:"results"`

	// Summary contains aggregate statistics
	Summary ReportSummary `json:"summary"`
}

// ReportMetadata contains information about the evaluation run.
type ReportMetadata struct {
	// Timestamp when the evaluation was run
	Timestamp string `json:"timestamp"`

	// Version of the tool
	Version string `json:"version"`

	// Records is the number of trace records evaluated
	Records uint64 `json:"records"`

	// Config is the sweep that produced the results
	Config *config.Config `json:"config"`
}

// ReportSummary contains aggregate statistics across all families.
type ReportSummary struct {
	// TotalConfigurations is the number of evaluated configurations
	TotalConfigurations int `json:"total_configurations"`

	// BestPredictor names the family with the highest accuracy
	BestPredictor string `json:"best_predictor"`

	// BestParam is the configuration of the best predictor
	BestParam uint64 `json:"best_param,omitempty"`

	// BestAccuracyPercent is the highest accuracy seen
	BestAccuracyPercent float64 `json:"best_accuracy_percent"`
}

// Summarize computes aggregate statistics. Ties keep the earliest
// configuration in report order.
func Summarize(reports []Report) ReportSummary {
	var s ReportSummary
	first := true

	for _, r := range reports {
		for _, p := range r.Points {
			s.TotalConfigurations++
			if first || p.AccuracyPercent > s.BestAccuracyPercent {
				s.BestPredictor = r.Name
				s.BestParam = p.Param
				s.BestAccuracyPercent = p.AccuracyPercent
				first = false
			}
		}
	}

	return s
}

// PrintJSON outputs results in JSON format for automated comparison.
func (h *Harness) PrintJSON(reports []Report) error {
	var records uint64
	if len(reports) > 0 && len(reports[0].Points) > 0 {
		records = reports[0].Points[0].Total
	}

	report := EvaluationReport{
		Metadata: ReportMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   Version,
			Records:   records,
			Config:    h.config.Config,
		},
		Results: reports,
		Summary: Summarize(reports),
	}

	encoder := json.NewEncoder(h.config.Output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
