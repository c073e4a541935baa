package harness

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/bpsim/predictor"
	"github.com/sarchlab/bpsim/trace"
)

// BranchProfile counts the mispredictions of one branch address.
type BranchProfile struct {
	Address        uint64
	Mispredictions uint64
}

type profileKey struct {
	family  string
	param   uint64
	address uint64
}

// MispredictionProfiler is a hook that counts mispredictions per branch
// address for every evaluated configuration. It is safe for concurrent use.
type MispredictionProfiler struct {
	mu     sync.Mutex
	counts map[profileKey]uint64
}

// NewMispredictionProfiler creates an empty profiler.
func NewMispredictionProfiler() *MispredictionProfiler {
	return &MispredictionProfiler{counts: make(map[profileKey]uint64)}
}

// Func implements sim.Hook.
func (p *MispredictionProfiler) Func(ctx sim.HookCtx) {
	if ctx.Pos != predictor.HookPosPrediction {
		return
	}

	detail, ok := ctx.Detail.(predictor.StepDetail)
	if !ok || detail.Prediction.Correct {
		return
	}
	rec, ok := ctx.Item.(trace.Record)
	if !ok {
		return
	}

	p.mu.Lock()
	p.counts[profileKey{detail.Family, detail.Param, rec.Address}]++
	p.mu.Unlock()
}

// Top returns the n most mispredicted addresses of one configuration. Ties
// are ordered by ascending address.
func (p *MispredictionProfiler) Top(family string, param uint64, n int) []BranchProfile {
	p.mu.Lock()
	var profiles []BranchProfile
	for k, v := range p.counts {
		if k.family == family && k.param == param {
			profiles = append(profiles, BranchProfile{Address: k.address, Mispredictions: v})
		}
	}
	p.mu.Unlock()

	slices.SortFunc(profiles, func(a, b BranchProfile) int {
		if c := cmp.Compare(b.Mispredictions, a.Mispredictions); c != 0 {
			return c
		}
		return cmp.Compare(a.Address, b.Address)
	})

	if n >= 0 && len(profiles) > n {
		profiles = profiles[:n]
	}
	return profiles
}

// PrintProfile outputs the n most mispredicted branches of each family at
// its last, and largest, configuration.
func (h *Harness) PrintProfile(p *MispredictionProfiler, reports []Report, n int) {
	_, _ = fmt.Fprintln(h.config.Output, "=== Most Mispredicted Branches ===")

	for _, r := range reports {
		if len(r.Points) == 0 {
			continue
		}
		last := r.Points[len(r.Points)-1]

		if r.Swept {
			_, _ = fmt.Fprintf(h.config.Output, "%s (%s %d):\n", r.Name, r.ParamName, last.Param)
		} else {
			_, _ = fmt.Fprintf(h.config.Output, "%s:\n", r.Name)
		}
		for _, b := range p.Top(r.Name, last.Param, n) {
			_, _ = fmt.Fprintf(h.config.Output, "  0x%08x %d\n", b.Address, b.Mispredictions)
		}
	}
}
