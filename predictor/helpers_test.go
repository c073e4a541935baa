package predictor_test

import (
	"github.com/sarchlab/bpsim/predictor"
	"github.com/sarchlab/bpsim/trace"
)

func rec(addr uint64, taken bool) trace.Record {
	return trace.Record{Address: addr, Taken: taken}
}

// pattern builds records for one address from a string of 'T' and 'N'.
func pattern(addr uint64, outcomes string) []trace.Record {
	records := make([]trace.Record, 0, len(outcomes))
	for _, c := range outcomes {
		records = append(records, rec(addr, c == 'T'))
	}
	return records
}

func evaluate(m predictor.Model, records []trace.Record) predictor.Result {
	return predictor.NewEvaluator().Evaluate("test", 0, m, records)
}

// mixedTrace is a deterministic trace touching many table slots.
func mixedTrace(n int) []trace.Record {
	records := make([]trace.Record, 0, n)
	state := uint64(0x2545F4914F6CDD1D)
	for i := 0; i < n; i++ {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		addr := 0x400000 + (state%97)*4
		taken := (state>>11)%3 != 0 || i%5 == 0
		records = append(records, rec(addr, taken))
	}
	return records
}
