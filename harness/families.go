package harness

import (
	"github.com/sarchlab/bpsim/config"
	"github.com/sarchlab/bpsim/predictor"
)

// Predictor family names, in report order.
const (
	AlwaysTaken   = "always-taken"
	NeverTaken    = "never-taken"
	BimodalOneBit = "bimodal-1bit"
	BimodalTwoBit = "bimodal-2bit"
	GShare        = "gshare"
	Tournament    = "tournament"
)

var descriptions = map[string]string{
	AlwaysTaken:   "Predicts every branch taken",
	NeverTaken:    "Predicts every branch not taken",
	BimodalOneBit: "Last outcome per address slot, swept over table size",
	BimodalTwoBit: "2-bit saturating counter per address slot, swept over table size",
	GShare:        "Address XOR global history, swept over history bits",
	Tournament:    "Per-address selector between gshare and bimodal",
}

var paramNames = map[string]string{
	BimodalOneBit: "table_size",
	BimodalTwoBit: "table_size",
	GShare:        "history_bits",
}

// Families builds every predictor family from a validated configuration.
func Families(c *config.Config) []predictor.Family {
	return []predictor.Family{
		{
			Name:   AlwaysTaken,
			Points: single(func() predictor.Model { return predictor.NewAlwaysTaken() }),
		},
		{
			Name:   NeverTaken,
			Points: single(func() predictor.Model { return predictor.NewNeverTaken() }),
		},
		{
			Name:  BimodalOneBit,
			Swept: true,
			Points: sizePoints(c.BimodalSizes, func(size int) predictor.Model {
				return predictor.NewOneBitBimodal(size)
			}),
		},
		{
			Name:  BimodalTwoBit,
			Swept: true,
			Points: sizePoints(c.BimodalSizes, func(size int) predictor.Model {
				return predictor.NewTwoBitBimodal(size)
			}),
		},
		{
			Name:   GShare,
			Swept:  true,
			Points: gsharePoints(c),
		},
		{
			Name: Tournament,
			Points: single(func() predictor.Model {
				return predictor.NewTournament(c.TournamentTableSize, c.HistoryWidth)
			}),
		},
	}
}

func single(build func() predictor.Model) []predictor.Point {
	return []predictor.Point{{New: build}}
}

func sizePoints(sizes []int, build func(size int) predictor.Model) []predictor.Point {
	points := make([]predictor.Point, 0, len(sizes))
	for _, size := range sizes {
		points = append(points, predictor.Point{
			Param: uint64(size),
			New:   func() predictor.Model { return build(size) },
		})
	}
	return points
}

func gsharePoints(c *config.Config) []predictor.Point {
	points := make([]predictor.Point, 0, len(c.GShareHistoryWidths))
	for _, w := range c.GShareHistoryWidths {
		points = append(points, predictor.Point{
			Param: uint64(w),
			New: func() predictor.Model {
				return predictor.NewGShare(c.GShareTableSize, c.HistoryWidth, w)
			},
		})
	}
	return points
}
