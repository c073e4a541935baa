package predictor

// Counter is a 2-bit saturating counter with two sides. Values 0 and 1 lean
// to the first side, 2 and 3 to the second. Direction tables read the first
// side as "taken"; the tournament selector reads it as "prefer gshare".
type Counter uint8

// Counter states, from most confident in the first side to most confident
// in the second side.
const (
	StronglyFirst Counter = iota
	WeaklyFirst
	WeaklySecond
	StronglySecond
)

// Direction-table names for the counter states.
const (
	StronglyTaken    = StronglyFirst
	WeaklyTaken      = WeaklyFirst
	WeaklyNotTaken   = WeaklySecond
	StronglyNotTaken = StronglySecond
)

// PrefersFirst reports whether the counter leans to the first side.
func (c Counter) PrefersFirst() bool {
	return c < WeaklySecond
}

// Predict returns the taken/not-taken guess of a direction counter.
func (c Counter) Predict() bool {
	return c.PrefersFirst()
}

// Reward moves one step toward StronglyFirst.
func (c *Counter) Reward() {
	if *c > StronglyFirst {
		*c--
	}
}

// Penalize moves one step toward StronglySecond.
func (c *Counter) Penalize() {
	if *c < StronglySecond {
		*c++
	}
}

// Train moves the counter one step toward the observed side.
func (c *Counter) Train(first bool) {
	if first {
		c.Reward()
	} else {
		c.Penalize()
	}
}

// Selector chooses between the gshare and bimodal halves of a tournament
// predictor.
type Selector struct {
	Counter
}

// Selector states.
const (
	StronglyGShare  = StronglyFirst
	WeaklyGShare    = WeaklyFirst
	WeaklyBimodal   = WeaklySecond
	StronglyBimodal = StronglySecond
)

// PrefersGShare reports whether the selector picks the gshare prediction.
func (s Selector) PrefersGShare() bool {
	return s.PrefersFirst()
}

// PrefersBimodal reports whether the selector picks the bimodal prediction.
func (s Selector) PrefersBimodal() bool {
	return !s.PrefersFirst()
}

// TowardGShare moves one step toward StronglyGShare.
func (s *Selector) TowardGShare() {
	s.Reward()
}

// TowardBimodal moves one step toward StronglyBimodal.
func (s *Selector) TowardBimodal() {
	s.Penalize()
}

func resetCounters(table []Counter) {
	for i := range table {
		table[i] = StronglyTaken
	}
}
