// Package latency injects the artificial delay that stands in for network
// round-trips in demo mode. Services take a Delayer instead of sleeping at
// call sites, so tests and real deployments run with None.
package latency

import (
	"math/rand"
	"time"
)

type Delayer interface {
	Wait()
}

// None performs no delay. The default outside demo mode.
var None Delayer = noop{}

type noop struct{}

func (noop) Wait() {}

// Random sleeps for a uniformly random duration in [min, max].
func Random(min, max time.Duration) Delayer {
	if max < min {
		min, max = max, min
	}
	return random{min: min, max: max}
}

// Simulated is the demo-mode default, matching the 100-800ms the storefront
// always faked.
func Simulated() Delayer {
	return Random(100*time.Millisecond, 800*time.Millisecond)
}

type random struct {
	min, max time.Duration
}

func (r random) Wait() {
	d := r.min
	if span := r.max - r.min; span > 0 {
		d += time.Duration(rand.Int63n(int64(span) + 1))
	}
	time.Sleep(d)
}
