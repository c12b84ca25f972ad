package linalg

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/bagpower/pkg/log"
)

// PowerOption configures a PowerMethod.
type PowerOption func(*PowerMethod)

// WithSeed sets the seed of the PCG source that draws the initial vector.
// Each Estimate reseeds, so repeated calls return identical pairs.
func WithSeed(seed uint64) PowerOption {
	return func(pm *PowerMethod) {
		pm.seed = seed
		pm.src = nil
	}
}

// WithSource injects the source of the initial vector. It is consumed across
// calls to Estimate and takes precedence over WithSeed. A nil source is
// ignored.
func WithSource(src rand.Source) PowerOption {
	return func(pm *PowerMethod) {
		if src != nil {
			pm.src = src
		}
	}
}

// WithHistory records the Rayleigh quotient after every step.
func WithHistory(record bool) PowerOption {
	return func(pm *PowerMethod) {
		pm.history = record
	}
}

// WithLogger replaces the "linalg.power" logger.
func WithLogger(l log.Logger) PowerOption {
	return func(pm *PowerMethod) {
		pm.log = l
	}
}
