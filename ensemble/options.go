package ensemble

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/bagpower/pkg/log"
)

// Option configures a BaggingRegressor.
type Option func(*BaggingRegressor)

// WithNumBags sets the number of bootstrap bags and therefore of ensemble
// members. Values below 1 are rejected by Fit.
func WithNumBags(n int) Option {
	return func(b *BaggingRegressor) {
		b.numBags = n
	}
}

// WithOOB keeps a reference to the training data after Fit so that OOBScore
// can be computed.
func WithOOB(oob bool) Option {
	return func(b *BaggingRegressor) {
		b.oob = oob
	}
}

// WithRandomState sets the seed of the PCG source used for resampling. Every
// Fit reseeds, so repeated fits draw identical bags.
func WithRandomState(seed uint64) Option {
	return func(b *BaggingRegressor) {
		b.randomState = seed
		b.src = nil
	}
}

// WithRandSource injects the random source used for resampling. The source
// is consumed across fits and takes precedence over WithRandomState.
func WithRandSource(src rand.Source) Option {
	return func(b *BaggingRegressor) {
		b.src = src
	}
}

// WithLogger replaces the "ensemble.bagging" logger.
func WithLogger(l log.Logger) Option {
	return func(b *BaggingRegressor) {
		b.log = l
	}
}
