// Package ensemble implements bootstrap aggregation ("bagging") for regression.
//
// A BaggingRegressor trains one base model per bootstrap bag and predicts the
// unweighted mean of the members. With out-of-bag scoring enabled it also
// estimates the generalization error from the rows each member never saw:
//
//	bag := ensemble.NewBaggingRegressor(
//	    ensemble.WithNumBags(25),
//	    ensemble.WithOOB(true),
//	    ensemble.WithRandomState(7),
//	)
//	if err := bag.Fit(linear.Factory(), X, y); err != nil {
//	    return err
//	}
//	mse, err := bag.OOBScore()
//
// A BaggingRegressor is meant for a single owner: call Fit before Predict or
// OOBScore and do not share an instance between goroutines.
package ensemble

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/bagpower/core/model"
	"github.com/YuminosukeSato/bagpower/metrics"
	"github.com/YuminosukeSato/bagpower/pkg/errors"
	"github.com/YuminosukeSato/bagpower/pkg/log"
)

const (
	defaultNumBags     = 10
	defaultRandomState = 42
)

// BaggingRegressor averages regression models trained on bootstrap resamples.
type BaggingRegressor struct {
	model.BaseEstimator

	// Hyperparameters
	numBags     int
	oob         bool
	randomState uint64
	src         rand.Source
	log         log.Logger

	// Fitted state
	bags      []Bag
	models    []model.Model
	nSamples  int
	nFeatures int

	// Training data, retained only when oob is enabled. The caller must not
	// mutate X or y while OOB scores are still needed.
	X mat.Matrix
	y mat.Matrix
}

// NewBaggingRegressor creates an unfitted ensemble. Defaults: 10 bags, OOB
// disabled, random state 42.
func NewBaggingRegressor(opts ...Option) *BaggingRegressor {
	b := &BaggingRegressor{
		numBags:     defaultNumBags,
		randomState: defaultRandomState,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *BaggingRegressor) logger() log.Logger {
	if b.log != nil {
		return b.log
	}
	return log.GetLoggerWithName("ensemble.bagging")
}

func (b *BaggingRegressor) newRand() *rand.Rand {
	if b.src != nil {
		return rand.New(b.src)
	}
	return rand.New(rand.NewPCG(b.randomState, b.randomState))
}

// GenerateSplits draws the bags Fit would draw for X with the configured seed.
// With an injected source the source is advanced.
func (b *BaggingRegressor) GenerateSplits(X mat.Matrix) []Bag {
	n, _ := X.Dims()
	return GenerateSplits(n, b.numBags, b.newRand())
}

// Fit trains one fresh model per bag. factory is called once per bag and
// each model is fitted on the rows its bag selects, in bag order. Any
// previous fit is discarded, including retained OOB data.
func (b *BaggingRegressor) Fit(factory model.Factory, X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "BaggingRegressor.Fit")

	if b.numBags < 1 {
		return errors.NewValidationError("n_estimators", "must be at least 1", b.numBags)
	}
	if factory == nil {
		return errors.NewValidationError("factory", "must not be nil", nil)
	}
	n, p := X.Dims()
	ry, cy := y.Dims()
	if n == 0 || p == 0 {
		return errors.NewModelError("BaggingRegressor.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != n {
		return errors.NewDimensionError("BaggingRegressor.Fit", n, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("BaggingRegressor.Fit", "y must be a column vector")
	}

	b.Reset()
	b.bags, b.models = nil, nil
	b.X, b.y = nil, nil

	logger := b.logger().With(log.ModelNameKey, "BaggingRegressor", log.OperationKey, log.OperationFit)
	fields := []any{
		log.SamplesKey, n,
		log.FeaturesKey, p,
		log.BagsKey, b.numBags,
		"oob", b.oob,
	}
	// 注入されたソースではシードは使われない
	if b.src == nil {
		fields = append(fields, log.RandomSeedKey, b.randomState)
	}
	logger.Debug("Fitting bagging ensemble", fields...)
	start := time.Now()

	bags := GenerateSplits(n, b.numBags, b.newRand())
	if err := validateBags("BaggingRegressor.Fit", bags, n); err != nil {
		logger.Debug("Bag invariant violated", log.ErrAttrKey, err, log.ErrorCodeKey, log.ErrorInvariant)
		return err
	}

	models := make([]model.Model, 0, len(bags))
	for i, bag := range bags {
		m := factory()
		if m == nil {
			return errors.NewValueError("BaggingRegressor.Fit", fmt.Sprintf("factory returned nil model for bag %d", i))
		}
		if err := m.Fit(gatherRows(X, bag), gatherRows(y, bag)); err != nil {
			logger.Debug("Bag fit failed", log.ErrAttrKey, err, log.BagIndexKey, i)
			return errors.Wrapf(err, "fitting bag %d", i)
		}
		models = append(models, m)
	}

	b.bags = bags
	b.models = models
	b.nSamples = n
	b.nFeatures = p
	if b.oob {
		b.X, b.y = X, y
	}
	b.SetFitted()

	logger.Debug("Bagging ensemble fitted",
		log.BagsKey, len(models),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict returns, for every row of X, the unweighted mean of the members'
// predictions as a rows×1 matrix.
func (b *BaggingRegressor) Predict(X mat.Matrix) (pred mat.Matrix, err error) {
	defer errors.Recover(&err, "BaggingRegressor.Predict")

	if !b.IsFitted() {
		return nil, errors.NewNotFittedError("BaggingRegressor", "Predict")
	}
	r, c := X.Dims()
	if r == 0 {
		return nil, errors.NewModelError("BaggingRegressor.Predict", "empty data", errors.ErrEmptyData)
	}
	if c != b.nFeatures {
		return nil, errors.NewDimensionError("BaggingRegressor.Predict", b.nFeatures, c, 1)
	}

	sum := make([]float64, r)
	for i, m := range b.models {
		p, err := m.Predict(X)
		if err != nil {
			return nil, errors.Wrapf(err, "predicting with bag %d", i)
		}
		col, err := predictionColumn("BaggingRegressor.Predict", p, r)
		if err != nil {
			return nil, err
		}
		floats.Add(sum, col)
	}
	floats.Scale(1/float64(len(b.models)), sum)

	return mat.NewDense(r, 1, sum), nil
}

// Score returns the coefficient of determination R² of Predict on X.
func (b *BaggingRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !b.IsFitted() {
		return 0, errors.NewNotFittedError("BaggingRegressor", "Score")
	}
	yPred, err := b.Predict(X)
	if err != nil {
		return 0, err
	}
	ry, cy := y.Dims()
	if r, _ := yPred.Dims(); ry != r {
		return 0, errors.NewDimensionError("BaggingRegressor.Score", r, ry, 0)
	}
	if cy != 1 {
		return 0, errors.NewValueError("BaggingRegressor.Score", "y must be a column vector")
	}
	return metrics.R2Score(metrics.ColumnVector(y), metrics.ColumnVector(yPred))
}

// NumBags returns the configured number of bags.
func (b *BaggingRegressor) NumBags() int {
	return b.numBags
}

// Bags returns the bags of the last fit, in model order.
func (b *BaggingRegressor) Bags() []Bag {
	return b.bags
}

// Models returns the fitted members, one per bag.
func (b *BaggingRegressor) Models() []model.Model {
	return b.models
}

// GetParams returns the hyperparameters under scikit-learn names.
func (b *BaggingRegressor) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"n_estimators": b.numBags,
		"oob_score":    b.oob,
		"random_state": b.randomState,
	}
}

// SetParams updates hyperparameters by scikit-learn name. Unknown names and
// values of the wrong type are rejected and leave the estimator unchanged.
func (b *BaggingRegressor) SetParams(params map[string]interface{}) error {
	next := *b
	for key, value := range params {
		switch key {
		case "n_estimators":
			n, ok := value.(int)
			if !ok {
				return errors.NewValidationError(key, "must be an int", value)
			}
			if n < 1 {
				return errors.NewValidationError(key, "must be at least 1", value)
			}
			next.numBags = n
		case "oob_score":
			oob, ok := value.(bool)
			if !ok {
				return errors.NewValidationError(key, "must be a bool", value)
			}
			next.oob = oob
		case "random_state":
			seed, err := toSeed(key, value)
			if err != nil {
				return err
			}
			next.randomState = seed
			next.src = nil
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	b.numBags, b.oob, b.randomState, b.src = next.numBags, next.oob, next.randomState, next.src
	return nil
}

func toSeed(key string, value interface{}) (uint64, error) {
	switch v := value.(type) {
	case uint64:
		return v, nil
	case int:
		if v < 0 {
			return 0, errors.NewValidationError(key, "must be non-negative", value)
		}
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, errors.NewValidationError(key, "must be non-negative", value)
		}
		return uint64(v), nil
	default:
		return 0, errors.NewValidationError(key, "must be an integer", value)
	}
}
