package ensemble

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/bagpower/metrics"
	"github.com/YuminosukeSato/bagpower/pkg/errors"
	"github.com/YuminosukeSato/bagpower/pkg/log"
)

// OOBPrediction is the out-of-bag prediction for one training row. Valid is
// false when the row occurred in every bag, in which case Value is meaningless.
type OOBPrediction struct {
	Value float64 // mean of the predictions of members that did not see the row
	Count int     // number of members that did not see the row
	Valid bool
}

// OOBPredictions computes, for each training row, the mean prediction of the
// members whose bag excluded that row. The table is rebuilt on every call.
func (b *BaggingRegressor) OOBPredictions() (out []OOBPrediction, err error) {
	defer errors.Recover(&err, "BaggingRegressor.OOBPredictions")

	if !b.IsFitted() {
		return nil, errors.NewNotFittedError("BaggingRegressor", "OOBPredictions")
	}
	if !b.oob || b.X == nil || b.y == nil {
		return nil, errors.NewValueError("BaggingRegressor.OOBPredictions",
			"training data was not retained; construct with WithOOB(true) and refit")
	}

	n := b.nSamples
	perRow := make([][]float64, n)
	for k, bag := range b.bags {
		rows := OutOfBag(bag, n)
		if len(rows) == 0 {
			continue
		}
		p, err := b.models[k].Predict(gatherRows(b.X, rows))
		if err != nil {
			return nil, errors.Wrapf(err, "out-of-bag prediction with bag %d", k)
		}
		col, err := predictionColumn("BaggingRegressor.OOBPredictions", p, len(rows))
		if err != nil {
			return nil, err
		}
		for j, row := range rows {
			perRow[row] = append(perRow[row], col[j])
		}
	}

	out = make([]OOBPrediction, n)
	for i, preds := range perRow {
		if len(preds) == 0 {
			continue
		}
		out[i] = OOBPrediction{Value: stat.Mean(preds, nil), Count: len(preds), Valid: true}
	}
	return out, nil
}

// OOBScore returns the mean squared error between the targets and the
// out-of-bag predictions, over the rows that have one. Rows that occurred in
// every bag are skipped. When no row qualifies the score is NaN and an
// UndefinedMetricWarning is emitted.
func (b *BaggingRegressor) OOBScore() (float64, error) {
	preds, err := b.OOBPredictions()
	if err != nil {
		return 0, err
	}

	yTrue := make([]float64, 0, len(preds))
	yHat := make([]float64, 0, len(preds))
	for i, p := range preds {
		if !p.Valid {
			continue
		}
		yTrue = append(yTrue, b.y.At(i, 0))
		yHat = append(yHat, p.Value)
	}

	logger := b.logger().With(log.ModelNameKey, "BaggingRegressor", log.OperationKey, log.OperationOOB)
	if len(yTrue) == 0 {
		score := math.NaN()
		errors.Warn(errors.NewUndefinedMetricWarning("oob_score",
			"every training row occurred in every bag", score))
		return score, nil
	}

	score, err := metrics.MSEMatrix(mat.NewDense(len(yTrue), 1, yTrue), mat.NewDense(len(yHat), 1, yHat))
	if err != nil {
		return 0, err
	}
	logger.Debug("OOB score computed",
		log.LossKey, score,
		log.OOBSamplesKey, len(yTrue),
		log.SamplesKey, len(preds),
	)
	return score, nil
}
