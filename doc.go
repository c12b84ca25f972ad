// Package bagpower is a small numeric library in the style of scikit-learn,
// built on gonum. It provides two independent routines:
//
//   - ensemble.BaggingRegressor trains one base regression model per bootstrap
//     resample, predicts the mean of the members and estimates the
//     generalization error from out-of-bag rows.
//   - linalg.PowerMethod estimates the dominant eigenvalue and unit
//     eigenvector of a symmetric matrix by power iteration.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/bagpower/ensemble"
//	    "github.com/YuminosukeSato/bagpower/linalg"
//	    "github.com/YuminosukeSato/bagpower/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})
//
//	    bag := ensemble.NewBaggingRegressor(ensemble.WithNumBags(10), ensemble.WithOOB(true))
//	    if err := bag.Fit(linear.Factory(), X, y); err != nil {
//	        log.Fatal(err)
//	    }
//	    mse, err := bag.OOBScore()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("OOB MSE:", mse)
//
//	    A := mat.NewSymDense(2, []float64{2, 1, 1, 2})
//	    value, vector, err := linalg.DominantEigenPair(A, 50, nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(value, mat.Formatted(vector))
//	}
//
// # Packages
//
//   - core/model: Model, Factory and the fitted-state BaseEstimator
//   - core/parallel: chunked CPU-parallel loops
//   - ensemble: BaggingRegressor, bootstrap splits and out-of-bag scoring
//   - linalg: power iteration
//   - linear: ordinary least squares, the usual base model for bagging
//   - metrics: MSE, RMSE, MAE and R²
//   - viz: gonum/plot diagnostics
//   - pkg/errors: structured errors and warnings over cockroachdb/errors
//   - pkg/log: structured logging backed by zerolog
//
// # Errors
//
// Errors carry stack traces and can be inspected with errors.As:
//
//	var nf *errors.NotFittedError
//	if errors.As(err, &nf) {
//	    // call Fit first
//	}
//
// Conditions that yield a usable but undefined result, such as an OOB score
// with no out-of-bag rows, are reported as warnings through pkg/errors and
// logged by pkg/log instead of being returned.
package bagpower
