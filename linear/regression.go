// Package linear は線形回帰モデルを提供する。
// バギングのベースモデルとしてそのまま model.Factory に渡せる
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/bagpower/core/model"
	"github.com/YuminosukeSato/bagpower/core/parallel"
	"github.com/YuminosukeSato/bagpower/metrics"
	"github.com/YuminosukeSato/bagpower/pkg/errors"
)

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 1000

// rcond は特異値を切り捨てる相対閾値の係数（float64 のマシンイプシロン）
const rcond = 0x1p-52

// LinearRegression は最小二乗法による線形回帰モデル
type LinearRegression struct {
	model.BaseEstimator
	weights   *mat.VecDense // 重み（係数）
	intercept float64       // 切片
	nFeatures int           // 特徴量の数
	rank      int           // 切片列を含む計画行列の実効ランク
}

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Factory は NewLinearRegression を model.Factory として返す
func Factory() model.Factory {
	return func() model.Model { return NewLinearRegression() }
}

// Fit はモデルを訓練データで学習させる。
// 切片列を加えた計画行列の最小二乗問題を特異値分解で解く。
// ランク落ちの場合は最小ノルム解を返し、エラーにはしない
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	lr.Reset()

	// X_with_intercept = [1, X]
	design := mat.NewDense(r, c+1, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			design.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				design.Set(i, j+1, X.At(i, j))
			}
		}
	})

	// 最小ノルム最小二乗解。ブートストラップで行が重複して列がランク落ちしても解ける
	var svd mat.SVD
	if !svd.Factorize(design, mat.SVDThin) {
		return errors.NewModelError("LinearRegression.Fit", "svd failed to converge", errors.ErrSingularMatrix)
	}
	lr.rank = svd.Rank(rcond * float64(max(r, c+1)))
	if lr.rank < 1 {
		return errors.NewModelError("LinearRegression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	var w mat.VecDense
	svd.SolveVecTo(&w, metrics.ColumnVector(y), lr.rank)
	if err := errors.CheckNumericalStability("LinearRegression.Fit", w.RawVector().Data, 0); err != nil {
		return errors.NewModelError("LinearRegression.Fit", "non-finite coefficients", err)
	}

	lr.intercept = w.AtVec(0)
	lr.weights = mat.NewVecDense(c, nil)
	lr.weights.CopyVec(w.SliceVec(1, c+1))
	lr.nFeatures = c

	lr.SetFitted()
	return nil
}

// Predict は y = X w + b を n×1 行列で返す
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if r == 0 {
		return nil, errors.NewModelError("LinearRegression.Predict", "empty data", errors.ErrEmptyData)
	}
	if c != lr.nFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.nFeatures, c, 1)
	}

	pred := mat.NewVecDense(r, nil)
	pred.MulVec(X, lr.weights)
	for i := 0; i < r; i++ {
		pred.SetVec(i, pred.AtVec(i)+lr.intercept)
	}
	return mat.NewDense(r, 1, pred.RawVector().Data), nil
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}
	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(metrics.ColumnVector(y), metrics.ColumnVector(yPred))
}

// Weights は学習された重み（係数）のコピーを返す
func (lr *LinearRegression) Weights() []float64 {
	if lr.weights == nil {
		return nil
	}
	return mat.Col(nil, 0, lr.weights)
}

// Rank は切片列を含む計画行列の実効ランクを返す。
// 特徴量数+1 より小さければ係数は最小ノルム解
func (lr *LinearRegression) Rank() int {
	return lr.rank
}

// Intercept は学習された切片を返す
func (lr *LinearRegression) Intercept() float64 {
	return lr.intercept
}
