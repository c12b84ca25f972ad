package ensemble

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// constModel predicts a fixed value for every row.
type constModel struct {
	value  float64
	fitted bool
}

func (m *constModel) Fit(X, y mat.Matrix) error {
	m.fitted = true
	return nil
}

func (m *constModel) Predict(X mat.Matrix) (mat.Matrix, error) {
	r, _ := X.Dims()
	out := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		out.Set(i, 0, m.value)
	}
	return out, nil
}

// echoModel predicts the first feature of each row.
type echoModel struct{}

func (echoModel) Fit(X, y mat.Matrix) error { return nil }

func (echoModel) Predict(X mat.Matrix) (mat.Matrix, error) {
	r, _ := X.Dims()
	return mat.NewDense(r, 1, mat.Col(nil, 0, X)), nil
}

// meanModel predicts the mean target of the rows it was trained on.
type meanModel struct {
	mean float64
	rows int
}

func (m *meanModel) Fit(X, y mat.Matrix) error {
	m.rows, _ = y.Dims()
	m.mean = stat.Mean(mat.Col(nil, 0, y), nil)
	return nil
}

func (m *meanModel) Predict(X mat.Matrix) (mat.Matrix, error) {
	r, _ := X.Dims()
	out := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		out.Set(i, 0, m.mean)
	}
	return out, nil
}

// failingModel returns err from Fit.
type failingModel struct{ err error }

func (m failingModel) Fit(X, y mat.Matrix) error { return m.err }

func (m failingModel) Predict(X mat.Matrix) (mat.Matrix, error) { return nil, m.err }

// panickingModel panics from Fit.
type panickingModel struct{}

func (panickingModel) Fit(X, y mat.Matrix) error { panic("boom") }

func (panickingModel) Predict(X mat.Matrix) (mat.Matrix, error) { return nil, nil }

// wideModel returns two prediction columns.
type wideModel struct{}

func (wideModel) Fit(X, y mat.Matrix) error { return nil }

func (wideModel) Predict(X mat.Matrix) (mat.Matrix, error) {
	r, _ := X.Dims()
	return mat.NewDense(r, 2, nil), nil
}

// linearData returns X (n×1, x_i = i) and y = 2x + 1.
func linearData(n int) (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(n, 1, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		y.Set(i, 0, 2*float64(i)+1)
	}
	return X, y
}
