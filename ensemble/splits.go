package ensemble

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/bagpower/pkg/errors"
)

// Bag is one bootstrap resample: row indices into the training set, drawn
// with replacement. Indices may repeat and some rows may be absent.
type Bag []int

// GenerateSplits draws numBags bags of n indices each, uniformly from [0, n)
// with replacement.
func GenerateSplits(n, numBags int, rng *rand.Rand) []Bag {
	bags := make([]Bag, numBags)
	for k := range bags {
		bag := make(Bag, n)
		for i := range bag {
			bag[i] = rng.IntN(n)
		}
		bags[k] = bag
	}
	return bags
}

// OutOfBag returns the rows of [0, n) that do not occur in bag, in ascending
// order.
func OutOfBag(bag Bag, n int) []int {
	seen := make([]bool, n)
	for _, idx := range bag {
		seen[idx] = true
	}
	oob := make([]int, 0, n)
	for i, in := range seen {
		if !in {
			oob = append(oob, i)
		}
	}
	return oob
}

// validateBags checks the bag invariants: identical lengths, length n and
// indices inside [0, n).
func validateBags(op string, bags []Bag, n int) error {
	if len(bags) == 0 {
		return nil
	}
	want := len(bags[0])
	for i, bag := range bags {
		if len(bag) != want {
			return errors.NewInvariantError(op, "all bags have the same length",
				fmt.Sprintf("bag %d has %d indices, bag 0 has %d", i, len(bag), want))
		}
	}
	if want != n {
		return errors.NewInvariantError(op, "every bag contains len(data) indices",
			fmt.Sprintf("bags have %d indices, dataset has %d rows", want, n))
	}
	for i, bag := range bags {
		for _, idx := range bag {
			if idx < 0 || idx >= n {
				return errors.NewInvariantError(op, "bag indices lie in [0, len(data))",
					fmt.Sprintf("bag %d contains index %d", i, idx))
			}
		}
	}
	return nil
}

// gatherRows copies the rows of m selected by idx into a new len(idx)×cols
// matrix. idx must not be empty.
func gatherRows(m mat.Matrix, idx []int) *mat.Dense {
	_, c := m.Dims()
	out := mat.NewDense(len(idx), c, nil)
	row := make([]float64, c)
	for i, r := range idx {
		mat.Row(row, r, m)
		out.SetRow(i, row)
	}
	return out
}

// predictionColumn checks that a model returned rows×1 predictions and
// copies them out.
func predictionColumn(op string, pred mat.Matrix, rows int) ([]float64, error) {
	if pred == nil {
		return nil, errors.NewValueError(op, "model returned nil predictions")
	}
	r, c := pred.Dims()
	if r != rows {
		return nil, errors.NewDimensionError(op, rows, r, 0)
	}
	if c != 1 {
		return nil, errors.NewDimensionError(op, 1, c, 1)
	}
	return mat.Col(nil, 0, pred), nil
}
