package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		err     error
		wantMsg string
	}{
		{
			name:    "with original error",
			op:      "Fit",
			kind:    "invalid input",
			err:     fmt.Errorf("test error"),
			wantMsg: "bagpower: Fit: invalid input: test error",
		},
		{
			name:    "without original error",
			op:      "Predict",
			kind:    "not fitted",
			err:     nil,
			wantMsg: "bagpower: Predict: not fitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Predict", 3, 2, 1)

	want := "bagpower: Predict: dimension mismatch on axis 1 (features). Expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Fatal("Error should be castable to *DimensionError")
	}
	if dimErr.Expected != 3 || dimErr.Got != 2 {
		t.Errorf("unexpected fields: %+v", dimErr)
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("BaggingRegressor", "Predict")

	want := "bagpower: BaggingRegressor: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("n_estimators", "must be at least 1", 0)

	want := "bagpower: validation failed for parameter 'n_estimators': must be at least 1 (got: 0)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("OOBScore", "oob scoring was not enabled")

	if err.Error() != "bagpower: OOBScore: oob scoring was not enabled" {
		t.Errorf("Error() = %v", err.Error())
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestNewInvariantError(t *testing.T) {
	tests := []struct {
		name    string
		detail  string
		wantMsg string
	}{
		{
			name:    "with detail",
			detail:  "bag 2 has 4 indices, want 5",
			wantMsg: "bagpower: Fit: invariant violated: bag size equals dataset size (bag 2 has 4 indices, want 5)",
		},
		{
			name:    "without detail",
			wantMsg: "bagpower: Fit: invariant violated: bag size equals dataset size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInvariantError("Fit", "bag size equals dataset size", tt.detail)
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			var invErr *InvariantError
			if !As(err, &invErr) {
				t.Error("Error should be castable to *InvariantError")
			}
		})
	}
}

func TestUndefinedMetricWarning(t *testing.T) {
	w := NewUndefinedMetricWarning("oob_score", "no out-of-bag samples", math.NaN())

	if !strings.Contains(w.Error(), "'oob_score' is ill-defined") {
		t.Errorf("unexpected message: %s", w.Error())
	}
}

func TestWarnUsesRegisteredHandlers(t *testing.T) {
	var got []error
	SetZerologWarnFunc(nil)
	SetWarningHandler(func(w error) { got = append(got, w) })
	t.Cleanup(func() {
		SetWarningHandler(func(w error) {})
	})

	Warn(NewUndefinedMetricWarning("mse", "empty", 0))
	if len(got) != 1 {
		t.Fatalf("expected 1 warning via handler, got %d", len(got))
	}

	var viaZerolog int
	SetZerologWarnFunc(func(error) { viaZerolog++ })
	t.Cleanup(func() { SetZerologWarnFunc(nil) })

	Warn(NewUndefinedMetricWarning("mse", "empty", 0))
	if viaZerolog != 1 || len(got) != 1 {
		t.Errorf("zerolog hook should take precedence: hook=%d handler=%d", viaZerolog, len(got))
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrEmptyData, "in BaggingRegressor.Predict")

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in BaggingRegressor.Predict") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "in %s: expected %d, got %d", "Predict", 10, 5)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	expectedMsg := "in Predict: expected 10, got 5"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestErrorChaining(t *testing.T) {
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := NewModelError("Operation", "failed", err2)

	if !strings.Contains(err3.Error(), "base error") {
		t.Error("Expected error chain to contain base error")
	}

	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected detailed error to contain stack trace")
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("op", []float64{1, 2, 3}, 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckScalar("op", math.Inf(1), 3); err == nil {
		t.Error("expected error for +Inf")
	}

	v := mat.NewVecDense(3, []float64{1, math.NaN(), 2})
	err := CheckVector("power_iteration", v, 7)
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatalf("expected NumericalInstabilityError, got %v", err)
	}
	if numErr.Iteration != 7 || len(numErr.Values) != 1 {
		t.Errorf("unexpected fields: %+v", numErr)
	}
	if err := CheckVector("power_iteration", mat.NewVecDense(2, []float64{0, 1}), 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
