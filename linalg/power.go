// Package linalg は対称行列の固有値計算を提供する。
//
// PowerMethod はべき乗法で絶対値最大の固有値とその単位固有ベクトルを推定する:
//
//	pm := linalg.NewPowerMethod(100, linalg.WithSeed(7))
//	pair, err := pm.Estimate(A)
//	fmt.Println(pair.Value, pair.Vector)
//
// 収束判定は行わず、指定したステップ数だけ反復する。
package linalg

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/bagpower/pkg/errors"
	"github.com/YuminosukeSato/bagpower/pkg/log"
)

const defaultSeed = 42

// EigenPair はべき乗法の推定結果
type EigenPair struct {
	// Value は最終ベクトルのレイリー商 (v·Mv)/(v·v)
	Value float64
	// Vector は L2 ノルム 1 の固有ベクトル推定値
	Vector *mat.VecDense
	// History は各ステップ後のレイリー商。WithHistory(true) のときのみ記録される
	History []float64
}

// PowerMethod はべき乗法による固有値推定器
type PowerMethod struct {
	numSteps int
	seed     uint64
	src      rand.Source
	history  bool
	log      log.Logger
}

// NewPowerMethod は numSteps 回反復する推定器を作成する。デフォルトのシードは 42
func NewPowerMethod(numSteps int, opts ...PowerOption) *PowerMethod {
	pm := &PowerMethod{
		numSteps: numSteps,
		seed:     defaultSeed,
	}
	for _, opt := range opts {
		opt(pm)
	}
	return pm
}

// NumSteps は反復回数を返す
func (pm *PowerMethod) NumSteps() int {
	return pm.numSteps
}

func (pm *PowerMethod) logger() log.Logger {
	if pm.log != nil {
		return pm.log
	}
	return log.GetLoggerWithName("linalg.power")
}

func (pm *PowerMethod) source() rand.Source {
	if pm.src != nil {
		return pm.src
	}
	return rand.NewPCG(pm.seed, pm.seed)
}

// Estimate は対称行列 M の支配的な固有対を推定する。
//
// 初期ベクトルは [0,1) の一様乱数を正規化したもので、v ← Mv/‖Mv‖ を
// ちょうど numSteps 回繰り返す。numSteps が 0 なら初期ベクトルのレイリー商を返す。
//
// 零行列のように Mv が零ベクトルになる場合、結果は NaN のまま返される。
// エラーにはならず、NumericalInstabilityError が警告として errors.Warn に送られる。
func (pm *PowerMethod) Estimate(M mat.Matrix) (pair EigenPair, err error) {
	defer errors.Recover(&err, "PowerMethod.Estimate")

	if pm.numSteps < 0 {
		return EigenPair{}, errors.NewValidationError("num_steps", "must be non-negative", pm.numSteps)
	}
	r, c := M.Dims()
	if r == 0 || c == 0 {
		return EigenPair{}, errors.NewValueError("PowerMethod.Estimate", "empty matrix")
	}
	if r != c {
		return EigenPair{}, errors.NewDimensionError("PowerMethod.Estimate", r, c, 1)
	}

	start := time.Now()
	v := initialVector(r, pm.source())

	var history []float64
	if pm.history {
		history = make([]float64, 0, pm.numSteps)
	}

	var w mat.VecDense
	for step := 0; step < pm.numSteps; step++ {
		w.MulVec(M, v)
		// ‖w‖ = 0 のときは 1/0 = +Inf により NaN が伝播する
		v.ScaleVec(1/mat.Norm(&w, 2), &w)
		if pm.history {
			history = append(history, rayleigh(M, v))
		}
	}

	value := rayleigh(M, v)
	if err := errors.CheckVector(log.OperationEigen, v, pm.numSteps); err != nil {
		errors.Warn(err)
	} else if err := errors.CheckScalar(log.OperationEigen, value, pm.numSteps); err != nil {
		errors.Warn(err)
	}

	pm.logger().Debug("Power iteration finished",
		log.OperationKey, log.OperationEigen,
		log.StepsKey, pm.numSteps,
		log.DimensionKey, r,
		log.EigenvalueKey, value,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return EigenPair{Value: value, Vector: v, History: history}, nil
}

// DominantEigenPair は M の支配的な固有値と単位固有ベクトルを numSteps 回の
// べき乗法で推定する。src が nil のときはシード 42 の PCG を使う
func DominantEigenPair(M mat.Matrix, numSteps int, src rand.Source) (float64, *mat.VecDense, error) {
	pair, err := NewPowerMethod(numSteps, WithSource(src)).Estimate(M)
	if err != nil {
		return 0, nil, err
	}
	return pair.Value, pair.Vector, nil
}

// initialVector は [0,1) の一様乱数からなる単位ベクトルを返す
func initialVector(n int, src rand.Source) *mat.VecDense {
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	v := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v.SetVec(i, u.Rand())
	}
	v.ScaleVec(1/mat.Norm(v, 2), v)
	return v
}

// rayleigh はレイリー商 (v·Mv)/(v·v) を返す
func rayleigh(M mat.Matrix, v *mat.VecDense) float64 {
	var mv mat.VecDense
	mv.MulVec(M, v)
	return mat.Dot(v, &mv) / mat.Dot(v, v)
}
