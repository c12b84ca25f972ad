package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる。y は n×1 の列ベクトル
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データの各行に対する予測を k×1 の行列で返す
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Model は教師あり回帰モデルの基本インターフェース。
// アンサンブルのベースモデルはこのインターフェースを満たせばよい
type Model interface {
	Fitter
	Predictor
}

// Factory は未学習の新しいモデルを生成する関数。
// アンサンブルはバッグごとに一度ずつ呼び出すので、毎回別のインスタンスを返すこと
type Factory func() Model
