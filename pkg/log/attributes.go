// Standard attribute keys for structured logs. Keys are dotted
// ("model.name", "data.samples") so that log pipelines can filter on prefixes.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of estimator, e.g. "BaggingRegressor".
	ModelNameKey = "model.name"

	// OperationKey is the operation being performed: "fit", "predict", "score"...
	OperationKey = "ml.operation"

	// ComponentKey is the package or named logger emitting the record.
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the model lifecycle.
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"
	TargetsKey  = "data.targets"
)

// Performance and metric values.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records a loss or error value such as the OOB mean squared error.
	LossKey = "metrics.loss"

	// R2ScoreKey records the coefficient of determination for regression.
	R2ScoreKey = "metrics.r2_score"

	// IterationKey records the current iteration of an iterative algorithm.
	IterationKey = "training.iteration"
)

// Ensemble and eigen solver context.
const (
	// BagsKey is the number of bootstrap bags in an ensemble.
	BagsKey = "ensemble.bags"

	// BagIndexKey identifies one bag / ensemble member.
	BagIndexKey = "ensemble.bag_index"

	// OOBSamplesKey is the number of training rows that received at least one
	// out-of-bag prediction.
	OOBSamplesKey = "ensemble.oob_samples"

	// StepsKey is the number of power iteration steps.
	StepsKey = "eigen.steps"

	// EigenvalueKey is the estimated dominant eigenvalue.
	EigenvalueKey = "eigen.value"

	// DimensionKey is the order of the square matrix.
	DimensionKey = "eigen.dimension"
)

// Error context.
const (
	ErrorCodeKey  = "error.code"
	ErrorTypeKey  = "error.type"
	SuggestionKey = "error.suggestion"
)

// Configuration.
const (
	// HyperParamsKey contains model hyperparameters as a structured object.
	HyperParamsKey = "model.hyperparams"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationOOB     = "oob_score"
	OperationEigen   = "power_iteration"

	PhaseTraining   = "training"
	PhaseValidation = "validation"
	PhaseInference  = "inference"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorInvariant         = "INVARIANT_VIOLATED"
	ErrorNumerical         = "NUMERICAL_INSTABILITY"
)
