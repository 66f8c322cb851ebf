package model

import "errors"

var (
	// ErrImageUnavailable indicates the caller-supplied image cannot be
	// read or decoded. This is a caller-input problem and the only
	// user-visible failure with a retry action.
	ErrImageUnavailable = errors.New("image unavailable")

	// ErrModelAssetMissing indicates the model artifact is not retrievable.
	// Absorbed internally; triggers permanent degraded mode.
	ErrModelAssetMissing = errors.New("model asset missing")

	// ErrModelLoadFailed indicates the engine could not be constructed
	// from a retrievable artifact. Absorbed like ErrModelAssetMissing.
	ErrModelLoadFailed = errors.New("model load failed")

	// ErrInferenceFailed indicates a single inference call failed while
	// the model was Ready. Absorbed into a synthetic result for that call.
	ErrInferenceFailed = errors.New("inference failed")

	// ErrEmptyScores indicates an engine produced an empty score vector.
	// From the built-in engine it is treated as ErrInferenceFailed; from a
	// caller-supplied vector it is a contract violation and propagates.
	ErrEmptyScores = errors.New("empty score vector")

	// ErrLabelMismatch indicates the model's output width disagrees with
	// the label set. This is a fatal configuration error.
	ErrLabelMismatch = errors.New("model output does not match label set")
)
