package paddydoc

import (
	"math/rand"

	"github.com/verdant-labs/paddydoc/internal/engine/scorer"
)

type options struct {
	modelPath      string
	ortLibPath     string
	confidenceGate float64
	randSrc        rand.Source
}

// Option configures a Predictor.
type Option func(*options)

// WithModelPath sets the path of the ONNX model artifact.
// Default: models/rice_leaf.onnx.
func WithModelPath(path string) Option {
	return func(o *options) {
		o.modelPath = path
	}
}

// WithORTLibrary sets the path of the ONNX Runtime shared library.
// Default: libonnxruntime.so next to the model artifact.
func WithORTLibrary(path string) Option {
	return func(o *options) {
		o.ortLibPath = path
	}
}

// WithConfidenceGate sets the minimum calibrated top probability for a
// definite diagnosis. Below it the result is Unknown. Default: 0.70.
func WithConfidenceGate(gate float64) Option {
	return func(o *options) {
		o.confidenceGate = gate
	}
}

// WithRandSource sets the randomness source used for synthetic
// degraded-mode predictions. Pass a fixed-seed source in tests for
// deterministic output. Default: a crypto-seeded source.
func WithRandSource(src rand.Source) Option {
	return func(o *options) {
		o.randSrc = src
	}
}

func defaultOptions() options {
	return options{
		modelPath:      "models/rice_leaf.onnx",
		confidenceGate: scorer.DefaultGate,
	}
}
