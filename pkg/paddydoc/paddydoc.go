package paddydoc

import (
	"context"
	"fmt"
	"os"

	"github.com/verdant-labs/paddydoc/internal/engine"
	"github.com/verdant-labs/paddydoc/internal/engine/infer"
	"github.com/verdant-labs/paddydoc/internal/engine/knowledge"
	"github.com/verdant-labs/paddydoc/internal/engine/scorer"
	"github.com/verdant-labs/paddydoc/internal/engine/synthetic"
	"github.com/verdant-labs/paddydoc/internal/manager"
	"github.com/verdant-labs/paddydoc/internal/model"
)

// Predictor is the single entry point for obtaining a disease diagnosis
// from a rice leaf photo. Safe for concurrent use — create once, reuse
// across requests, and Close when done.
type Predictor struct {
	manager *manager.Manager
	engine  *engine.Engine
}

// New creates a Predictor. The model itself is loaded lazily on the first
// Predict call (or when EnsureLoaded is called explicitly), so New is
// cheap and never fails on a missing model artifact.
func New(opts ...Option) (*Predictor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.confidenceGate < 0 || o.confidenceGate > 1 {
		return nil, fmt.Errorf("paddydoc: confidence gate %v outside [0,1]", o.confidenceGate)
	}

	mgr := manager.New(func(ctx context.Context) (infer.Classifier, error) {
		if _, err := os.Stat(o.modelPath); err != nil {
			return nil, fmt.Errorf("paddydoc: %v: %w", err, model.ErrModelAssetMissing)
		}
		cls, err := infer.NewONNX(o.modelPath, o.ortLibPath)
		if err != nil {
			return nil, fmt.Errorf("paddydoc: %v: %w", err, model.ErrModelLoadFailed)
		}
		return cls, nil
	})

	eng := engine.New(mgr, scorer.New(o.confidenceGate), knowledge.New(), synthetic.New(o.randSrc))

	return &Predictor{manager: mgr, engine: eng}, nil
}

// Predict diagnoses the rice leaf photographed at imagePath. An unreadable
// or undecodable image returns ErrImageUnavailable; model and inference
// failures never fail the call and instead yield a Diagnosis flagged
// Synthetic.
func (p *Predictor) Predict(ctx context.Context, imagePath string) (Diagnosis, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return Diagnosis{}, fmt.Errorf("paddydoc: read %s (%v): %w", imagePath, err, ErrImageUnavailable)
	}
	return p.PredictBytes(ctx, data)
}

// PredictBytes diagnoses an encoded JPEG or PNG leaf photo held in memory.
func (p *Predictor) PredictBytes(ctx context.Context, data []byte) (Diagnosis, error) {
	img, err := infer.Decode(data)
	if err != nil {
		return Diagnosis{}, fmt.Errorf("paddydoc: %w", err)
	}

	d, err := p.engine.Diagnose(ctx, img)
	if err != nil {
		return Diagnosis{}, fmt.Errorf("paddydoc: %w", err)
	}
	return diagnosisFromInternal(d), nil
}

// EnsureLoaded eagerly brings the model into a servable state and reports
// whether real inference is available (true) or the predictor is in
// synthetic mode (false). Calling it is optional — Predict does the same
// lazily.
func (p *Predictor) EnsureLoaded(ctx context.Context) bool {
	return p.manager.EnsureLoaded(ctx) == model.StateReady
}

// State returns the model lifecycle state as a string: unloaded, loading,
// ready, failed, or mock-ready.
func (p *Predictor) State() string {
	return p.manager.State().String()
}

// Close releases model resources. The predictor may be reused afterwards;
// the next Predict triggers a fresh load attempt (this is also the
// explicit way to retry a real load after degrading to synthetic mode).
func (p *Predictor) Close() error {
	return p.manager.Close()
}

// Labels returns the diagnosable disease names in classifier output order.
func Labels() []string {
	labels := model.RealLabels()
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.String()
	}
	return names
}

// diagnosisFromInternal converts the internal record to the public type.
func diagnosisFromInternal(d model.Diagnosis) Diagnosis {
	return Diagnosis{
		Label:           d.Label.String(),
		Confidence:      d.Confidence,
		Severity:        d.Severity.String(),
		Description:     d.Description,
		Recommendations: d.Recommendations,
		Synthetic:       d.Synthetic,
		Timestamp:       d.Timestamp,
	}
}
