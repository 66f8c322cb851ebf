// Package engine orchestrates the diagnosis pipeline: ensure the model is
// servable, obtain scores (real or synthetic), calibrate and gate them,
// tier the severity, and enrich from the knowledge base.
package engine

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/verdant-labs/paddydoc/internal/engine/knowledge"
	"github.com/verdant-labs/paddydoc/internal/engine/scorer"
	"github.com/verdant-labs/paddydoc/internal/engine/severity"
	"github.com/verdant-labs/paddydoc/internal/engine/synthetic"
	"github.com/verdant-labs/paddydoc/internal/manager"
	"github.com/verdant-labs/paddydoc/internal/model"
)

// Engine assembles a Diagnosis from one leaf image.
type Engine struct {
	manager *manager.Manager
	scorer  *scorer.Processor
	know    *knowledge.Base
	synth   *synthetic.Generator
}

// New creates an Engine with the provided components.
func New(mgr *manager.Manager, sc *scorer.Processor, kb *knowledge.Base, gen *synthetic.Generator) *Engine {
	return &Engine{
		manager: mgr,
		scorer:  sc,
		know:    kb,
		synth:   gen,
	}
}

// Diagnose runs the full pipeline over a decoded leaf image. Model and
// inference failures never surface: they degrade to a synthetic result
// flagged on the Diagnosis. Only caller faults (cancelled context,
// malformed engine output contract) return an error.
func (e *Engine) Diagnose(ctx context.Context, img image.Image) (model.Diagnosis, error) {
	state := e.manager.EnsureLoaded(ctx)

	scores, syntheticUsed, err := e.obtainScores(ctx, state, img)
	if err != nil {
		return model.Diagnosis{}, err
	}

	ranked, err := e.scorer.Process(scores)
	if err != nil {
		return model.Diagnosis{}, fmt.Errorf("engine: %w", err)
	}

	return model.Diagnosis{
		Label:           ranked.Label,
		Confidence:      ranked.Confidence,
		Severity:        severity.Of(ranked.Label, ranked.Confidence),
		Description:     e.know.Describe(ranked.Label),
		Recommendations: e.know.Recommend(ranked.Label),
		Synthetic:       syntheticUsed,
		Timestamp:       time.Now().UTC(),
	}, nil
}

// obtainScores returns a real score vector when the model is Ready, or a
// synthetic one in mock mode. A per-call inference failure while Ready
// also falls back to synthetic scores rather than failing the request;
// the fallback is logged so it is never indistinguishable from a real
// prediction.
func (e *Engine) obtainScores(ctx context.Context, state model.ModelState, img image.Image) ([]float32, bool, error) {
	if state != model.StateReady {
		return e.synth.Scores(), true, nil
	}

	cls := e.manager.Classifier()
	scores, err := cls.Classify(ctx, img)
	if err == nil && len(scores) == 0 {
		err = model.ErrEmptyScores
	}
	if err != nil {
		// Caller-initiated abandonment is the caller's fault, not the
		// model's; everything else is absorbed into a degraded result.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, false, err
		}
		slog.Warn("inference failed, serving synthetic result for this call", "error", err)
		return e.synth.Scores(), true, nil
	}
	return scores, false, nil
}
