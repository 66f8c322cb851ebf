// Package infer adapts the on-device image classifier behind a small
// interface: a preprocessed leaf photo in, one raw score per disease out.
package infer

import (
	"context"
	"image"
)

// Classifier produces raw per-disease scores (logits) from a decoded leaf
// image. Implementations own their preprocessing; callers only guarantee a
// decoded image. The returned vector is index-aligned with the label set.
type Classifier interface {
	Classify(ctx context.Context, img image.Image) ([]float32, error)
	Close() error
}
