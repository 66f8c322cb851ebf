package paddydoc

import "github.com/verdant-labs/paddydoc/internal/model"

// Sentinel errors, usable with errors.Is. Only ErrImageUnavailable and
// contract violations (ErrEmptyScores, ErrLabelMismatch) ever reach
// callers; model and inference failures degrade to synthetic results
// instead of surfacing.
var (
	ErrImageUnavailable  = model.ErrImageUnavailable
	ErrModelAssetMissing = model.ErrModelAssetMissing
	ErrModelLoadFailed   = model.ErrModelLoadFailed
	ErrInferenceFailed   = model.ErrInferenceFailed
	ErrEmptyScores       = model.ErrEmptyScores
	ErrLabelMismatch     = model.ErrLabelMismatch
)
