// Package severity maps a gated diagnosis onto an urgency tier.
package severity

import "github.com/verdant-labs/paddydoc/internal/model"

// Tier thresholds, inclusive at the lower bound.
const (
	HighMin     = 0.80
	ModerateMin = 0.60
)

// Of returns the severity tier for a label and its gated confidence.
// Pure function: an Unknown label is always SeverityUnknown regardless of
// confidence; otherwise the tier follows the confidence thresholds.
func Of(label model.DiseaseLabel, confidence float64) model.Severity {
	if label == model.Unknown {
		return model.SeverityUnknown
	}
	switch {
	case confidence >= HighMin:
		return model.SeverityHigh
	case confidence >= ModerateMin:
		return model.SeverityModerate
	default:
		return model.SeverityLow
	}
}
