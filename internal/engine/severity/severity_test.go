package severity

import (
	"testing"

	"github.com/verdant-labs/paddydoc/internal/model"
)

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		label      model.DiseaseLabel
		confidence float64
		want       model.Severity
	}{
		{model.BrownSpot, 0.95, model.SeverityHigh},
		{model.BrownSpot, 0.80, model.SeverityHigh},     // inclusive lower bound
		{model.BrownSpot, 0.7999, model.SeverityModerate},
		{model.BrownSpot, 0.60, model.SeverityModerate}, // inclusive lower bound
		{model.BrownSpot, 0.5999, model.SeverityLow},
		{model.BrownSpot, 0, model.SeverityLow},
		{model.Unknown, 0.99, model.SeverityUnknown}, // confidence ignored
		{model.Unknown, 0, model.SeverityUnknown},
	}

	for _, tt := range tests {
		got := Of(tt.label, tt.confidence)
		if got != tt.want {
			t.Errorf("Of(%v, %v) = %v, want %v", tt.label, tt.confidence, got, tt.want)
		}
	}
}
