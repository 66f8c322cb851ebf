package paddydoc

import "time"

// Diagnosis is a completed disease assessment for one leaf photo.
// This is the stable public type — internal representations may evolve
// independently without breaking consumers.
type Diagnosis struct {
	Label           string    `json:"label"`                // Disease name, or "Unknown" below the confidence gate
	Confidence      float64   `json:"confidence"`           // Calibrated probability in [0,1]; 0 when gated to Unknown
	Severity        string    `json:"severity"`             // High, Moderate, Low, or Unknown
	Description     string    `json:"description"`          // Human-readable disease description
	Recommendations []string  `json:"recommendations"`      // Remediation steps, most important first; never empty
	Synthetic       bool      `json:"synthetic,omitempty"`  // True when no real inference backed this result
	Timestamp       time.Time `json:"timestamp"`            // When the diagnosis was produced (UTC)
}
