package model

import "time"

// Severity expresses how urgently a diagnosed condition needs attention.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityLow
	SeverityModerate
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "High"
	case SeverityModerate:
		return "Moderate"
	case SeverityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// Diagnosis is the pipeline's output record. Immutable once constructed;
// the caller owns it after return.
type Diagnosis struct {
	Label           DiseaseLabel
	Confidence      float64 // calibrated top probability after gating, in [0,1]
	Severity        Severity
	Description     string
	Recommendations []string
	Synthetic       bool // true when no real inference backed this result
	Timestamp       time.Time
}
