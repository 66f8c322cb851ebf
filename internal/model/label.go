package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DiseaseLabel identifies one entry in the closed set of rice leaf
// conditions the pipeline can report. The real labels are index-aligned
// with the classifier's output vector; Unknown and Error are synthetic
// labels produced only by the pipeline itself.
type DiseaseLabel int

const (
	BacterialLeafBlight DiseaseLabel = iota
	BrownSpot
	LeafBlast
	SheathBlight
	Tungro

	// Unknown is reported when the confidence gate rejects a prediction.
	Unknown
	// Error is reserved for collaborators rendering failure states.
	// The pipeline never places it in a Diagnosis.
	Error
)

// NumClasses is the width of the classifier's output vector. A model that
// emits a different number of scores cannot serve this label set.
const NumClasses = 5

var displayNames = [...]string{
	BacterialLeafBlight: "Bacterial Leaf Blight",
	BrownSpot:           "Brown Spot",
	LeafBlast:           "Leaf Blast",
	SheathBlight:        "Sheath Blight",
	Tungro:              "Tungro",
	Unknown:             "Unknown",
	Error:               "Error",
}

// String returns the label's display name.
func (l DiseaseLabel) String() string {
	if l < 0 || int(l) >= len(displayNames) {
		return "Unknown"
	}
	return displayNames[l]
}

// Real reports whether the label is one the classifier can actually emit,
// as opposed to the synthetic Unknown/Error labels.
func (l DiseaseLabel) Real() bool {
	return l >= 0 && l < NumClasses
}

// RealLabels returns the classifier's label set in output-vector order.
func RealLabels() []DiseaseLabel {
	labels := make([]DiseaseLabel, NumClasses)
	for i := range labels {
		labels[i] = DiseaseLabel(i)
	}
	return labels
}

var labelKeys = func() map[string]DiseaseLabel {
	m := make(map[string]DiseaseLabel, len(displayNames))
	for i, name := range displayNames {
		m[normalizeKey(name)] = DiseaseLabel(i)
	}
	return m
}()

// ParseLabel resolves a free-form disease name to its label. Matching
// ignores case, spacing, hyphens, and underscores, so "brown_spot",
// "BROWN SPOT", and "Brown Spot" all resolve to BrownSpot.
func ParseLabel(s string) (DiseaseLabel, bool) {
	l, ok := labelKeys[normalizeKey(s)]
	return l, ok
}

// normalizeKey produces the canonical lookup key for a disease name:
// NFKC-normalized, lowercased, with separators stripped.
func normalizeKey(s string) string {
	s = strings.ToLower(norm.NFKC.String(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '_', '-':
			return -1
		}
		return r
	}, s)
}
