// Package knowledge holds the static disease fact table: per-disease
// descriptions and ordered remediation recommendations.
package knowledge

import "github.com/verdant-labs/paddydoc/internal/model"

// Base answers description and remediation lookups. Read-only after
// construction; safe for concurrent use without locking.
type Base struct{}

// New returns the built-in knowledge base.
func New() *Base {
	return &Base{}
}

// Describe returns the human-readable description for a label. Labels
// outside the catalog (including Unknown) get the generic fallback.
func (b *Base) Describe(label model.DiseaseLabel) string {
	if e, ok := catalog[label]; ok {
		return e.description
	}
	return fallback.description
}

// Recommend returns remediation steps for a label, most important first.
// Never empty: unrecognized labels get the generic fallback list, since
// the result renderer always shows at least one recommendation line.
func (b *Base) Recommend(label model.DiseaseLabel) []string {
	e, ok := catalog[label]
	if !ok {
		e = fallback
	}
	// Copy so callers cannot mutate the shared table.
	recs := make([]string, len(e.recommendations))
	copy(recs, e.recommendations)
	return recs
}

// DescribeName resolves a free-form disease name (case and separator
// insensitive) and returns its description, or the fallback.
func (b *Base) DescribeName(name string) string {
	if l, ok := model.ParseLabel(name); ok {
		return b.Describe(l)
	}
	return fallback.description
}

// RecommendName resolves a free-form disease name and returns its
// recommendations, or the fallback list.
func (b *Base) RecommendName(name string) []string {
	if l, ok := model.ParseLabel(name); ok {
		return b.Recommend(l)
	}
	return b.Recommend(model.Unknown)
}
