package scorer

import (
	"fmt"
	"math"
	"sort"

	"github.com/verdant-labs/paddydoc/internal/model"
)

// DefaultGate is the minimum calibrated top probability for a definite
// diagnosis. Below it the result is overridden to Unknown, protecting
// against over-confident misreads between visually similar diseases.
const DefaultGate = 0.70

// Pair couples a label with its calibrated probability.
type Pair struct {
	Label       model.DiseaseLabel
	Probability float64
}

// Ranked is the outcome of processing one raw score vector.
type Ranked struct {
	Distribution []float64          // index-aligned with the label set, sums to 1
	Ranking      []Pair             // descending probability, ascending index on ties
	Label        model.DiseaseLabel // gated top label; Unknown when below the gate
	Confidence   float64            // gated top probability; 0 when below the gate
}

// Processor calibrates raw classifier scores into a probability
// distribution and applies the confidence gate.
type Processor struct {
	Gate float64
}

// New creates a Processor with the given confidence gate.
func New(gate float64) *Processor {
	return &Processor{Gate: gate}
}

// Process turns raw logits into a gated, ranked result. An empty or
// wrong-width vector is a contract violation and fails fast.
func (p *Processor) Process(scores []float32) (Ranked, error) {
	if len(scores) == 0 {
		return Ranked{}, fmt.Errorf("scorer: %w", model.ErrEmptyScores)
	}
	if len(scores) != model.NumClasses {
		return Ranked{}, fmt.Errorf("scorer: got %d scores for %d labels: %w",
			len(scores), model.NumClasses, model.ErrLabelMismatch)
	}

	dist := softmax(scores)

	ranking := make([]Pair, len(dist))
	for i, prob := range dist {
		ranking[i] = Pair{Label: model.DiseaseLabel(i), Probability: prob}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Probability != ranking[j].Probability {
			return ranking[i].Probability > ranking[j].Probability
		}
		return ranking[i].Label < ranking[j].Label
	})

	top := ranking[0]
	r := Ranked{
		Distribution: dist,
		Ranking:      ranking,
		Label:        top.Label,
		Confidence:   top.Probability,
	}
	if top.Probability < p.Gate {
		r.Label = model.Unknown
		r.Confidence = 0
	}
	return r, nil
}

// softmax exponentiates and normalizes raw scores into a probability
// distribution. The maximum score is subtracted first so the largest
// exponent is e^0, keeping the computation overflow-free.
func softmax(scores []float32) []float64 {
	max := float64(scores[0])
	for _, s := range scores[1:] {
		if float64(s) > max {
			max = float64(s)
		}
	}

	dist := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		e := math.Exp(float64(s) - max)
		dist[i] = e
		sum += e
	}
	for i := range dist {
		dist[i] /= sum
	}
	return dist
}
