package synthetic

import (
	"math/rand"
	"testing"

	"github.com/verdant-labs/paddydoc/internal/engine/scorer"
	"github.com/verdant-labs/paddydoc/internal/model"
)

func TestScoresSurviveTheGate(t *testing.T) {
	g := New(rand.NewSource(1))
	p := scorer.New(scorer.DefaultGate)

	for i := 0; i < 200; i++ {
		r, err := p.Process(g.Scores())
		if err != nil {
			t.Fatalf("Process() error: %v", err)
		}
		if !r.Label.Real() {
			t.Fatalf("iteration %d: label = %v, want a real label", i, r.Label)
		}
		if r.Confidence < confMin-1e-9 || r.Confidence > confMax+1e-9 {
			t.Fatalf("iteration %d: confidence = %v, want within [%v, %v]", i, r.Confidence, confMin, confMax)
		}
	}
}

func TestAllLabelsReachable(t *testing.T) {
	g := New(rand.NewSource(42))
	p := scorer.New(scorer.DefaultGate)

	seen := make(map[model.DiseaseLabel]bool)
	for i := 0; i < 1000; i++ {
		r, err := p.Process(g.Scores())
		if err != nil {
			t.Fatalf("Process() error: %v", err)
		}
		seen[r.Label] = true
	}
	for _, label := range model.RealLabels() {
		if !seen[label] {
			t.Errorf("label %v never drawn in 1000 synthetic predictions", label)
		}
	}
}

func TestFixedSeedIsDeterministic(t *testing.T) {
	a := New(rand.NewSource(7))
	b := New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		sa, sb := a.Scores(), b.Scores()
		if len(sa) != len(sb) {
			t.Fatalf("iteration %d: lengths differ", i)
		}
		for j := range sa {
			if sa[j] != sb[j] {
				t.Fatalf("iteration %d: score[%d] %v != %v", i, j, sa[j], sb[j])
			}
		}
	}
}

func TestNilSourceGetsDefault(t *testing.T) {
	g := New(nil)
	scores := g.Scores()
	if len(scores) != model.NumClasses {
		t.Fatalf("Scores() len = %d, want %d", len(scores), model.NumClasses)
	}
}
