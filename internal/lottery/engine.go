// Package lottery implements the weighted prize selection: an
// inverse-transform draw over the cumulative weights of the configured
// table.
package lottery

import (
	"math/rand"

	"github.com/libin99527/newapi-checkin/internal/domain"
)

// Rand is the uniform source the engine draws from, injectable for tests.
type Rand interface {
	Float64() float64
}

type Engine struct {
	rnd Rand
}

func New(rnd Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Engine{rnd: rnd}
}

// TotalWeight sums the table weights. A total <= 0 disables the lottery.
func TotalWeight(prizes []domain.Prize) float64 {
	var total float64
	for _, p := range prizes {
		total += p.Weight
	}
	return total
}

// Select draws one prize proportional to its weight. It walks the table in
// configured order accumulating weights and returns the first entry whose
// cumulative weight reaches the drawn value; the declared order is the
// tie-break order at segment boundaries. Returns false when the table is
// empty or its total weight is not positive.
func (e *Engine) Select(prizes []domain.Prize) (*domain.Prize, bool) {
	total := TotalWeight(prizes)
	if len(prizes) == 0 || total <= 0 {
		return nil, false
	}

	r := e.rnd.Float64() * total
	var running float64
	for i := range prizes {
		running += prizes[i].Weight
		if r <= running {
			return &prizes[i], true
		}
	}

	// Floating-point error can exhaust the walk without a match; the last
	// entry keeps the selection total.
	return &prizes[len(prizes)-1], true
}
