package lottery

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libin99527/newapi-checkin/internal/domain"
)

// fixedRand always returns the same fraction of the total weight.
type fixedRand struct {
	v float64
}

func (f fixedRand) Float64() float64 { return f.v }

func TestSelectUnavailableTables(t *testing.T) {
	engine := New(nil)

	tests := []struct {
		name   string
		prizes []domain.Prize
	}{
		{name: "empty table", prizes: nil},
		{name: "zero total weight", prizes: []domain.Prize{{Quota: 100, Weight: 0, Name: "a"}}},
		{name: "negative total weight", prizes: []domain.Prize{{Quota: 100, Weight: -5, Name: "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prize, ok := engine.Select(tt.prizes)
			assert.False(t, ok)
			assert.Nil(t, prize)
		})
	}
}

func TestSelectSingleEntry(t *testing.T) {
	engine := New(rand.New(rand.NewSource(1)))
	prizes := []domain.Prize{{Quota: 0, Weight: 1, Name: "none"}}

	for i := 0; i < 100; i++ {
		prize, ok := engine.Select(prizes)
		assert.True(t, ok)
		assert.Equal(t, "none", prize.Name)
	}
}

func TestSelectAlwaysReturnsMember(t *testing.T) {
	engine := New(rand.New(rand.NewSource(42)))
	prizes := []domain.Prize{
		{Quota: 1000000, Weight: 5, Name: "jackpot"},
		{Quota: 500000, Weight: 15, Name: "big"},
		{Quota: 100000, Weight: 50, Name: "normal"},
		{Quota: 0, Weight: 30, Name: "nothing"},
	}
	members := map[string]bool{"jackpot": true, "big": true, "normal": true, "nothing": true}

	for i := 0; i < 10000; i++ {
		prize, ok := engine.Select(prizes)
		assert.True(t, ok)
		assert.True(t, members[prize.Name])
	}
}

func TestSelectCumulativeBoundaries(t *testing.T) {
	prizes := []domain.Prize{
		{Weight: 10, Name: "first"},
		{Weight: 20, Name: "second"},
		{Weight: 70, Name: "third"},
	}

	tests := []struct {
		name     string
		fraction float64
		want     string
	}{
		{name: "start of range", fraction: 0, want: "first"},
		{name: "inside first segment", fraction: 0.05, want: "first"},
		{name: "inside second segment", fraction: 0.2, want: "second"},
		{name: "inside third segment", fraction: 0.5, want: "third"},
		{name: "just below total", fraction: 0.9999, want: "third"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := New(fixedRand{v: tt.fraction})
			prize, ok := engine.Select(prizes)
			assert.True(t, ok)
			assert.Equal(t, tt.want, prize.Name)
		})
	}
}

func TestSelectRoughDistribution(t *testing.T) {
	engine := New(rand.New(rand.NewSource(7)))
	prizes := []domain.Prize{
		{Weight: 50, Name: "common"},
		{Weight: 50, Name: "other"},
	}

	counts := map[string]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		prize, ok := engine.Select(prizes)
		assert.True(t, ok)
		counts[prize.Name]++
	}

	assert.InDelta(t, draws/2, counts["common"], draws/20)
	assert.InDelta(t, draws/2, counts["other"], draws/20)
}

func TestTotalWeight(t *testing.T) {
	assert.Equal(t, 0.0, TotalWeight(nil))
	assert.Equal(t, 100.0, TotalWeight([]domain.Prize{{Weight: 5}, {Weight: 15}, {Weight: 50}, {Weight: 30}}))
}
