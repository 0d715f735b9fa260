package agent

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/stretchr/testify/assert"
)

func TestConstantRates(t *testing.T) {
	rates := NewConstantRates(0.1, 4)

	assert.Len(t, []float64(rates), 4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0.1, rates.At(i))
	}
}

func TestUniformRates(t *testing.T) {
	rates := NewUniformRates(100, rand.NewSource(3))

	assert.Len(t, []float64(rates), 100)
	for i := range rates {
		assert.GreaterOrEqual(t, rates.At(i), 0.0)
		assert.Less(t, rates.At(i), 1.0)
	}
}

func TestUniformRatesDeterministicSeed(t *testing.T) {
	a := NewUniformRates(5, rand.NewSource(11))
	b := NewUniformRates(5, rand.NewSource(11))
	assert.Equal(t, a, b)
}

func TestVectorRatesPassThrough(t *testing.T) {
	values := []float64{0.5, 0.9}
	rates := NewVectorRates(values)

	assert.Equal(t, 0.5, rates.At(0))
	assert.Equal(t, 0.9, rates.At(1))
}
