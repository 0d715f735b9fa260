package agent

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Rates holds one learning rate or discount factor per agent. Rates
// are resolved once at construction and are immutable for the
// lifetime of a run.
type Rates []float64

// NewConstantRates broadcasts a single rate across n agents
func NewConstantRates(value float64, n int) Rates {
	rates := make(Rates, n)
	for i := range rates {
		rates[i] = value
	}
	return rates
}

// NewUniformRates draws n independent rates uniformly from [0, 1)
func NewUniformRates(n int, src rand.Source) Rates {
	dist := distuv.Uniform{Min: 0, Max: 1, Src: src}

	rates := make(Rates, n)
	for i := range rates {
		rates[i] = dist.Rand()
	}
	return rates
}

// NewVectorRates uses an existing per-agent vector unchanged. The
// vector must have one entry per agent; this is a caller precondition
// and is not validated here.
func NewVectorRates(values []float64) Rates {
	return Rates(values)
}

// At returns the rate of agent i
func (r Rates) At(i int) float64 {
	return r[i]
}
