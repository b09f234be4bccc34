package airquality

import (
	"math"
	"math/rand"
	"time"
)

// Simulator generates plausible random readings when no device is connected.
// Each field is drawn independently and uniformly from a fixed range; no
// correlation between fields is modeled.
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator creates a simulator seeded from the current time.
func NewSimulator() *Simulator {
	return NewSimulatorSeeded(time.Now().UnixNano())
}

// NewSimulatorSeeded creates a simulator with a fixed seed, for reproducible
// runs and tests.
func NewSimulatorSeeded(seed int64) *Simulator {
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns one complete synthetic reading.
func (s *Simulator) Next() Fields {
	return Fields{
		FieldPM25: s.uniform(5, 80, 1),
		FieldPM10: s.uniform(10, 120, 1),
		FieldCO2:  s.uniform(400, 2000, 0),
		FieldTemp: s.uniform(0, 35, 1),
		FieldHum:  s.uniform(25, 75, 1),
	}
}

// uniform draws from [lo, hi] rounded to the given number of decimals.
func (s *Simulator) uniform(lo, hi float64, decimals int) float64 {
	v := lo + s.rng.Float64()*(hi-lo)
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
