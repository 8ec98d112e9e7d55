package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Config controls how networks are built.
type Config struct {
	Activation Activation // Hidden layer nonlinearity (default: Tanh)
	Seed       int64      // Weight initialization seed (default: 1)
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Seed == 0 {
		c.Seed = 1
	}
	return c
}

// Uniform returns n leaf nodes drawn from U(-1, 1).
func Uniform(rng *rand.Rand, n int) []*autodiff.Value {
	out := make([]*autodiff.Value, n)
	for i := range out {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		out[i] = autodiff.NewValue(rng.Float64()*2 - 1)
	}
	return out
}
