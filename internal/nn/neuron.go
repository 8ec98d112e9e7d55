package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes act(w·x + b).
//
// Weights start uniform in [-1, 1] and the bias starts at 0.
type Neuron struct {
	W   []*autodiff.Value // One weight per input
	B   *autodiff.Value   // Bias
	Act Activation
}

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, act Activation, rng *rand.Rand) *Neuron {
	if nin <= 0 {
		panic(fmt.Sprintf("Neuron: nin must be positive, got %d", nin))
	}
	return &Neuron{
		W:   Uniform(rng, nin),
		B:   autodiff.NewValue(0),
		Act: act,
	}
}

// Forward computes the neuron output for one input vector.
//
// Panics if len(x) does not match the number of weights.
func (n *Neuron) Forward(x []*autodiff.Value) *autodiff.Value {
	if len(x) != len(n.W) {
		panic(fmt.Sprintf("Neuron: expected %d inputs, got %d", len(n.W), len(x)))
	}
	return n.Act.apply(autodiff.Dot(n.W, x).Add(n.B))
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.W)+1)
	params = append(params, n.W...)
	return append(params, n.B)
}

// ZeroGrad resets all parameter gradients.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n)
}

// String implements fmt.Stringer.
func (n *Neuron) String() string {
	return fmt.Sprintf("%sNeuron(%d)", n.Act, len(n.W))
}
