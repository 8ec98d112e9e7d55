package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a fully connected layer of independent neurons sharing the same input.
type Layer struct {
	Neurons []*Neuron
}

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer(nin, nout int, act Activation, rng *rand.Rand) *Layer {
	if nout <= 0 {
		panic(fmt.Sprintf("Layer: nout must be positive, got %d", nout))
	}
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, act, rng)
	}
	return &Layer{Neurons: neurons}
}

// Forward returns one output per neuron.
func (l *Layer) Forward(x []*autodiff.Value) []*autodiff.Value {
	out := make([]*autodiff.Value, len(l.Neurons))
	for i, n := range l.Neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.Neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets all parameter gradients.
func (l *Layer) ZeroGrad() {
	zeroGrad(l)
}

// InFeatures returns the number of inputs each neuron takes.
func (l *Layer) InFeatures() int {
	return len(l.Neurons[0].W)
}

// OutFeatures returns the number of neurons.
func (l *Layer) OutFeatures() int {
	return len(l.Neurons)
}

// String implements fmt.Stringer.
func (l *Layer) String() string {
	parts := make([]string, len(l.Neurons))
	for i, n := range l.Neurons {
		parts[i] = n.String()
	}
	return "Layer of [" + strings.Join(parts, ", ") + "]"
}
