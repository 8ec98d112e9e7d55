package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLP is a multi-layer perceptron.
//
// Hidden layers use the configured activation; the last layer is linear so
// the output can be fed to any loss.
//
// Example:
//
//	mlp := nn.NewMLP(2, []int{4, 4, 1}, nn.Config{Activation: nn.Tanh, Seed: 42})
//	out := mlp.Forward1(nn.Inputs([]float64{0.5, -1}))
//	out.Backward()
type MLP struct {
	Layers []*Layer

	nin int
	cfg Config
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
func NewMLP(nin int, nouts []int, cfg Config) *MLP {
	if len(nouts) == 0 {
		panic("MLP: at least one layer is required")
	}
	cfg = cfg.withDefaults()

	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(cfg.Seed))

	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range nouts {
		act := cfg.Activation
		if i == len(nouts)-1 {
			act = Linear
		}
		layers[i] = NewLayer(sizes[i], sizes[i+1], act, rng)
	}

	return &MLP{
		Layers: layers,
		nin:    nin,
		cfg:    cfg,
	}
}

// Forward runs x through every layer and returns the final layer outputs.
func (m *MLP) Forward(x []*autodiff.Value) []*autodiff.Value {
	out := x
	for _, l := range m.Layers {
		out = l.Forward(out)
	}
	return out
}

// Forward1 is Forward for networks with a single output.
//
// Panics if the last layer has more than one neuron.
func (m *MLP) Forward1(x []*autodiff.Value) *autodiff.Value {
	out := m.Forward(x)
	if len(out) != 1 {
		panic(fmt.Sprintf("MLP.Forward1: network has %d outputs", len(out)))
	}
	return out[0]
}

// Predict runs a forward pass on raw inputs and returns raw outputs.
func (m *MLP) Predict(x []float64) []float64 {
	out := m.Forward(Inputs(x))
	res := make([]float64, len(out))
	for i, v := range out {
		res[i] = v.Data()
	}
	return res
}

// Parameters returns every parameter: layer by layer, neuron by neuron,
// weights before bias.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.Layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// NamedParameters returns Parameters paired with their dotted names.
func (m *MLP) NamedParameters() []Parameter {
	var named []Parameter
	for li, l := range m.Layers {
		for ni, n := range l.Neurons {
			prefix := fmt.Sprintf("layers.%d.neurons.%d", li, ni)
			for wi, w := range n.W {
				named = append(named, Parameter{Name: fmt.Sprintf("%s.w.%d", prefix, wi), Value: w})
			}
			named = append(named, Parameter{Name: prefix + ".b", Value: n.B})
		}
	}
	return named
}

// NumParameters returns the number of trainable scalars.
func (m *MLP) NumParameters() int {
	total := 0
	for _, l := range m.Layers {
		total += l.OutFeatures() * (l.InFeatures() + 1)
	}
	return total
}

// ZeroGrad resets all parameter gradients.
func (m *MLP) ZeroGrad() {
	zeroGrad(m)
}

// InFeatures returns the input width.
func (m *MLP) InFeatures() int {
	return m.nin
}

// Sizes returns the output width of every layer.
func (m *MLP) Sizes() []int {
	sizes := make([]int, len(m.Layers))
	for i, l := range m.Layers {
		sizes[i] = l.OutFeatures()
	}
	return sizes
}

// Activation returns the hidden layer activation.
func (m *MLP) Activation() Activation {
	return m.cfg.Activation
}

// String implements fmt.Stringer.
func (m *MLP) String() string {
	parts := make([]string, len(m.Layers))
	for i, l := range m.Layers {
		parts[i] = l.String()
	}
	return "MLP of [" + strings.Join(parts, ", ") + "]"
}
