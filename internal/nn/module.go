// Package nn implements small neural network modules on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Module interface: base interface for all NN components
//   - Neuron, Layer, MLP: a fully connected feed-forward network
//   - Activations: Linear, Tanh, ReLU
//   - Loss functions: MSE, binary cross-entropy with logits, hinge
//
// Every forward pass builds a fresh autodiff graph whose leaves include the
// module's parameters, so calling Backward on a loss reaches all of them.
package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Modules can be composed: a Layer is a Module of Neurons, an MLP is a
// Module of Layers.
type Module interface {
	// Parameters returns all trainable parameters in a stable order.
	//
	// The returned nodes are the live parameters, not copies, so optimizers
	// can read their gradients and update their data in place.
	Parameters() []*autodiff.Value

	// ZeroGrad sets the gradient of every parameter to 0.
	ZeroGrad()
}

// zeroGrad resets the gradient of every parameter of m.
func zeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// Inputs lifts raw numbers into leaf nodes for a forward pass.
func Inputs(xs []float64) []*autodiff.Value {
	out := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = autodiff.NewValue(x)
	}
	return out
}
