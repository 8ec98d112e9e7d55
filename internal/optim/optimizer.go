// Package optim implements optimization algorithms for training networks
// built on the scalar autodiff engine.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//
// Optimizers only touch the (data, grad) pair of each tracked parameter;
// they never inspect the graph.
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    loss := lossFn.Forward(model.Forward(x), y)
//
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Optimizer errors.
var (
	ErrUnknownOptimizer = errors.New("unknown optimizer")
	ErrInvalidState     = errors.New("invalid optimizer state")
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next backward pass
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step updates every tracked parameter from its current gradient.
	//
	// Call it after Backward has filled the gradients.
	Step()

	// ZeroGrad sets every tracked parameter's gradient to 0.
	//
	// Gradients accumulate across backward passes, so this must be called
	// before each new one.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Stateful is implemented by optimizers that carry per-parameter state
// (momentum buffers, moment estimates) worth checkpointing.
type Stateful interface {
	StateDict() map[string]float64
	LoadStateDict(state map[string]float64) error
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// New creates an optimizer by name.
//
// Supported names: "sgd", "momentum" (SGD with momentum 0.9) and "adam".
// A zero lr selects the optimizer's default.
func New(name string, params []*autodiff.Value, lr float64) (Optimizer, error) {
	switch strings.ToLower(name) {
	case "sgd":
		return NewSGD(params, SGDConfig{LR: lr}), nil
	case "momentum":
		return NewSGD(params, SGDConfig{LR: lr, Momentum: 0.9}), nil
	case "adam":
		return NewAdam(params, AdamConfig{LR: lr}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOptimizer, name)
	}
}

// zeroGrad resets the gradient of every parameter.
func zeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

// loadBuffer copies prefix.{i} entries of state into buf.
//
// Missing entries leave the buffer untouched.
func loadBuffer(state map[string]float64, prefix string, buf []float64) {
	for i := range buf {
		if v, ok := state[fmt.Sprintf("%s.%d", prefix, i)]; ok {
			buf[i] = v
		}
	}
}

// storeBuffer writes buf into state as prefix.{i} entries.
func storeBuffer(state map[string]float64, prefix string, buf []float64) {
	for i, v := range buf {
		state[fmt.Sprintf("%s.%d", prefix, i)] = v
	}
}
