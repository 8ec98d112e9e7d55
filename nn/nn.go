// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Activation selects the nonlinearity applied by a Neuron.
type Activation = nn.Activation

// Supported activations.
const (
	Tanh   = nn.Tanh
	ReLU   = nn.ReLU
	Linear = nn.Linear
)

// ParseActivation parses "tanh", "relu" or "linear".
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Config controls how networks are built.
type Config = nn.Config

// Inputs lifts raw features to leaf nodes.
func Inputs(xs []float64) []*autodiff.Value {
	return nn.Inputs(xs)
}

// Building blocks

// Neuron computes act(w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin weights drawn from U(-1, 1) and a zero bias.
func NewNeuron(nin int, act Activation, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nin, act, rng)
}

// Layer is a row of independent neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer(nin, nout int, act Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(nin, nout, act, rng)
}

// MLP is a stack of fully connected layers.
type MLP = nn.MLP

// NewMLP creates a multi-layer perceptron.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.Config{})
func NewMLP(nin int, nouts []int, cfg Config) *MLP {
	return nn.NewMLP(nin, nouts, cfg)
}

// Loss functions

// Loss reduces predictions and targets to a scalar node.
type Loss = nn.Loss

// MSELoss computes mean squared error.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// BCEWithLogitsLoss computes binary cross-entropy on raw logits.
type BCEWithLogitsLoss = nn.BCEWithLogitsLoss

// NewBCEWithLogitsLoss creates a new binary cross-entropy loss.
func NewBCEWithLogitsLoss() *BCEWithLogitsLoss {
	return nn.NewBCEWithLogitsLoss()
}

// HingeLoss computes the mean of max(0, 1 - y*s).
type HingeLoss = nn.HingeLoss

// NewHingeLoss creates a new hinge loss.
func NewHingeLoss() *HingeLoss {
	return nn.NewHingeLoss()
}
