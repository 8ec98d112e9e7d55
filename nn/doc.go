// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small feed-forward network built on scalar autodiff.
//
// # Overview
//
// This package contains:
//   - Building blocks: Neuron, Layer, MLP
//   - Activations: Tanh, ReLU, Linear
//   - Loss functions: MSELoss, BCEWithLogitsLoss, HingeLoss
//   - Utilities: Module interface, Parameter, Save and Load
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    // 2 inputs, two hidden layers of 4, one linear output
//	    model := nn.NewMLP(2, []int{4, 4, 1}, nn.Config{Seed: 42})
//
//	    // Forward pass
//	    out := model.Forward1(nn.Inputs([]float64{0.5, -1}))
//	    out.Backward()
//	}
//
// # Activations
//
// Hidden layers use Config.Activation. The output layer is always linear so
// that any loss can be applied to its raw values.
//
//	model := nn.NewMLP(3, []int{8, 1}, nn.Config{Activation: nn.ReLU})
//
// # Loss Functions
//
// MSELoss: For regression tasks
//
//	loss := nn.NewMSELoss().Forward(preds, targets)
//
// BCEWithLogitsLoss: For binary classification with {0, 1} targets
//
//	loss := nn.NewBCEWithLogitsLoss().Forward(logits, labels)
//
// HingeLoss: For max-margin classification with {-1, +1} targets
//
//	loss := nn.NewHingeLoss().Forward(scores, labels)
//
// # Saving Models
//
//	err := nn.Save(model, "xor.bscl")
//	restored, err := nn.Load("xor.bscl")
package nn
