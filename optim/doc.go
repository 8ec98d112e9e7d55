// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/nn"
//	    "github.com/born-ml/micrograd/optim"
//	)
//
//	func main() {
//	    model := nn.NewMLP(2, []int{4, 1}, nn.Config{})
//	    criterion := nn.NewMSELoss()
//
//	    // Create optimizer
//	    optimizer := optim.NewAdam(
//	        model.Parameters(),
//	        optim.AdamConfig{
//	            LR:    0.01,
//	            Betas: [2]float64{0.9, 0.999},
//	        },
//	    )
//
//	    // Training loop
//	    for epoch := range 100 {
//	        loss := criterion.Forward(model.Forward(x), y)
//
//	        optimizer.ZeroGrad()
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// # Optimizers
//
// SGD (Stochastic Gradient Descent):
//
//	optimizer := optim.NewSGD(params, optim.SGDConfig{LR: 0.1, Momentum: 0.9})
//
// Adam (Adaptive Moment Estimation):
//
//	optimizer := optim.NewAdam(params, optim.AdamConfig{LR: 0.001})
//
// By name, for command-line selection:
//
//	optimizer, err := optim.New("momentum", params, 0.05)
package optim
