// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/serialization"
)

// Module is the base interface for all network components.
//
// Every module must implement:
//   - Parameters: Return all trainable nodes in a stable order
//   - ZeroGrad: Reset the gradient of every parameter
type Module = nn.Module

// Save writes the architecture and parameters of model to a checkpoint file.
//
// The file is written atomically: a partially written checkpoint never
// replaces an existing one.
//
// Example:
//
//	model := nn.NewMLP(2, []int{4, 1}, nn.Config{})
//	err := nn.Save(model, "model.bscl")
func Save(model *MLP, path string) error {
	return serialization.Save(path, serialization.FromMLP(model))
}

// Load reads a checkpoint written by Save and rebuilds the model.
//
// Returns an error if the file is corrupt, was written by an unsupported
// format version, or describes an invalid architecture.
//
// Example:
//
//	model, err := nn.Load("model.bscl")
func Load(path string) (*MLP, error) {
	ckpt, err := serialization.Load(path)
	if err != nil {
		return nil, err
	}
	return ckpt.Restore()
}
