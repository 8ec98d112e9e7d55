package serialization

import (
	"fmt"
	"time"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
)

// FromMLP snapshots the architecture and parameter values of m.
//
// CreatedAt is set to the current time; other metadata is left zero for the
// caller to fill in.
func FromMLP(m *nn.MLP) *Checkpoint {
	return &Checkpoint{
		Model: ModelSpec{
			InFeatures: m.InFeatures(),
			Sizes:      m.Sizes(),
			Activation: m.Activation().String(),
		},
		Params: m.StateDict(),
		Meta: Meta{
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		},
	}
}

// WithOptimizer records opt's learning rate and, if it has any, its state.
func (c *Checkpoint) WithOptimizer(name string, opt optim.Optimizer) *Checkpoint {
	state := &OptimizerState{
		Type:  name,
		LR:    opt.GetLR(),
		State: map[string]float64{},
	}
	if s, ok := opt.(optim.Stateful); ok {
		state.State = s.StateDict()
	}
	c.Optimizer = state
	return c
}

// Restore builds a new MLP from the checkpoint.
func (c *Checkpoint) Restore() (*nn.MLP, error) {
	if err := ValidateModelSpec(c.Model); err != nil {
		return nil, err
	}
	act, _ := nn.ParseActivation(c.Model.Activation)

	m := nn.NewMLP(c.Model.InFeatures, c.Model.Sizes, nn.Config{Activation: act})
	if err := m.LoadStateDict(c.Params); err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	return m, nil
}

// RestoreOptimizer creates an optimizer over params from the saved state.
//
// Returns (nil, nil) if the checkpoint carries no optimizer.
func (c *Checkpoint) RestoreOptimizer(params []*autodiff.Value) (optim.Optimizer, error) {
	if c.Optimizer == nil {
		return nil, nil
	}
	opt, err := optim.New(c.Optimizer.Type, params, c.Optimizer.LR)
	if err != nil {
		return nil, fmt.Errorf("restore optimizer: %w", err)
	}
	if s, ok := opt.(optim.Stateful); ok {
		if err := s.LoadStateDict(c.Optimizer.State); err != nil {
			return nil, fmt.Errorf("restore optimizer: %w", err)
		}
	}
	return opt, nil
}
