// Package train runs full-batch gradient descent over an nn.MLP.
//
// Each epoch builds one loss graph over the whole dataset, clears the
// parameter gradients, backpropagates, and applies a single optimizer step.
//
// Example:
//
//	model := nn.NewMLP(2, []int{4, 1}, nn.Config{})
//	tr := &train.Trainer{
//	    Model:     model,
//	    Loss:      nn.NewMSELoss(),
//	    Optimizer: optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1}),
//	}
//	hist, err := tr.Fit(ctx, data, train.Config{Epochs: 200}, nil)
package train

import (
	"context"
	"errors"
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"gonum.org/v1/gonum/floats"
)

// Dataset errors.
var (
	ErrEmptyDataset = errors.New("empty dataset")
	ErrSampleShape  = errors.New("sample does not match model shape")
)

// Sample is one input/target pair.
type Sample struct {
	X []float64
	Y []float64
}

// Config controls the training loop.
type Config struct {
	Epochs   int // Number of full passes (default: 100)
	LogEvery int // Invoke the epoch callback every N epochs (default: 1)
}

func (c Config) withDefaults() Config {
	if c.Epochs <= 0 {
		c.Epochs = 100
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 1
	}
	return c
}

// EpochFunc observes training progress. epoch is zero-based.
type EpochFunc func(epoch int, loss float64)

// History records the loss measured at every epoch, before that epoch's step.
type History struct {
	Losses []float64
}

// Final returns the last recorded loss, or 0 if nothing ran.
func (h *History) Final() float64 {
	if len(h.Losses) == 0 {
		return 0
	}
	return h.Losses[len(h.Losses)-1]
}

// Best returns the lowest recorded loss and its epoch, or (0, -1) if empty.
func (h *History) Best() (float64, int) {
	if len(h.Losses) == 0 {
		return 0, -1
	}
	i := floats.MinIdx(h.Losses)
	return h.Losses[i], i
}

// Mean returns the average loss over the last n epochs (all of them if n <= 0).
func (h *History) Mean(n int) float64 {
	if len(h.Losses) == 0 {
		return 0
	}
	tail := h.Losses
	if n > 0 && n < len(tail) {
		tail = tail[len(tail)-n:]
	}
	return floats.Sum(tail) / float64(len(tail))
}

// Trainer wires a model to a loss and an optimizer.
//
// The optimizer must have been built over Model.Parameters().
type Trainer struct {
	Model     *nn.MLP
	Loss      nn.Loss
	Optimizer optim.Optimizer

	step int64
}

// Steps returns the number of optimizer steps taken so far.
func (t *Trainer) Steps() int64 {
	return t.step
}

// Fit trains for cfg.Epochs epochs.
//
// Cancellation is checked before each epoch. On cancellation the history
// collected so far is returned along with the wrapped context error.
func (t *Trainer) Fit(ctx context.Context, data []Sample, cfg Config, onEpoch EpochFunc) (*History, error) {
	if err := t.checkData(data); err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	cfg = cfg.withDefaults()

	hist := &History{Losses: make([]float64, 0, cfg.Epochs)}
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return hist, fmt.Errorf("fit: stopped at epoch %d: %w", epoch, err)
		}

		loss := t.lossOn(data)

		t.Optimizer.ZeroGrad()
		loss.Backward()
		t.Optimizer.Step()
		t.step++

		hist.Losses = append(hist.Losses, loss.Data())
		if onEpoch != nil && ((epoch+1)%cfg.LogEvery == 0 || epoch == cfg.Epochs-1) {
			onEpoch(epoch, loss.Data())
		}
	}
	return hist, nil
}

// Evaluate returns the loss over data without touching parameters or gradients.
func (t *Trainer) Evaluate(data []Sample) (float64, error) {
	if err := t.checkData(data); err != nil {
		return 0, fmt.Errorf("evaluate: %w", err)
	}
	return t.lossOn(data).Data(), nil
}

// checkData rejects empty datasets and samples whose input or target width
// differs from the model's.
func (t *Trainer) checkData(data []Sample) error {
	if len(data) == 0 {
		return ErrEmptyDataset
	}
	sizes := t.Model.Sizes()
	nin, nout := t.Model.InFeatures(), sizes[len(sizes)-1]
	for i, s := range data {
		if len(s.X) != nin || len(s.Y) != nout {
			return fmt.Errorf("%w: sample %d has %d inputs and %d targets, model takes %d and produces %d",
				ErrSampleShape, i, len(s.X), len(s.Y), nin, nout)
		}
	}
	return nil
}

// lossOn builds a single loss node over every output of every sample.
func (t *Trainer) lossOn(data []Sample) *autodiff.Value {
	preds := make([]*autodiff.Value, 0, len(data))
	targets := make([]float64, 0, len(data))
	for _, s := range data {
		preds = append(preds, t.Model.Forward(nn.Inputs(s.X))...)
		targets = append(targets, s.Y...)
	}
	return t.Loss.Forward(preds, targets)
}
