package nn_test

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/stretchr/testify/assert"
)

func values(xs ...float64) []*autodiff.Value {
	return nn.Inputs(xs)
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// TestMSELoss tests the value and gradient of MSE.
func TestMSELoss(t *testing.T) {
	preds := values(1, 2, 3)
	loss := nn.NewMSELoss().Forward(preds, []float64{1, 1, 1})

	// (0 + 1 + 4) / 3
	assert.InDelta(t, 5.0/3.0, loss.Data(), 1e-12)

	loss.Backward()
	// d/dp = 2(p - t) / n
	assert.InDelta(t, 0.0, preds[0].Grad(), 1e-12)
	assert.InDelta(t, 2.0/3.0, preds[1].Grad(), 1e-12)
	assert.InDelta(t, 4.0/3.0, preds[2].Grad(), 1e-12)
}

// TestBCEWithLogitsLoss tests the value and gradient against the closed form.
func TestBCEWithLogitsLoss(t *testing.T) {
	logits := []float64{2.0, -0.5, 0.0, 4.0}
	targets := []float64{1, 0, 1, 0}

	preds := values(logits...)
	loss := nn.NewBCEWithLogitsLoss().Forward(preds, targets)

	var want float64
	for i, z := range logits {
		p := sigmoid(z)
		want += -(targets[i]*math.Log(p) + (1-targets[i])*math.Log(1-p))
	}
	want /= float64(len(logits))
	assert.InDelta(t, want, loss.Data(), 1e-9)

	loss.Backward()
	for i, z := range logits {
		// d/dz = (σ(z) - t) / n
		wantGrad := (sigmoid(z) - targets[i]) / float64(len(logits))
		assert.InDelta(t, wantGrad, preds[i].Grad(), 1e-9, "logit %d", i)
	}
}

// TestBCEWithLogitsLoss_LargeLogits tests that confident logits stay finite.
func TestBCEWithLogitsLoss_LargeLogits(t *testing.T) {
	preds := values(50, -50)
	loss := nn.NewBCEWithLogitsLoss().Forward(preds, []float64{1, 0})

	assert.False(t, math.IsNaN(loss.Data()))
	assert.False(t, math.IsInf(loss.Data(), 0))
	assert.InDelta(t, 0.0, loss.Data(), 1e-9)
}

// TestHingeLoss tests margins on both sides of 1.
func TestHingeLoss(t *testing.T) {
	preds := values(2, 0.5, -1)
	loss := nn.NewHingeLoss().Forward(preds, []float64{1, 1, 1})

	// max(0, -1) + max(0, 0.5) + max(0, 2) = 2.5
	assert.InDelta(t, 2.5/3.0, loss.Data(), 1e-12)

	loss.Backward()
	assert.Equal(t, 0.0, preds[0].Grad())
	assert.InDelta(t, -1.0/3.0, preds[1].Grad(), 1e-12)
	assert.InDelta(t, -1.0/3.0, preds[2].Grad(), 1e-12)
}

// TestLoss_Validation tests the shared input checks.
func TestLoss_Validation(t *testing.T) {
	losses := map[string]nn.Loss{
		"mse":   nn.NewMSELoss(),
		"bce":   nn.NewBCEWithLogitsLoss(),
		"hinge": nn.NewHingeLoss(),
	}

	for name, l := range losses {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, func() { l.Forward(nil, nil) })
			assert.Panics(t, func() { l.Forward(values(1, 2), []float64{1}) })
		})
	}
}

// TestLoss_ReachesParameters tests that a loss built on an MLP back-propagates into it.
func TestLoss_ReachesParameters(t *testing.T) {
	mlp := nn.NewMLP(2, []int{3, 1}, nn.Config{})
	pred := mlp.Forward1(nn.Inputs([]float64{0.5, -0.5}))

	loss := nn.NewMSELoss().Forward([]*autodiff.Value{pred}, []float64{3})
	loss.Backward()

	outBias := mlp.Layers[1].Neurons[0].B
	// dL/db = 2(pred - 3) for a single sample.
	assert.InDelta(t, 2*(pred.Data()-3), outBias.Grad(), 1e-12)
}
