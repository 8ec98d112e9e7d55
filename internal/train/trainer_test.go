package train_test

import (
	"context"
	"testing"

	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/born-ml/micrograd/internal/train"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var xor = []train.Sample{
	{X: []float64{0, 0}, Y: []float64{-1}},
	{X: []float64{0, 1}, Y: []float64{1}},
	{X: []float64{1, 0}, Y: []float64{1}},
	{X: []float64{1, 1}, Y: []float64{-1}},
}

func newTrainer(t *testing.T, optimizer string, lr float64) *train.Trainer {
	t.Helper()
	model := nn.NewMLP(2, []int{8, 1}, nn.Config{Seed: 7})
	opt, err := optim.New(optimizer, model.Parameters(), lr)
	require.NoError(t, err)
	return &train.Trainer{Model: model, Loss: nn.NewMSELoss(), Optimizer: opt}
}

// TestFit_XORLossDecreases tests that training reduces the loss.
func TestFit_XORLossDecreases(t *testing.T) {
	for _, name := range []string{"sgd", "adam"} {
		t.Run(name, func(t *testing.T) {
			lr := 0.05
			if name == "sgd" {
				lr = 0.1
			}
			tr := newTrainer(t, name, lr)

			hist, err := tr.Fit(context.Background(), xor, train.Config{Epochs: 300}, nil)
			require.NoError(t, err)
			require.Len(t, hist.Losses, 300)

			assert.Less(t, hist.Final(), hist.Losses[0]*0.5)
			best, at := hist.Best()
			assert.Greater(t, at, 0)
			assert.LessOrEqual(t, best, hist.Final())
			assert.Equal(t, int64(300), tr.Steps())

			eval, err := tr.Evaluate(xor)
			require.NoError(t, err)
			assert.Less(t, eval, hist.Losses[0])
		})
	}
}

// TestFit_Callback tests the LogEvery cadence.
func TestFit_Callback(t *testing.T) {
	tr := newTrainer(t, "sgd", 0.1)

	var epochs []int
	var losses []float64
	hist, err := tr.Fit(context.Background(), xor, train.Config{Epochs: 10, LogEvery: 4}, func(epoch int, loss float64) {
		epochs = append(epochs, epoch)
		losses = append(losses, loss)
	})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 7, 9}, epochs)
	assert.Equal(t, []float64{hist.Losses[3], hist.Losses[7], hist.Losses[9]}, losses)
}

// TestFit_CanceledBeforeStart tests that no step runs on a dead context.
func TestFit_CanceledBeforeStart(t *testing.T) {
	tr := newTrainer(t, "sgd", 0.1)
	before := tr.Model.StateDict()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hist, err := tr.Fit(ctx, xor, train.Config{Epochs: 5}, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, hist)
	assert.Empty(t, hist.Losses)
	assert.Equal(t, before, tr.Model.StateDict())
}

// TestFit_CanceledMidway tests that cancellation stops between epochs.
func TestFit_CanceledMidway(t *testing.T) {
	tr := newTrainer(t, "adam", 0.01)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hist, err := tr.Fit(ctx, xor, train.Config{Epochs: 50}, func(epoch int, _ float64) {
		if epoch == 2 {
			cancel()
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "epoch 3")
	assert.Len(t, hist.Losses, 3)
	assert.Equal(t, int64(3), tr.Steps())
}

// TestEvaluate_DoesNotMutate tests that evaluation leaves parameters and gradients alone.
func TestEvaluate_DoesNotMutate(t *testing.T) {
	tr := newTrainer(t, "sgd", 0.1)
	before := tr.Model.StateDict()

	loss, err := tr.Evaluate(xor)
	require.NoError(t, err)
	assert.Greater(t, loss, 0.0)

	assert.Equal(t, before, tr.Model.StateDict())
	for _, p := range tr.Model.Parameters() {
		assert.Equal(t, 0.0, p.Grad())
	}
}

// TestEmptyDataset tests input validation.
func TestEmptyDataset(t *testing.T) {
	tr := newTrainer(t, "sgd", 0.1)

	_, err := tr.Fit(context.Background(), nil, train.Config{}, nil)
	require.ErrorIs(t, err, train.ErrEmptyDataset)

	_, err = tr.Evaluate(nil)
	require.ErrorIs(t, err, train.ErrEmptyDataset)
}

// TestHistory_Empty tests zero-value accessors.
func TestHistory_Empty(t *testing.T) {
	var h train.History
	assert.Equal(t, 0.0, h.Final())
	best, at := h.Best()
	assert.Equal(t, 0.0, best)
	assert.Equal(t, -1, at)
	assert.Equal(t, 0.0, h.Mean(3))
}

// TestHistory_Stats tests Best and Mean on known values.
func TestHistory_Stats(t *testing.T) {
	h := train.History{Losses: []float64{4, 2, 3, 1, 5}}

	best, at := h.Best()
	assert.Equal(t, 1.0, best)
	assert.Equal(t, 3, at)

	assert.Equal(t, 3.0, h.Mean(0))
	assert.Equal(t, 3.0, h.Mean(2))
	assert.Equal(t, 3.0, h.Mean(99))
	assert.Equal(t, 5.0, h.Final())
}

// TestSampleShape tests that per-sample width mismatches are rejected even
// when the totals line up.
func TestSampleShape(t *testing.T) {
	model := nn.NewMLP(2, []int{3, 2}, nn.Config{Seed: 1})
	tr := &train.Trainer{
		Model:     model,
		Loss:      nn.NewMSELoss(),
		Optimizer: optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1}),
	}
	before := model.StateDict()

	// 1 + 3 targets equals 2 + 2 outputs in total.
	uneven := []train.Sample{
		{X: []float64{0, 1}, Y: []float64{1}},
		{X: []float64{1, 0}, Y: []float64{1, 0, 1}},
	}
	_, err := tr.Fit(context.Background(), uneven, train.Config{Epochs: 3}, nil)
	require.ErrorIs(t, err, train.ErrSampleShape)
	assert.Contains(t, err.Error(), "sample 0")
	assert.Equal(t, before, model.StateDict())
	assert.Equal(t, int64(0), tr.Steps())

	_, err = tr.Evaluate(uneven)
	require.ErrorIs(t, err, train.ErrSampleShape)

	wrongInputs := []train.Sample{{X: []float64{1}, Y: []float64{0, 0}}}
	_, err = tr.Evaluate(wrongInputs)
	require.ErrorIs(t, err, train.ErrSampleShape)

	ok := []train.Sample{{X: []float64{1, 0}, Y: []float64{0, 1}}}
	_, err = tr.Evaluate(ok)
	require.NoError(t, err)
}
