package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/train"
)

// xorData returns the four XOR points labelled for the given loss.
//
// Cross-entropy wants {0, 1} targets; MSE and hinge use {-1, +1}.
func xorData(loss string) []train.Sample {
	lo, hi := -1.0, 1.0
	if loss == "bce" {
		lo = 0
	}
	return []train.Sample{
		{X: []float64{0, 0}, Y: []float64{lo}},
		{X: []float64{0, 1}, Y: []float64{hi}},
		{X: []float64{1, 0}, Y: []float64{hi}},
		{X: []float64{1, 1}, Y: []float64{lo}},
	}
}

// newLoss maps a flag value to a loss function.
func newLoss(name string) (nn.Loss, error) {
	switch name {
	case "mse":
		return nn.NewMSELoss(), nil
	case "bce":
		return nn.NewBCEWithLogitsLoss(), nil
	case "hinge":
		return nn.NewHingeLoss(), nil
	default:
		return nil, fmt.Errorf("unknown loss %q (want mse, bce or hinge)", name)
	}
}

// accuracy returns the fraction of samples classified correctly.
// Outputs are split at 0, which for logits is probability 0.5.
func accuracy(m *nn.MLP, data []train.Sample, loss string) float64 {
	mid := 0.0
	if loss == "bce" {
		mid = 0.5
	}
	correct := 0
	for _, s := range data {
		if (m.Predict(s.X)[0] > 0) == (s.Y[0] > mid) {
			correct++
		}
	}
	return float64(correct) / float64(len(data))
}

// parseSizes parses a comma separated list of positive layer widths.
func parseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid layer size %q", p)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
