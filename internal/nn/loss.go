package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Loss reduces predictions and raw targets to a single scalar node.
//
// Implementations build the result from engine operations only, so calling
// Backward on it reaches every parameter that contributed to preds.
type Loss interface {
	Forward(preds []*autodiff.Value, targets []float64) *autodiff.Value
}

// checkPair panics unless preds and targets are non-empty and aligned.
func checkPair(name string, preds []*autodiff.Value, targets []float64) {
	if len(preds) == 0 {
		panic(name + ": predictions must not be empty")
	}
	if len(preds) != len(targets) {
		panic(fmt.Sprintf("%s: got %d predictions and %d targets", name, len(preds), len(targets)))
	}
}

// mean averages terms as a graph node.
func mean(terms []*autodiff.Value) *autodiff.Value {
	return autodiff.Sum(terms...).Mul(autodiff.Const(1 / float64(len(terms))))
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss := mse.Forward([]*autodiff.Value{pred}, []float64{1})
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the MSE loss.
func (MSELoss) Forward(preds []*autodiff.Value, targets []float64) *autodiff.Value {
	checkPair("MSELoss", preds, targets)

	terms := make([]*autodiff.Value, len(preds))
	for i, p := range preds {
		terms[i] = p.Sub(autodiff.Const(targets[i])).Pow(2)
	}
	return mean(terms)
}

// HingeLoss computes the SVM-style hinge loss for targets in {-1, +1}.
//
// Loss = mean(max(0, 1 - target * prediction))
type HingeLoss struct{}

// NewHingeLoss creates a new hinge loss function.
func NewHingeLoss() *HingeLoss {
	return &HingeLoss{}
}

// Forward computes the hinge loss.
func (HingeLoss) Forward(preds []*autodiff.Value, targets []float64) *autodiff.Value {
	checkPair("HingeLoss", preds, targets)

	terms := make([]*autodiff.Value, len(preds))
	for i, p := range preds {
		margin := autodiff.NewValue(1).Sub(p.Mul(autodiff.Const(targets[i])))
		terms[i] = margin.ReLU()
	}
	return mean(terms)
}
