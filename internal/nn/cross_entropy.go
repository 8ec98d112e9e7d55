package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// BCEWithLogitsLoss computes binary cross-entropy on raw logits.
//
// Loss = mean(-[t * log σ(p) + (1 - t) * log(1 - σ(p))])
//
// Targets are probabilities in [0, 1]. The sigmoid is applied inside the
// loss, so feed it the linear output of the network. 1 - σ(p) is computed
// as σ(-p), which keeps both logs finite for |p| up to roughly 700.
type BCEWithLogitsLoss struct{}

// NewBCEWithLogitsLoss creates a new binary cross-entropy loss.
func NewBCEWithLogitsLoss() *BCEWithLogitsLoss {
	return &BCEWithLogitsLoss{}
}

// Forward computes the loss.
func (BCEWithLogitsLoss) Forward(preds []*autodiff.Value, targets []float64) *autodiff.Value {
	checkPair("BCEWithLogitsLoss", preds, targets)

	terms := make([]*autodiff.Value, len(preds))
	for i, p := range preds {
		t := targets[i]
		logP := p.Sigmoid().Log()
		logNotP := p.Neg().Sigmoid().Log()
		terms[i] = logP.Mul(autodiff.Const(t)).Add(logNotP.Mul(autodiff.Const(1 - t))).Neg()
	}
	return mean(terms)
}
