package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Activation selects the nonlinearity applied by a Neuron.
type Activation int

// Supported activations. The zero value is Tanh.
const (
	// Tanh squashes values to (-1, 1).
	Tanh Activation = iota

	// ReLU applies max(0, x).
	ReLU

	// Linear applies no nonlinearity.
	Linear
)

// String implements fmt.Stringer.
func (a Activation) String() string {
	switch a {
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// ParseActivation parses the name returned by Activation.String.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(name) {
	case "linear", "none":
		return Linear, nil
	case "tanh":
		return Tanh, nil
	case "relu":
		return ReLU, nil
	default:
		return Tanh, fmt.Errorf("unknown activation %q", name)
	}
}

// apply runs the activation on x.
func (a Activation) apply(x *autodiff.Value) *autodiff.Value {
	switch a {
	case Tanh:
		return x.Tanh()
	case ReLU:
		return x.ReLU()
	default:
		return x
	}
}
