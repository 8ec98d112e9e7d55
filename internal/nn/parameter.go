package nn

import (
	"errors"
	"fmt"
	"sort"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// State dict errors.
var (
	ErrMissingParameter    = errors.New("missing parameter")
	ErrUnexpectedParameter = errors.New("unexpected parameter")
)

// Parameter is a trainable node together with its dotted path in the model.
//
// Example:
//
//	for _, p := range mlp.NamedParameters() {
//	    fmt.Println(p.Name, p.Value.Data(), p.Value.Grad())
//	}
type Parameter struct {
	Name  string          // e.g. "layers.0.neurons.1.w.2"
	Value *autodiff.Value // The live parameter node
}

// StateDict returns a snapshot of all parameter values keyed by name.
func (m *MLP) StateDict() map[string]float64 {
	named := m.NamedParameters()
	state := make(map[string]float64, len(named))
	for _, p := range named {
		state[p.Name] = p.Value.Data()
	}
	return state
}

// LoadStateDict overwrites parameter values from state.
//
// The keys of state must match NamedParameters exactly. On error no
// parameter is modified.
func (m *MLP) LoadStateDict(state map[string]float64) error {
	named := m.NamedParameters()

	known := make(map[string]struct{}, len(named))
	for _, p := range named {
		known[p.Name] = struct{}{}
		if _, ok := state[p.Name]; !ok {
			return fmt.Errorf("load state dict: %w: %q", ErrMissingParameter, p.Name)
		}
	}

	if len(state) != len(named) {
		extra := make([]string, 0, len(state)-len(named))
		for name := range state {
			if _, ok := known[name]; !ok {
				extra = append(extra, name)
			}
		}
		sort.Strings(extra)
		return fmt.Errorf("load state dict: %w: %q", ErrUnexpectedParameter, extra)
	}

	for _, p := range named {
		p.Value.SetData(state[p.Name])
	}
	return nil
}
