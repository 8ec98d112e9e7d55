package serialization

import (
	"fmt"
	"math"
	"strings"

	"github.com/born-ml/micrograd/internal/nn"
)

// Validation limits for resource protection.
const (
	MaxParamCount   = 10_000_000 // Maximum number of parameters an architecture may describe
	MaxParamNameLen = 256        // Maximum parameter name length
)

// ValidationLevel controls the strictness of ValidateCheckpoint.
type ValidationLevel int

const (
	// ValidationStrict also rejects non-finite parameter values.
	ValidationStrict ValidationLevel = iota
	// ValidationNormal checks structure only (default for Decode).
	ValidationNormal
	// ValidationNone skips validation (use only with trusted input).
	ValidationNone
)

// ParamCount returns the number of parameters the architecture describes, or an
// error if it is not a buildable MLP.
func ParamCount(spec ModelSpec) (int, error) {
	if spec.InFeatures <= 0 {
		return 0, &FieldError{Field: "model.in_features", Details: "must be positive"}
	}
	if len(spec.Sizes) == 0 {
		return 0, &FieldError{Field: "model.sizes", Details: "must not be empty"}
	}

	total, nin := 0, spec.InFeatures
	for i, s := range spec.Sizes {
		if s <= 0 {
			return 0, &FieldError{Field: fmt.Sprintf("model.sizes[%d]", i), Details: "must be positive"}
		}
		// Check before multiplying so a crafted architecture cannot overflow.
		if nin+1 > MaxParamCount/s || total > MaxParamCount-s*(nin+1) {
			return 0, &FieldError{
				Field:   "model.sizes",
				Details: fmt.Sprintf("describes more than %d parameters", MaxParamCount),
			}
		}
		total += s * (nin + 1)
		nin = s
	}
	return total, nil
}

// ValidateModelSpec checks that spec describes a buildable MLP.
func ValidateModelSpec(spec ModelSpec) error {
	if _, err := ParamCount(spec); err != nil {
		return err
	}
	if _, err := nn.ParseActivation(spec.Activation); err != nil {
		return &FieldError{Field: "model.activation", Details: err.Error()}
	}
	return nil
}

// ValidateParamName rejects empty or oversized names and names containing
// separators or NUL bytes.
func ValidateParamName(name string) error {
	if name == "" {
		return &FieldError{Field: "params", Details: "empty parameter name"}
	}
	if len(name) > MaxParamNameLen {
		return &FieldError{
			Field:   "params",
			Details: fmt.Sprintf("name length %d > max %d", len(name), MaxParamNameLen),
		}
	}
	if strings.ContainsAny(name, "\x00/\\ ") {
		return &FieldError{Field: "params", Details: fmt.Sprintf("invalid character in %q", name)}
	}
	return nil
}

// ValidateCheckpoint performs structural validation of a decoded checkpoint.
//
// Parameter names are checked for shape and count only; matching them
// against the architecture is left to Restore.
func ValidateCheckpoint(c *Checkpoint, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	if err := ValidateModelSpec(c.Model); err != nil {
		return err
	}
	want, _ := ParamCount(c.Model)
	if len(c.Params) != want {
		return &FieldError{
			Field:   "params",
			Details: fmt.Sprintf("got %d values, architecture has %d", len(c.Params), want),
		}
	}

	for name, v := range c.Params {
		if err := ValidateParamName(name); err != nil {
			return err
		}
		if level == ValidationStrict && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return &FieldError{Field: "params", Details: fmt.Sprintf("%q is not finite", name)}
		}
	}

	if c.Meta.Epoch < 0 || c.Meta.Step < 0 {
		return &FieldError{Field: "meta", Details: "progress counters must not be negative"}
	}
	return nil
}
