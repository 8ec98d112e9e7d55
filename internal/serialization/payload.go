package serialization

import (
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
)

// toStruct converts a checkpoint into its protobuf payload.
func (c *Checkpoint) toStruct() (*structpb.Struct, error) {
	sizes := make([]any, len(c.Model.Sizes))
	for i, s := range c.Model.Sizes {
		sizes[i] = s
	}

	fields := map[string]any{
		"model": map[string]any{
			"in_features": c.Model.InFeatures,
			"sizes":       sizes,
			"activation":  c.Model.Activation,
		},
		"params": floatMap(c.Params),
		"meta": map[string]any{
			"epoch":      c.Meta.Epoch,
			"step":       c.Meta.Step,
			"loss":       c.Meta.Loss,
			"created_at": c.Meta.CreatedAt.UTC().Format(time.RFC3339),
		},
	}
	if c.Optimizer != nil {
		fields["optimizer"] = map[string]any{
			"type":  c.Optimizer.Type,
			"lr":    c.Optimizer.LR,
			"state": floatMap(c.Optimizer.State),
		}
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}
	return s, nil
}

// fromStruct rebuilds a checkpoint from its protobuf payload.
func fromStruct(s *structpb.Struct) (*Checkpoint, error) {
	model, err := structField(s, "", "model")
	if err != nil {
		return nil, err
	}
	inFeatures, err := intField(model, "model", "in_features")
	if err != nil {
		return nil, err
	}
	sizes, err := intListField(model, "model", "sizes")
	if err != nil {
		return nil, err
	}
	activation, err := stringField(model, "model", "activation")
	if err != nil {
		return nil, err
	}

	paramStruct, err := structField(s, "", "params")
	if err != nil {
		return nil, err
	}
	params, err := floatsFromStruct(paramStruct, "params")
	if err != nil {
		return nil, err
	}

	meta, err := readMeta(s)
	if err != nil {
		return nil, err
	}

	ckpt := &Checkpoint{
		Model: ModelSpec{
			InFeatures: inFeatures,
			Sizes:      sizes,
			Activation: activation,
		},
		Params: params,
		Meta:   meta,
	}

	if _, ok := s.GetFields()["optimizer"]; ok {
		ckpt.Optimizer, err = readOptimizer(s)
		if err != nil {
			return nil, err
		}
	}

	return ckpt, nil
}

// readMeta parses the "meta" section.
func readMeta(s *structpb.Struct) (Meta, error) {
	meta, err := structField(s, "", "meta")
	if err != nil {
		return Meta{}, err
	}
	epoch, err := intField(meta, "meta", "epoch")
	if err != nil {
		return Meta{}, err
	}
	step, err := intField(meta, "meta", "step")
	if err != nil {
		return Meta{}, err
	}
	loss, err := numberField(meta, "meta", "loss")
	if err != nil {
		return Meta{}, err
	}
	created, err := stringField(meta, "meta", "created_at")
	if err != nil {
		return Meta{}, err
	}
	createdAt, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return Meta{}, &FieldError{Field: "meta.created_at", Details: err.Error()}
	}

	return Meta{
		Epoch:     epoch,
		Step:      int64(step),
		Loss:      loss,
		CreatedAt: createdAt,
	}, nil
}

// readOptimizer parses the optional "optimizer" section.
func readOptimizer(s *structpb.Struct) (*OptimizerState, error) {
	opt, err := structField(s, "", "optimizer")
	if err != nil {
		return nil, err
	}
	typ, err := stringField(opt, "optimizer", "type")
	if err != nil {
		return nil, err
	}
	lr, err := numberField(opt, "optimizer", "lr")
	if err != nil {
		return nil, err
	}
	stateStruct, err := structField(opt, "optimizer", "state")
	if err != nil {
		return nil, err
	}
	state, err := floatsFromStruct(stateStruct, "optimizer.state")
	if err != nil {
		return nil, err
	}
	return &OptimizerState{Type: typ, LR: lr, State: state}, nil
}

func floatMap(m map[string]float64) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func join(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func field(s *structpb.Struct, parent, name string) (*structpb.Value, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return nil, &FieldError{Field: join(parent, name), Details: "missing"}
	}
	return v, nil
}

func structField(s *structpb.Struct, parent, name string) (*structpb.Struct, error) {
	v, err := field(s, parent, name)
	if err != nil {
		return nil, err
	}
	sv, ok := v.GetKind().(*structpb.Value_StructValue)
	if !ok {
		return nil, &FieldError{Field: join(parent, name), Details: "expected object"}
	}
	return sv.StructValue, nil
}

func numberField(s *structpb.Struct, parent, name string) (float64, error) {
	v, err := field(s, parent, name)
	if err != nil {
		return 0, err
	}
	return asNumber(v, join(parent, name))
}

func asNumber(v *structpb.Value, path string) (float64, error) {
	nv, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, &FieldError{Field: path, Details: "expected number"}
	}
	return nv.NumberValue, nil
}

func asInt(v *structpb.Value, path string) (int, error) {
	f, err := asNumber(v, path)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, &FieldError{Field: path, Details: fmt.Sprintf("expected integer, got %g", f)}
	}
	return int(f), nil
}

func intField(s *structpb.Struct, parent, name string) (int, error) {
	v, err := field(s, parent, name)
	if err != nil {
		return 0, err
	}
	return asInt(v, join(parent, name))
}

func stringField(s *structpb.Struct, parent, name string) (string, error) {
	v, err := field(s, parent, name)
	if err != nil {
		return "", err
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", &FieldError{Field: join(parent, name), Details: "expected string"}
	}
	return sv.StringValue, nil
}

func intListField(s *structpb.Struct, parent, name string) ([]int, error) {
	v, err := field(s, parent, name)
	if err != nil {
		return nil, err
	}
	path := join(parent, name)
	lv, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, &FieldError{Field: path, Details: "expected list"}
	}
	values := lv.ListValue.GetValues()
	out := make([]int, len(values))
	for i, item := range values {
		n, err := asInt(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func floatsFromStruct(s *structpb.Struct, path string) (map[string]float64, error) {
	out := make(map[string]float64, len(s.GetFields()))
	for k, v := range s.GetFields() {
		f, err := asNumber(v, join(path, k))
		if err != nil {
			return nil, err
		}
		out[k] = f
	}
	return out, nil
}
