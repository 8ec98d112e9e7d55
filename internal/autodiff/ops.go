package autodiff

import "math"

// Add returns v + other.
//
// d/dv = 1, d/dother = 1.
func (v *Value) Add(other Operand) *Value {
	o := other.AsValue()
	out := newNode(v.data+o.data, "+", v, o)
	out.backward = func() {
		v.grad += out.grad
		o.grad += out.grad
	}
	return out
}

// Mul returns v * other.
//
// d/dv = other, d/dother = v.
func (v *Value) Mul(other Operand) *Value {
	o := other.AsValue()
	out := newNode(v.data*o.data, "*", v, o)
	out.backward = func() {
		v.grad += o.data * out.grad
		o.grad += v.data * out.grad
	}
	return out
}

// Pow returns v raised to a fixed exponent.
//
// The exponent is a plain number, not a graph node, so only v receives
// gradient: d/dv = p * v^(p-1).
func (v *Value) Pow(p float64) *Value {
	out := newNode(math.Pow(v.data, p), "pow", v)
	out.backward = func() {
		v.grad += p * math.Pow(v.data, p-1) * out.grad
	}
	return out
}

// Neg returns -v.
func (v *Value) Neg() *Value {
	out := newNode(-v.data, "neg", v)
	out.backward = func() {
		v.grad -= out.grad
	}
	return out
}

// Sub returns v - other as a single node.
//
// d/dv = 1, d/dother = -1.
func (v *Value) Sub(other Operand) *Value {
	o := other.AsValue()
	out := newNode(v.data-o.data, "-", v, o)
	out.backward = func() {
		v.grad += out.grad
		o.grad -= out.grad
	}
	return out
}

// Div returns v / other as a single node.
//
// Division by zero follows IEEE-754 (±Inf or NaN) rather than failing.
// d/dv = 1/other, d/dother = -v/other².
func (v *Value) Div(other Operand) *Value {
	o := other.AsValue()
	out := newNode(v.data/o.data, "/", v, o)
	out.backward = func() {
		v.grad += out.grad / o.data
		o.grad += -v.data / (o.data * o.data) * out.grad
	}
	return out
}

// Exp returns e^v. The local derivative is the output itself.
func (v *Value) Exp() *Value {
	out := newNode(math.Exp(v.data), "exp", v)
	out.backward = func() {
		v.grad += out.data * out.grad
	}
	return out
}

// Log returns the natural logarithm of v.
//
// d/dv = 1/v. Non-positive inputs yield NaN or -Inf.
func (v *Value) Log() *Value {
	out := newNode(math.Log(v.data), "log", v)
	out.backward = func() {
		v.grad += out.grad / v.data
	}
	return out
}

// Tanh returns tanh(v).
//
// Reuses the output: d/dv = 1 - tanh²(v).
func (v *Value) Tanh() *Value {
	out := newNode(math.Tanh(v.data), "tanh", v)
	out.backward = func() {
		v.grad += (1 - out.data*out.data) * out.grad
	}
	return out
}

// Sigmoid returns 1 / (1 + e^-v).
//
// d/dv = σ(v) * (1 - σ(v)).
func (v *Value) Sigmoid() *Value {
	out := newNode(sigmoid(v.data), "sigmoid", v)
	out.backward = func() {
		v.grad += out.data * (1 - out.data) * out.grad
	}
	return out
}

// ReLU returns max(0, v).
//
// The derivative at exactly 0 is taken as 0.
func (v *Value) ReLU() *Value {
	out := newNode(math.Max(0, v.data), "relu", v)
	out.backward = func() {
		if v.data > 0 {
			v.grad += out.grad
		}
	}
	return out
}

// sigmoid is split by sign so large |x| never overflows exp.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// Sum adds all values left to right. An empty sum is a zero leaf.
func Sum(vals ...*Value) *Value {
	if len(vals) == 0 {
		return NewValue(0)
	}
	acc := vals[0]
	for _, v := range vals[1:] {
		acc = acc.Add(v)
	}
	return acc
}

// Dot returns Σ a[i]*b[i].
//
// Panics if the slices have different lengths.
func Dot(a, b []*Value) *Value {
	if len(a) != len(b) {
		panic("Dot: operands must have the same length")
	}
	terms := make([]*Value, len(a))
	for i := range a {
		terms[i] = a[i].Mul(b[i])
	}
	return Sum(terms...)
}
