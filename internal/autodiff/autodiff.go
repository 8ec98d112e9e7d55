// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Every arithmetic operation on a *Value creates a new node that remembers
// its producers and a closure that knows how to push gradient back into them.
// Calling Backward on the final node walks the recorded graph in reverse
// topological order and accumulates exact gradients into every upstream node.
//
// Architecture:
//   - Value: a graph node holding data, an accumulated gradient and provenance
//   - Operations: Add, Mul, Pow, Neg, Sub, Div, Exp, Log, Tanh, Sigmoid, ReLU
//   - Backward: post-order DFS, reversed, then per-node backward closures
//
// Usage:
//
//	x := autodiff.NewValue(2.0)
//	y := x.Pow(2).Add(x.Mul(autodiff.Const(3))).Add(autodiff.Const(1))
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x + 3 = 7
//
// A graph must not be mutated from more than one goroutine at a time.
package autodiff

import "fmt"

// Value is a node in the computation graph.
//
// The gradient only ever accumulates during backward propagation, because a
// node may feed many downstream consumers (fan-out). Reset it explicitly with
// ZeroGrad between independent backward passes.
type Value struct {
	data     float64  // Forward value
	grad     float64  // d(output)/d(this), accumulated
	prev     []*Value // Producers, in operand order
	backward func()   // Distributes grad into prev; nil for leaves
	op       string   // Label for introspection only
}

// NewValue creates a leaf node with no producers and zero gradient.
//
// Any float64 is accepted; NaN and Inf propagate through arithmetic.
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// newNode creates a node produced by op from the given producers.
func newNode(data float64, op string, prev ...*Value) *Value {
	return &Value{
		data: data,
		prev: prev,
		op:   op,
	}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the forward value.
//
// Optimizers use this to update parameters after a backward pass. It does not
// recompute nodes that were built from v.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad overwrites the accumulated gradient.
func (v *Value) SetGrad(grad float64) {
	v.grad = grad
}

// ZeroGrad resets the gradient to 0.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the label of the operation that produced v ("" for leaves).
func (v *Value) Op() string {
	return v.op
}

// Producers returns the direct inputs of v in operand order.
//
// The returned slice is a copy; the graph itself cannot be rewired.
func (v *Value) Producers() []*Value {
	if len(v.prev) == 0 {
		return nil
	}
	out := make([]*Value, len(v.prev))
	copy(out, v.prev)
	return out
}

// IsLeaf reports whether v has no producers.
func (v *Value) IsLeaf() bool {
	return len(v.prev) == 0
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
}

// Operand is anything that can take part in an operation.
//
// *Value is used as-is; Const is promoted to a fresh leaf.
type Operand interface {
	AsValue() *Value
}

// AsValue returns v itself.
func (v *Value) AsValue() *Value {
	return v
}

// Const is a literal operand.
//
// A promoted constant is a leaf nobody else references, so whatever gradient
// reaches it is simply dropped with the graph.
//
//	y := x.Mul(autodiff.Const(3))
type Const float64

// AsValue promotes c to a new leaf node.
func (c Const) AsValue() *Value {
	return NewValue(float64(c))
}
