// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Every arithmetic operation on a Value records a node in a computation
// graph. Calling Backward on the final node fills in the gradient of that
// node with respect to every Value that contributed to it.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    a := autodiff.NewValue(2)
//	    b := autodiff.NewValue(-3)
//	    c := a.Mul(b).Add(autodiff.Const(10)) // c = a*b + 10
//
//	    c.Backward()
//	    fmt.Println(a.Grad(), b.Grad()) // -3 2
//	}
//
// Gradients accumulate. Reset them with ZeroGrads or Value.ZeroGrad before
// building and differentiating a new graph over the same leaves.
package autodiff

import (
	"io"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Value is a scalar node in the computation graph.
type Value = autodiff.Value

// Operand is anything that can take part in an operation as a Value.
//
// *Value and Const both implement it.
type Operand = autodiff.Operand

// Const is a literal that is promoted to a fresh leaf when used as an operand.
//
// Example:
//
//	y := x.Mul(autodiff.Const(2)).Sub(autodiff.Const(1))
type Const = autodiff.Const

// NewValue creates a leaf node holding data with a zero gradient.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// Sum adds vals as one graph. An empty call returns a zero leaf.
func Sum(vals ...*Value) *Value {
	return autodiff.Sum(vals...)
}

// Dot returns the inner product of a and b. It panics on a length mismatch.
func Dot(a, b []*Value) *Value {
	return autodiff.Dot(a, b)
}

// TopoSort returns every node reachable from out, producers before consumers.
func TopoSort(out *Value) []*Value {
	return autodiff.TopoSort(out)
}

// ZeroGrads resets the gradient of every node reachable from out.
func ZeroGrads(out *Value) {
	autodiff.ZeroGrads(out)
}

// WriteDOT writes the graph rooted at out in Graphviz DOT format.
//
// Example:
//
//	f, _ := os.Create("graph.dot")
//	defer f.Close()
//	_ = autodiff.WriteDOT(f, loss)
func WriteDOT(w io.Writer, out *Value) error {
	return autodiff.WriteDOT(w, out)
}
