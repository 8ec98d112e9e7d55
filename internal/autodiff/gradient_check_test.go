package autodiff_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
)

const (
	fdStep      = 1e-5
	fdTolerance = 1e-3
)

var fdSettings = &fd.Settings{Formula: fd.Central, Step: fdStep}

// numericalGradient computes the centered finite difference of f at x.
func numericalGradient(f func(float64) float64, x float64) float64 {
	return fd.Derivative(f, x, fdSettings)
}

// numericalGradient2 computes both partial derivatives of f at (x, y).
func numericalGradient2(f func(x, y *autodiff.Value) *autodiff.Value, x, y float64) (float64, float64) {
	g := fd.Gradient(nil, func(p []float64) float64 {
		return f(autodiff.NewValue(p[0]), autodiff.NewValue(p[1])).Data()
	}, []float64{x, y}, fdSettings)
	return g[0], g[1]
}

// assertGradClose compares analytic and numerical gradients with a tolerance
// that scales with their magnitude.
func assertGradClose(t *testing.T, analytic, numerical float64, msgAndArgs ...any) {
	t.Helper()
	tol := fdTolerance * math.Max(1, math.Abs(numerical))
	assert.InDelta(t, numerical, analytic, tol, msgAndArgs...)
}

// unaryCase describes a single-input operation and its valid domain.
type unaryCase struct {
	name   string
	build  func(x *autodiff.Value) *autodiff.Value
	lo, hi float64
}

// binaryCase describes a two-input operation and its valid domain.
type binaryCase struct {
	name  string
	build func(x, y *autodiff.Value) *autodiff.Value
	xLo   float64
	xHi   float64
	yLo   float64
	yHi   float64
}

// sample draws a point from [lo, hi] that keeps clear of zero by more than
// the finite-difference step, so kinks at zero are never straddled.
func sample(rng *rand.Rand, lo, hi float64) float64 {
	for {
		x := lo + rng.Float64()*(hi-lo)
		if math.Abs(x) > 1e-2 {
			return x
		}
	}
}

// TestNumericalGradient_Unary checks every single-input operation.
func TestNumericalGradient_Unary(t *testing.T) {
	cases := []unaryCase{
		{"Pow2", func(x *autodiff.Value) *autodiff.Value { return x.Pow(2) }, -3, 3},
		{"Pow3", func(x *autodiff.Value) *autodiff.Value { return x.Pow(3) }, -2, 2},
		{"PowFractional", func(x *autodiff.Value) *autodiff.Value { return x.Pow(0.5) }, 0.1, 4},
		{"PowNegative", func(x *autodiff.Value) *autodiff.Value { return x.Pow(-1) }, 0.5, 4},
		{"Neg", func(x *autodiff.Value) *autodiff.Value { return x.Neg() }, -5, 5},
		{"Exp", func(x *autodiff.Value) *autodiff.Value { return x.Exp() }, -3, 3},
		{"Log", func(x *autodiff.Value) *autodiff.Value { return x.Log() }, 0.1, 5},
		{"Tanh", func(x *autodiff.Value) *autodiff.Value { return x.Tanh() }, -3, 3},
		{"Sigmoid", func(x *autodiff.Value) *autodiff.Value { return x.Sigmoid() }, -6, 6},
		{"ReLU", func(x *autodiff.Value) *autodiff.Value { return x.ReLU() }, -3, 3},
	}

	rng := rand.New(rand.NewSource(7))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				x0 := sample(rng, tc.lo, tc.hi)

				x := autodiff.NewValue(x0)
				tc.build(x).Backward()

				f := func(v float64) float64 { return tc.build(autodiff.NewValue(v)).Data() }
				assertGradClose(t, x.Grad(), numericalGradient(f, x0), "x=%g", x0)
			}
		})
	}
}

// TestNumericalGradient_Binary checks every two-input operation in both operands.
func TestNumericalGradient_Binary(t *testing.T) {
	cases := []binaryCase{
		{"Add", func(x, y *autodiff.Value) *autodiff.Value { return x.Add(y) }, -5, 5, -5, 5},
		{"Mul", func(x, y *autodiff.Value) *autodiff.Value { return x.Mul(y) }, -5, 5, -5, 5},
		{"Sub", func(x, y *autodiff.Value) *autodiff.Value { return x.Sub(y) }, -5, 5, -5, 5},
		{"Div", func(x, y *autodiff.Value) *autodiff.Value { return x.Div(y) }, -5, 5, 0.5, 5},
	}

	rng := rand.New(rand.NewSource(11))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				x0 := sample(rng, tc.xLo, tc.xHi)
				y0 := sample(rng, tc.yLo, tc.yHi)

				x := autodiff.NewValue(x0)
				y := autodiff.NewValue(y0)
				tc.build(x, y).Backward()

				dx, dy := numericalGradient2(tc.build, x0, y0)
				assertGradClose(t, x.Grad(), dx, "d/dx at (%g, %g)", x0, y0)
				assertGradClose(t, y.Grad(), dy, "d/dy at (%g, %g)", x0, y0)
			}
		})
	}
}

// TestNumericalGradient_Composite checks a nested expression with fan-out.
//
//	f(a, b) = tanh(a*b + a²) / (1 + e^b) - relu(a - b)
func TestNumericalGradient_Composite(t *testing.T) {
	build := func(a, b *autodiff.Value) *autodiff.Value {
		num := a.Mul(b).Add(a.Pow(2)).Tanh()
		den := b.Exp().Add(autodiff.Const(1))
		return num.Div(den).Sub(a.Sub(b).ReLU())
	}

	points := [][2]float64{{0.3, -0.8}, {1.2, 0.4}, {-0.7, -1.5}, {2.0, 0.1}}
	for _, p := range points {
		a := autodiff.NewValue(p[0])
		b := autodiff.NewValue(p[1])
		build(a, b).Backward()

		da, db := numericalGradient2(build, p[0], p[1])
		assertGradClose(t, a.Grad(), da, "d/da at %v", p)
		assertGradClose(t, b.Grad(), db, "d/db at %v", p)
	}
}
