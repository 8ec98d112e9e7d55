package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// runDot builds o = tanh(x1*w1 + x2*w2 + b), backpropagates, and writes the
// resulting graph in DOT format.
func runDot(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("dot", flag.ContinueOnError)
	fs.SetOutput(w)
	out := fs.String("o", "", "write to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	x1, x2 := autodiff.NewValue(2), autodiff.NewValue(0)
	w1, w2 := autodiff.NewValue(-3), autodiff.NewValue(1)
	b := autodiff.NewValue(6.8813735870195432)
	o := x1.Mul(w1).Add(x2.Mul(w2)).Add(b).Tanh()
	o.Backward()

	if *out == "" {
		return autodiff.WriteDOT(w, o)
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	if err := autodiff.WriteDOT(f, o); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
