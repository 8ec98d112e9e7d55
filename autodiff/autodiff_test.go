// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"bytes"
	"testing"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublicAPI exercises the exported wrappers end to end.
func TestPublicAPI(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(-3)
	c := a.Mul(b).Add(autodiff.Const(10))

	c.Backward()
	assert.Equal(t, 4.0, c.Data())
	assert.Equal(t, -3.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())

	order := autodiff.TopoSort(c)
	require.NotEmpty(t, order)
	assert.Same(t, c, order[len(order)-1])

	autodiff.ZeroGrads(c)
	for _, v := range order {
		assert.Equal(t, 0.0, v.Grad())
	}

	d := autodiff.Dot([]*autodiff.Value{a, b}, []*autodiff.Value{b, a})
	assert.Equal(t, -12.0, d.Data())
	assert.Equal(t, 0.0, autodiff.Sum().Data())

	var buf bytes.Buffer
	require.NoError(t, autodiff.WriteDOT(&buf, c))
	assert.Contains(t, buf.String(), "digraph")
}
