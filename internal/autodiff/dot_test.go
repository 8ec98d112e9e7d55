package autodiff_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDOT(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(-3)
	out := a.Mul(b).Tanh()
	out.Backward()

	var buf bytes.Buffer
	require.NoError(t, autodiff.WriteDOT(&buf, out))

	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph G {"))
	assert.Contains(t, dot, `label="*"`)
	assert.Contains(t, dot, `label="tanh"`)
	assert.Contains(t, dot, "data 2.0000")
	// 2 leaves + mul + tanh value nodes.
	assert.Equal(t, 4, strings.Count(dot, "shape=record"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteDOT_WriterError(t *testing.T) {
	err := autodiff.WriteDOT(failingWriter{}, autodiff.NewValue(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
