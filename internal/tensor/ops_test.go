package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mininlp/mininlp/internal/backend/cpu"
	"github.com/mininlp/mininlp/internal/tensor"
)

func TestFromSlice(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, x.Shape())
	assert.Equal(t, tensor.Float32, x.DType())
	assert.Equal(t, float32(6), x.At(1, 2))
	assert.Equal(t, "Tensor[float32][2 3] on CPU", x.String())

	_, err = tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}, backend)
	assert.Error(t, err)

	assert.Panics(t, func() { x.At(2, 0) })
	assert.Panics(t, func() { x.Item() })
}

func TestTensorOps(t *testing.T) {
	backend := cpu.New()

	scores, err := tensor.FromSlice([]float64{0.1, 0.9, 0.8, 0.2, 0.3, 0.7}, tensor.Shape{3, 2}, backend)
	require.NoError(t, err)

	top := scores.Argmax(1)
	assert.Equal(t, []int32{1, 0, 1}, top.Data())

	labels, err := tensor.FromSlice([]int64{1, 0, 0}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	hits := top.Equal(labels.Int32())
	assert.Equal(t, []bool{true, true, false}, hits.Data())
	assert.Equal(t, int32(2), hits.Int32().Sum().Item())
	assert.Equal(t, 2.0, hits.Int32().Float64().Sum().Item())
}

func TestTensorLinearAlgebra(t *testing.T) {
	backend := cpu.New()

	x, _ := tensor.FromSlice([]float32{1, -2, 3, -4}, tensor.Shape{2, 2}, backend)
	w, _ := tensor.FromSlice([]float32{1, 0, 0, 1, 1, 1}, tensor.Shape{3, 2}, backend)
	b := tensor.Full[float32](tensor.Shape{1, 3}, 0.5, backend)

	// x @ w.T + b
	out := x.MatMul(w.Transpose()).Add(b)
	assert.Equal(t, tensor.Shape{2, 3}, out.Shape())
	assert.Equal(t, []float32{1.5, -1.5, -0.5, 3.5, -3.5, -0.5}, out.Data())
	assert.Equal(t, []float32{1.5, 0, 0, 3.5, 0, 0}, out.ReLU().Data())
}

func TestClone(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[int32](tensor.Shape{3}, backend)
	y := x.Clone()
	x.Data()[0] = 7
	assert.Equal(t, int32(0), y.Data()[0])
}
