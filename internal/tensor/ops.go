package tensor

// Add performs element-wise addition with broadcasting.
//
//	a := tensor.Zeros[float32](Shape{3, 5}, backend)
//	b := tensor.Full[float32](Shape{1, 5}, 1, backend)
//	c := a.Add(b) // Shape: [3, 5]
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// MatMul performs 2-D matrix multiplication: (M, K) @ (K, N) → (M, N).
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.MatMul(t.raw, other.raw), t.backend)
}

// Transpose swaps the axes of a 2-D tensor.
func (t *Tensor[T, B]) Transpose() *Tensor[T, B] {
	return New[T, B](t.backend.Transpose(t.raw), t.backend)
}

// ReLU applies max(0, x) element-wise.
func (t *Tensor[T, B]) ReLU() *Tensor[T, B] {
	return New[T, B](t.backend.ReLU(t.raw), t.backend)
}

// Equal compares two same-shaped tensors element-wise.
func (t *Tensor[T, B]) Equal(other *Tensor[T, B]) *Tensor[bool, B] {
	return New[bool, B](t.backend.Equal(t.raw, other.raw), t.backend)
}

// Sum computes the sum of all elements, returning a scalar tensor.
func (t *Tensor[T, B]) Sum() *Tensor[T, B] {
	return New[T, B](t.backend.Sum(t.raw), t.backend)
}

// Argmax returns the index of the maximum value along dim.
//
// The result is int32 with dim removed. Negative dims count from the end.
// Ties resolve to the lowest index. A NaN counts as the maximum.
//
//	x, _ := tensor.FromSlice([]float32{0.1, 0.9, 0.8, 0.2}, Shape{2, 2}, backend)
//	x.Argmax(1) // [1, 0]
func (t *Tensor[T, B]) Argmax(dim int) *Tensor[int32, B] {
	return New[int32, B](t.backend.Argmax(t.raw, dim), t.backend)
}

// Int32 casts the tensor to int32.
func (t *Tensor[T, B]) Int32() *Tensor[int32, B] {
	return Cast[int32](t)
}

// Float64 casts the tensor to float64.
func (t *Tensor[T, B]) Float64() *Tensor[float64, B] {
	return Cast[float64](t)
}

// Cast converts t to element type U.
func Cast[U, T DType, B Backend](t *Tensor[T, B]) *Tensor[U, B] {
	return New[U, B](t.backend.Cast(t.raw, DataTypeOf[U]()), t.backend)
}
