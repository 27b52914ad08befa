package tensor

// Backend defines the operations a compute backend must provide.
//
// Operations panic on programmer errors (incompatible shapes, unsupported
// dtypes); they never return partially computed results.
type Backend interface {
	// Element-wise arithmetic, with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor

	// MatMul multiplies two 2-D tensors: [M, K] @ [K, N] -> [M, N].
	MatMul(a, b *RawTensor) *RawTensor

	// Transpose swaps the two axes of a 2-D tensor.
	Transpose(x *RawTensor) *RawTensor

	// ReLU applies max(0, x) element-wise.
	ReLU(x *RawTensor) *RawTensor

	// Equal returns a == b element-wise as a bool tensor.
	Equal(a, b *RawTensor) *RawTensor

	// Sum reduces all elements to a scalar of the same dtype.
	Sum(x *RawTensor) *RawTensor

	// Argmax returns int32 indices of the maximum along dim, with that
	// dimension removed. Ties resolve to the lowest index; the first NaN
	// counts as the maximum.
	Argmax(x *RawTensor, dim int) *RawTensor

	// Cast converts to a different data type.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	Name() string
	Device() Device
}
