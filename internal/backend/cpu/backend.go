// Package cpu implements the pure-Go CPU backend.
package cpu

import (
	"github.com/gomlx/exceptions"

	"github.com/mininlp/mininlp/internal/tensor"
)

// CPUBackend implements tensor.Backend on the CPU.
//
// It holds no mutable state, so a single instance can be shared between
// goroutines.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

type number interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// newResult allocates an output tensor; shapes reaching here were already
// derived from valid inputs, so failure is a bug.
func (cpu *CPUBackend) newResult(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, cpu.device)
	if err != nil {
		exceptions.Panicf("%s: failed to create result tensor: %v", op, err)
	}
	return result
}

func sameDType(op string, a, b *tensor.RawTensor) {
	if a.DType() != b.DType() {
		exceptions.Panicf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType())
	}
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	sameDType("add", a, b)
	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		exceptions.Panicf("add: %v", err)
	}
	result := cpu.newResult("add", outShape, a.DType())

	switch a.DType() {
	case tensor.Float32:
		addBroadcast(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	case tensor.Float64:
		addBroadcast(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape)
	case tensor.Int32:
		addBroadcast(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape)
	case tensor.Int64:
		addBroadcast(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape)
	default:
		exceptions.Panicf("add: unsupported dtype %s", a.DType())
	}
	return result
}

// addBroadcast walks the output in row-major order and maps each output
// coordinate back to both inputs, treating size-1 and missing dimensions as
// broadcast.
func addBroadcast[T number](dst, a, b []T, aShape, bShape, outShape tensor.Shape) {
	if aShape.Equal(bShape) {
		for i := range dst {
			dst[i] = a[i] + b[i]
		}
		return
	}

	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)
	coord := make([]int, len(outShape))
	for i := range dst {
		aIdx, bIdx := 0, 0
		for d, c := range coord {
			aIdx += c * aStrides[d]
			bIdx += c * bStrides[d]
		}
		dst[i] = a[aIdx] + b[bIdx]

		for d := len(coord) - 1; d >= 0; d-- {
			coord[d]++
			if coord[d] < outShape[d] {
				break
			}
			coord[d] = 0
		}
	}
}

// broadcastStrides returns strides of shape aligned to outShape, with 0 for
// broadcast dimensions.
func broadcastStrides(shape, outShape tensor.Shape) []int {
	strides := make([]int, len(outShape))
	src := shape.ComputeStrides()
	offset := len(outShape) - len(shape)
	for i := range shape {
		if shape[i] != 1 {
			strides[offset+i] = src[i]
		}
	}
	return strides
}

// MatMul performs 2-D matrix multiplication.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	sameDType("matmul", a, b)
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		exceptions.Panicf("matmul: only 2D tensors supported, got shapes %v and %v", aShape, bShape)
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		exceptions.Panicf("matmul: shape mismatch %v @ %v", aShape, bShape)
	}
	result := cpu.newResult("matmul", tensor.Shape{m, n}, a.DType())

	switch a.DType() {
	case tensor.Float32:
		matmul(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
	case tensor.Float64:
		matmul(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n)
	case tensor.Int32:
		matmul(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, k, n)
	case tensor.Int64:
		matmul(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, k, n)
	default:
		exceptions.Panicf("matmul: unsupported dtype %s", a.DType())
	}
	return result
}

// matmul uses i-k-j loop order so the inner loop walks both b and dst
// contiguously.
func matmul[T number](dst, a, b []T, m, k, n int) {
	for i := 0; i < m; i++ {
		row := dst[i*n : (i+1)*n]
		for p := 0; p < k; p++ {
			aip := a[i*k+p]
			bRow := b[p*n : (p+1)*n]
			for j := range row {
				row[j] += aip * bRow[j]
			}
		}
	}
}

// Transpose swaps the axes of a 2-D tensor.
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) != 2 {
		exceptions.Panicf("transpose: expected 2D tensor, got shape %v", shape)
	}
	rows, cols := shape[0], shape[1]
	result := cpu.newResult("transpose", tensor.Shape{cols, rows}, x.DType())

	switch x.DType() {
	case tensor.Float32:
		transpose(result.AsFloat32(), x.AsFloat32(), rows, cols)
	case tensor.Float64:
		transpose(result.AsFloat64(), x.AsFloat64(), rows, cols)
	case tensor.Int32:
		transpose(result.AsInt32(), x.AsInt32(), rows, cols)
	case tensor.Int64:
		transpose(result.AsInt64(), x.AsInt64(), rows, cols)
	case tensor.Bool:
		transpose(result.AsBool(), x.AsBool(), rows, cols)
	default:
		exceptions.Panicf("transpose: unsupported dtype %s", x.DType())
	}
	return result
}

func transpose[T tensor.DType](dst, src []T, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
}

// ReLU applies max(0, x) element-wise.
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("relu", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		relu(result.AsFloat32(), x.AsFloat32())
	case tensor.Float64:
		relu(result.AsFloat64(), x.AsFloat64())
	case tensor.Int32:
		relu(result.AsInt32(), x.AsInt32())
	case tensor.Int64:
		relu(result.AsInt64(), x.AsInt64())
	default:
		exceptions.Panicf("relu: unsupported dtype %s", x.DType())
	}
	return result
}

func relu[T number](dst, src []T) {
	for i, v := range src {
		if v > 0 {
			dst[i] = v
		}
	}
}
