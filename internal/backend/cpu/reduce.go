package cpu

import (
	"github.com/gomlx/exceptions"

	"github.com/mininlp/mininlp/internal/tensor"
)

// Sum reduces all elements to a scalar (empty shape) of the same dtype.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("sum", tensor.Shape{}, x.DType())

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = sum(x.AsFloat32())
	case tensor.Float64:
		result.AsFloat64()[0] = sum(x.AsFloat64())
	case tensor.Int32:
		result.AsInt32()[0] = sum(x.AsInt32())
	case tensor.Int64:
		result.AsInt64()[0] = sum(x.AsInt64())
	default:
		exceptions.Panicf("sum: unsupported dtype %s", x.DType())
	}
	return result
}

func sum[T number](data []T) T {
	var total T
	for _, v := range data {
		total += v
	}
	return total
}

// Argmax returns the index of the maximum value along dim.
//
// The result is an int32 tensor with dim removed; reducing a 1-D tensor
// yields a scalar. Ties resolve to the lowest index.
func (cpu *CPUBackend) Argmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		exceptions.Panicf("argmax: dimension %d out of range for shape %v", dim, shape)
	}

	outShape := make(tensor.Shape, 0, ndim-1)
	for i := 0; i < ndim; i++ {
		if i != dim {
			outShape = append(outShape, shape[i])
		}
	}
	result := cpu.newResult("argmax", outShape, tensor.Int32)

	switch x.DType() {
	case tensor.Float32:
		argmax(x.AsFloat32(), result.AsInt32(), shape, dim)
	case tensor.Float64:
		argmax(x.AsFloat64(), result.AsInt32(), shape, dim)
	case tensor.Int32:
		argmax(x.AsInt32(), result.AsInt32(), shape, dim)
	case tensor.Int64:
		argmax(x.AsInt64(), result.AsInt32(), shape, dim)
	default:
		exceptions.Panicf("argmax: unsupported dtype %s", x.DType())
	}
	return result
}

// argmax writes one index per reduction group. Groups are enumerated in
// row-major order of the remaining dimensions, which matches the layout of
// the output tensor.
func argmax[T number](data []T, result []int32, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	dimSize := shape[dim]
	dimStride := strides[dim]

	for group := range result {
		baseIdx := 0
		remaining := group
		for i := len(shape) - 1; i >= 0; i-- {
			if i == dim {
				continue
			}
			coord := remaining % shape[i]
			remaining /= shape[i]
			baseIdx += coord * strides[i]
		}

		// Strict > keeps the first maximum. The first NaN wins outright.
		maxVal := data[baseIdx]
		maxIdx := 0
		for i := 1; i < dimSize && maxVal == maxVal; i++ {
			v := data[baseIdx+i*dimStride]
			if v != v || v > maxVal {
				maxVal = v
				maxIdx = i
			}
		}
		//nolint:gosec // G115: dimension size < 2^31.
		result[group] = int32(maxIdx)
	}
}
