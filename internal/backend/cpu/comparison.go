package cpu

import (
	"github.com/gomlx/exceptions"

	"github.com/mininlp/mininlp/internal/tensor"
)

// Equal returns a == b element-wise as a bool tensor.
//
// Both operands must have the same shape and dtype.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	sameDType("equal", a, b)
	if !a.Shape().Equal(b.Shape()) {
		exceptions.Panicf("equal: shape mismatch %v vs %v", a.Shape(), b.Shape())
	}
	result := cpu.newResult("equal", a.Shape(), tensor.Bool)
	dst := result.AsBool()

	switch a.DType() {
	case tensor.Float32:
		equal(dst, a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		equal(dst, a.AsFloat64(), b.AsFloat64())
	case tensor.Int32:
		equal(dst, a.AsInt32(), b.AsInt32())
	case tensor.Int64:
		equal(dst, a.AsInt64(), b.AsInt64())
	case tensor.Bool:
		equal(dst, a.AsBool(), b.AsBool())
	default:
		exceptions.Panicf("equal: unsupported dtype %s", a.DType())
	}
	return result
}

func equal[T tensor.DType](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] == b[i]
	}
}
