package cpu

import (
	"github.com/gomlx/exceptions"

	"github.com/mininlp/mininlp/internal/tensor"
)

// Cast converts the tensor to a different data type.
//
// Returns x itself when the dtype already matches. Bool converts to 1/0 and
// any non-zero number converts to true.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}
	result := cpu.newResult("cast", x.Shape(), dtype)

	switch x.DType() {
	case tensor.Float32:
		castFrom(result, x.AsFloat32())
	case tensor.Float64:
		castFrom(result, x.AsFloat64())
	case tensor.Int32:
		castFrom(result, x.AsInt32())
	case tensor.Int64:
		castFrom(result, x.AsInt64())
	case tensor.Bool:
		castFromBool(result, x.AsBool())
	default:
		exceptions.Panicf("cast: unsupported source dtype %s", x.DType())
	}
	return result
}

func castFrom[T number](result *tensor.RawTensor, src []T) {
	switch result.DType() {
	case tensor.Float32:
		convert(result.AsFloat32(), src)
	case tensor.Float64:
		convert(result.AsFloat64(), src)
	case tensor.Int32:
		convert(result.AsInt32(), src)
	case tensor.Int64:
		convert(result.AsInt64(), src)
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		exceptions.Panicf("cast: unsupported target dtype %s", result.DType())
	}
}

func convert[D, S number](dst []D, src []S) {
	for i, v := range src {
		dst[i] = D(v)
	}
}

func castFromBool(result *tensor.RawTensor, src []bool) {
	switch result.DType() {
	case tensor.Float32:
		fromBool(result.AsFloat32(), src)
	case tensor.Float64:
		fromBool(result.AsFloat64(), src)
	case tensor.Int32:
		fromBool(result.AsInt32(), src)
	case tensor.Int64:
		fromBool(result.AsInt64(), src)
	default:
		exceptions.Panicf("cast: unsupported target dtype %s", result.DType())
	}
}

func fromBool[T number](dst []T, src []bool) {
	for i, v := range src {
		if v {
			dst[i] = 1
		}
	}
}
