// Package nn implements the neural network building blocks and the model
// utilities used by training loops: trainable parameter counting and batch
// accuracy.
package nn

import (
	"github.com/mininlp/mininlp/internal/tensor"
)

// ParameterLister is anything that exposes a collection of parameters.
//
// It is the only capability CountParameters, Freeze and Summarize need, so
// models that are not full Modules (e.g. a bag of embeddings) can still be
// inspected.
type ParameterLister[B tensor.Backend] interface {
	// Parameters returns all parameters, including nested ones and frozen
	// ones. The order must be stable between calls.
	Parameters() []*Parameter[B]
}

// Module is the base interface for all neural network components.
//
//	model := nn.NewSequential[Backend](
//	    nn.NewLinear(768, 128, backend),
//	    nn.NewReLU[Backend](),
//	    nn.NewLinear(128, 2, backend),
//	)
type Module[B tensor.Backend] interface {
	ParameterLister[B]

	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]
}
