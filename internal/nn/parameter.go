package nn

import (
	"github.com/mininlp/mininlp/internal/tensor"
)

// Parameter represents a named parameter tensor of a neural network.
//
// Parameters are trainable by default. A frozen parameter (RequiresGrad
// false) keeps its values fixed during optimization and is left out of
// CountParameters.
//
// Example:
//
//	weight := nn.NewParameter("weight", weightTensor)
//	weight.SetRequiresGrad(false) // freeze
type Parameter[B tensor.Backend] struct {
	name         string
	tensor       *tensor.Tensor[float32, B]
	grad         *tensor.Tensor[float32, B] // nil until a backward pass sets it
	requiresGrad bool
}

// NewParameter creates a new trainable parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:         name,
		tensor:       t,
		requiresGrad: true,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// NumElements returns the number of scalar values held by the parameter.
func (p *Parameter[B]) NumElements() int {
	return p.tensor.NumElements()
}

// RequiresGrad reports whether the parameter is trainable.
func (p *Parameter[B]) RequiresGrad() bool {
	return p.requiresGrad
}

// SetRequiresGrad marks the parameter as trainable (true) or frozen (false).
//
// Freezing drops any gradient already stored.
func (p *Parameter[B]) SetRequiresGrad(requiresGrad bool) {
	p.requiresGrad = requiresGrad
	if !requiresGrad {
		p.grad = nil
	}
}

// Grad returns the gradient tensor, or nil if none has been computed.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float32, B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
