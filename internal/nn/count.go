package nn

import (
	"github.com/mininlp/mininlp/internal/tensor"
)

// CountParameters returns the number of trainable scalar values in m: the
// sum of NumElements over every parameter whose RequiresGrad is true.
//
// A model without parameters, or with every parameter frozen, yields 0.
// m is not modified.
func CountParameters[B tensor.Backend](m ParameterLister[B]) int {
	total := 0
	for _, p := range m.Parameters() {
		if p.RequiresGrad() {
			total += p.NumElements()
		}
	}
	return total
}

// CountAllParameters returns the number of scalar values in m, trainable
// or not.
func CountAllParameters[B tensor.Backend](m ParameterLister[B]) int {
	total := 0
	for _, p := range m.Parameters() {
		total += p.NumElements()
	}
	return total
}

// Freeze marks every parameter of m as non-trainable.
func Freeze[B tensor.Backend](m ParameterLister[B]) {
	for _, p := range m.Parameters() {
		p.SetRequiresGrad(false)
	}
}

// Unfreeze marks every parameter of m as trainable.
func Unfreeze[B tensor.Backend](m ParameterLister[B]) {
	for _, p := range m.Parameters() {
		p.SetRequiresGrad(true)
	}
}

// ParameterInfo describes one parameter, as listed by Summarize.
type ParameterInfo struct {
	Name        string
	Shape       tensor.Shape
	NumElements int
	Trainable   bool
}

// Summarize lists m's parameters in Parameters() order.
func Summarize[B tensor.Backend](m ParameterLister[B]) []ParameterInfo {
	params := m.Parameters()
	infos := make([]ParameterInfo, 0, len(params))
	for _, p := range params {
		infos = append(infos, ParameterInfo{
			Name:        p.Name(),
			Shape:       p.Tensor().Shape().Clone(),
			NumElements: p.NumElements(),
			Trainable:   p.RequiresGrad(),
		})
	}
	return infos
}
