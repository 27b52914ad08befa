// Copyright 2025 The mininlp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and the model utilities used by
// training loops.
//
// # Basic Usage
//
//	backend := cpu.New()
//	model := nn.NewSequential[*cpu.Backend](
//	    nn.NewLinear(768, 256, backend),
//	    nn.NewReLU[*cpu.Backend](),
//	    nn.NewLinear(256, 2, backend),
//	)
//
//	trainable := nn.CountParameters[*cpu.Backend](model)
//	acc := nn.Accuracy(model.Forward(features), labels)
//
// # Contract violations
//
// Accuracy panics when given tensors of the wrong rank or with mismatched
// batch sizes. Such calls are bugs in the caller, not runtime conditions.
package nn

import (
	"github.com/mininlp/mininlp/internal/nn"
	"github.com/mininlp/mininlp/tensor"
)

// Module is the interface of all neural network components.
type Module[B tensor.Backend] = nn.Module[B]

// ParameterLister is anything exposing a collection of parameters.
type ParameterLister[B tensor.Backend] = nn.ParameterLister[B]

// Parameter is a named parameter tensor with a trainable flag.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// ParameterInfo describes one parameter, as listed by Summarize.
type ParameterInfo = nn.ParameterInfo

// NewParameter creates a new trainable parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Layers

// Linear is a fully connected layer.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a Linear layer with a bias and Xavier-initialized weights.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// NewLinearNoBias creates a Linear layer without a bias.
func NewLinearNoBias[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinearNoBias(inFeatures, outFeatures, backend)
}

// ReLU is the rectified linear activation.
type ReLU[B tensor.Backend] = nn.ReLU[B]

// NewReLU creates a ReLU activation.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return nn.NewReLU[B]()
}

// Sequential chains modules.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Utilities

// CountParameters returns the number of trainable scalar values in m.
func CountParameters[B tensor.Backend](m ParameterLister[B]) int {
	return nn.CountParameters(m)
}

// CountAllParameters returns the number of scalar values in m, frozen ones included.
func CountAllParameters[B tensor.Backend](m ParameterLister[B]) int {
	return nn.CountAllParameters(m)
}

// Freeze marks every parameter of m as non-trainable.
func Freeze[B tensor.Backend](m ParameterLister[B]) {
	nn.Freeze(m)
}

// Unfreeze marks every parameter of m as trainable.
func Unfreeze[B tensor.Backend](m ParameterLister[B]) {
	nn.Unfreeze(m)
}

// Summarize lists the parameters of m.
func Summarize[B tensor.Backend](m ParameterLister[B]) []ParameterInfo {
	return nn.Summarize(m)
}

// Accuracy returns the fraction of rows of predictions [batch, classes]
// whose argmax equals the matching entry of labels [batch].
func Accuracy[T tensor.Float, L tensor.Integer, B tensor.Backend](
	predictions *tensor.Tensor[T, B],
	labels *tensor.Tensor[L, B],
) float64 {
	return nn.Accuracy(predictions, labels)
}

// CorrectCount returns how many rows of predictions match their label.
func CorrectCount[T tensor.Float, L tensor.Integer, B tensor.Backend](
	predictions *tensor.Tensor[T, B],
	labels *tensor.Tensor[L, B],
) int {
	return nn.CorrectCount(predictions, labels)
}
