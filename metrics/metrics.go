// Copyright 2025 The mininlp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metrics accumulates evaluation metrics across batches.
package metrics

import (
	"github.com/mininlp/mininlp/internal/metrics"
	"github.com/mininlp/mininlp/tensor"
)

// Accuracy accumulates correct predictions across batches.
// The zero value is ready to use.
type Accuracy = metrics.Accuracy

// Snapshot holds aggregated accuracy figures.
type Snapshot = metrics.Snapshot

// Update scores a batch of predictions against labels and records it in a.
func Update[T tensor.Float, L tensor.Integer, B tensor.Backend](
	a *Accuracy,
	predictions *tensor.Tensor[T, B],
	labels *tensor.Tensor[L, B],
) {
	metrics.Update(a, predictions, labels)
}
