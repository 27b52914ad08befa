// Package metrics accumulates evaluation metrics across batches.
package metrics

import (
	"github.com/gomlx/exceptions"

	"github.com/mininlp/mininlp/internal/nn"
	"github.com/mininlp/mininlp/internal/tensor"
)

// Accuracy accumulates correct predictions across batches.
//
// Not safe for concurrent use.
type Accuracy struct {
	correct int
	total   int
	batches int
}

// Record adds a batch with the given number of correct predictions.
func (a *Accuracy) Record(correct, batchSize int) {
	if correct < 0 || correct > batchSize {
		exceptions.Panicf("metrics: correct=%d out of range for batch of %d", correct, batchSize)
	}
	a.correct += correct
	a.total += batchSize
	a.batches++
}

// Update scores a batch of predictions against labels and records it.
//
// It has the same shape contract as nn.Accuracy.
func Update[T tensor.Float, L tensor.Integer, B tensor.Backend](
	a *Accuracy,
	predictions *tensor.Tensor[T, B],
	labels *tensor.Tensor[L, B],
) {
	a.Record(nn.CorrectCount(predictions, labels), labels.Shape()[0])
}

// Value returns the accuracy over everything recorded, or 0 if nothing was.
func (a *Accuracy) Value() float64 {
	if a.total == 0 {
		return 0
	}
	return float64(a.correct) / float64(a.total)
}

// Snapshot returns the aggregated values and resets the accumulator.
func (a *Accuracy) Snapshot() Snapshot {
	snap := Snapshot{
		Accuracy: a.Value(),
		Correct:  a.correct,
		Total:    a.total,
		Batches:  a.batches,
	}
	*a = Accuracy{}
	return snap
}

// Snapshot represents loggable accuracy figures.
type Snapshot struct {
	Accuracy float64
	Correct  int
	Total    int
	Batches  int
}
