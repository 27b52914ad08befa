package nn

import (
	"github.com/gomlx/exceptions"

	"github.com/mininlp/mininlp/internal/tensor"
)

// Accuracy returns the fraction of rows of predictions whose highest score
// is at the index given by the matching entry of labels.
//
// Parameters:
//   - predictions: scores with shape [batch_size, n_classes]
//   - labels: class indices with shape [batch_size]
//
// Returns a value in [0, 1] (a fraction, not a percentage). Argmax ties
// resolve to the lowest class index, and a NaN score counts as the maximum of
// its row. Labels are compared as int64, so a label outside the class range
// never matches.
//
// Malformed inputs are caller bugs: Accuracy panics, with the offending
// shapes in the message, if predictions is not 2-D, labels is not 1-D, or
// their batch sizes differ.
func Accuracy[T tensor.Float, L tensor.Integer, B tensor.Backend](
	predictions *tensor.Tensor[T, B],
	labels *tensor.Tensor[L, B],
) float64 {
	correct := CorrectCount(predictions, labels)
	return float64(correct) / float64(predictions.Shape()[0])
}

// CorrectCount returns how many rows of predictions have their argmax equal
// to the matching label. It validates its inputs like Accuracy.
func CorrectCount[T tensor.Float, L tensor.Integer, B tensor.Backend](
	predictions *tensor.Tensor[T, B],
	labels *tensor.Tensor[L, B],
) int {
	checkAccuracyShapes(predictions.Shape(), labels.Shape())

	top := tensor.Cast[int64](predictions.Argmax(1))
	hits := top.Equal(tensor.Cast[int64](labels))
	return int(hits.Int32().Sum().Item())
}

func checkAccuracyShapes(predictions, labels tensor.Shape) {
	if len(predictions) != 2 {
		exceptions.Panicf("predictions tensor should be 2-D, got shape %v", predictions)
	}
	if len(labels) != 1 {
		exceptions.Panicf("labels tensor should be 1-D, got shape %v", labels)
	}
	if predictions[0] != labels[0] {
		exceptions.Panicf("predictions %v and labels %v shape mismatch", predictions, labels)
	}
	// Shape.Validate already rejects zero dims; this only catches a backend
	// handing back a malformed tensor.
	if predictions[0] == 0 {
		exceptions.Panicf("accuracy of an empty batch is undefined, got predictions %v", predictions)
	}
}
