// Package dataset loads evaluation batches from disk.
package dataset

import (
	"io"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"github.com/mininlp/mininlp/internal/tensor"
)

// DefaultLabelColumn is the header of the label column when none is given.
const DefaultLabelColumn = "label"

// Batch holds prediction scores and integer labels read from a CSV file.
//
// Scores are row-major with shape [len(Labels), len(Classes)].
type Batch struct {
	Classes []string
	Scores  []float32
	Labels  []int64
}

// Size returns the number of examples.
func (b *Batch) Size() int {
	return len(b.Labels)
}

// ReadPredictions parses a CSV with a header row. labelColumn names the
// column holding integer class labels; every other column is a class score,
// and the class index of a score column is its position among the score
// columns, in header order.
func ReadPredictions(r io.Reader, labelColumn string) (*Batch, error) {
	if labelColumn == "" {
		labelColumn = DefaultLabelColumn
	}
	df := dataframe.ReadCSV(r, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "failed to parse predictions CSV")
	}
	if df.Nrow() == 0 {
		return nil, errors.New("predictions CSV has no rows")
	}

	var classes []string
	hasLabel := false
	for _, name := range df.Names() {
		if name == labelColumn {
			hasLabel = true
			continue
		}
		classes = append(classes, name)
	}
	if !hasLabel {
		return nil, errors.Errorf("label column %q not found in header %v", labelColumn, df.Names())
	}
	if len(classes) == 0 {
		return nil, errors.Errorf("no score columns besides %q", labelColumn)
	}

	labelSeries := df.Col(labelColumn)
	if labelSeries.Type() != series.Int {
		return nil, errors.Errorf("label column %q must hold integers, got %s values", labelColumn, labelSeries.Type())
	}
	ints, err := labelSeries.Int()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read label column %q", labelColumn)
	}

	batch := &Batch{
		Classes: classes,
		Scores:  make([]float32, df.Nrow()*len(classes)),
		Labels:  make([]int64, len(ints)),
	}
	for i, v := range ints {
		batch.Labels[i] = int64(v)
	}
	for c, name := range classes {
		for row, v := range df.Col(name).Float() {
			if math.IsNaN(v) {
				return nil, errors.Errorf("score column %q row %d is not a number", name, row+1)
			}
			batch.Scores[row*len(classes)+c] = float32(v)
		}
	}
	return batch, nil
}

// LoadPredictions reads a predictions CSV file. See ReadPredictions.
func LoadPredictions(path, labelColumn string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open predictions file %q", path)
	}
	defer func() { _ = f.Close() }()

	batch, err := ReadPredictions(f, labelColumn)
	if err != nil {
		return nil, errors.WithMessagef(err, "file %q", path)
	}
	return batch, nil
}

// Tensors returns the batch as a [batch, classes] score tensor and a
// [batch] label tensor on backend.
func Tensors[B tensor.Backend](b *Batch, backend B) (*tensor.Tensor[float32, B], *tensor.Tensor[int64, B], error) {
	scores, err := tensor.FromSlice(b.Scores, tensor.Shape{b.Size(), len(b.Classes)}, backend)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build score tensor")
	}
	labels, err := tensor.FromSlice(b.Labels, tensor.Shape{b.Size()}, backend)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build label tensor")
	}
	return scores, labels, nil
}

// Split cuts the batch into consecutive batches of at most size examples.
// A size <= 0 returns the batch unchanged.
func (b *Batch) Split(size int) []*Batch {
	if size <= 0 || size >= b.Size() {
		return []*Batch{b}
	}
	numClasses := len(b.Classes)
	var parts []*Batch
	for start := 0; start < b.Size(); start += size {
		end := min(start+size, b.Size())
		parts = append(parts, &Batch{
			Classes: b.Classes,
			Scores:  b.Scores[start*numClasses : end*numClasses],
			Labels:  b.Labels[start:end],
		})
	}
	return parts
}
