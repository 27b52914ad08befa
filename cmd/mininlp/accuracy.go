package main

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/mininlp/mininlp/internal/backend/cpu"
	"github.com/mininlp/mininlp/internal/dataset"
	"github.com/mininlp/mininlp/internal/metrics"
)

func runAccuracy(args []string) error {
	fs := newFlagSet("accuracy")
	file := fs.String("file", "", "CSV file with one score column per class and a label column.")
	label := fs.String("label", dataset.DefaultLabelColumn, "Name of the label column.")
	batchSize := fs.Int("batch", 0, "Evaluate in batches of this size; 0 evaluates the whole file at once.")
	_ = fs.Parse(args)

	if *file == "" {
		return errors.New("missing -file")
	}
	batch, err := dataset.LoadPredictions(*file, *label)
	if err != nil {
		return err
	}
	klog.V(1).Infof("Loaded %d examples over %d classes %v", batch.Size(), len(batch.Classes), batch.Classes)

	snap, err := evaluate(batch, *batchSize)
	if err != nil {
		return err
	}
	fmt.Printf("accuracy: %.4f (%d/%d correct)\n", snap.Accuracy, snap.Correct, snap.Total)
	return nil
}

// evaluate scores batch in chunks of batchSize. Shape contract violations
// raised by the accuracy computation are returned as errors.
func evaluate(batch *dataset.Batch, batchSize int) (metrics.Snapshot, error) {
	backend := cpu.New()
	var acc metrics.Accuracy
	err := exceptions.TryCatch[error](func() {
		for i, part := range batch.Split(batchSize) {
			scores, labels := must.M2(dataset.Tensors(part, backend))
			metrics.Update(&acc, scores, labels)
			klog.V(2).Infof("batch #%d: %d examples, running accuracy %.4f", i, part.Size(), acc.Value())
		}
	})
	if err != nil {
		return metrics.Snapshot{}, errors.WithMessage(err, "evaluating predictions")
	}
	return acc.Snapshot(), nil
}
