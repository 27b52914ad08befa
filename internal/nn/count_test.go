package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mininlp/mininlp/internal/backend/cpu"
	"github.com/mininlp/mininlp/internal/nn"
	"github.com/mininlp/mininlp/internal/tensor"
)

type backend = *cpu.CPUBackend

// paramBag is a ParameterLister that is not a Module.
type paramBag []*nn.Parameter[backend]

func (b paramBag) Parameters() []*nn.Parameter[backend] { return b }

func newMLP(b backend) *nn.Sequential[backend] {
	return nn.NewSequential[backend](
		nn.NewLinear(768, 256, b), // 768*256 + 256 = 196864
		nn.NewReLU[backend](),
		nn.NewLinear(256, 2, b), // 256*2 + 2 = 514
	)
}

func TestCountParameters(t *testing.T) {
	b := cpu.New()
	model := newMLP(b)

	assert.Equal(t, 197378, nn.CountParameters[backend](model))
	assert.Equal(t, 197378, nn.CountAllParameters[backend](model))
}

func TestCountParameters_Empty(t *testing.T) {
	assert.Equal(t, 0, nn.CountParameters[backend](paramBag(nil)))
	assert.Equal(t, 0, nn.CountParameters[backend](nn.NewReLU[backend]()))
	assert.Equal(t, 0, nn.CountParameters[backend](nn.NewSequential[backend]()))
}

func TestCountParameters_Freezing(t *testing.T) {
	b := cpu.New()
	model := newMLP(b)
	encoder := model.Module(0).(*nn.Linear[backend])

	before := nn.CountParameters[backend](model)

	// Freezing a trainable parameter removes exactly its element count.
	encoder.Weight().SetRequiresGrad(false)
	after := nn.CountParameters[backend](model)
	assert.Equal(t, before-768*256, after)

	// Freezing it again changes nothing.
	encoder.Weight().SetRequiresGrad(false)
	assert.Equal(t, after, nn.CountParameters[backend](model))

	nn.Freeze[backend](encoder)
	assert.Equal(t, 514, nn.CountParameters[backend](model))
	assert.Equal(t, 197378, nn.CountAllParameters[backend](model), "frozen parameters still count toward the total")

	nn.Freeze[backend](model)
	assert.Equal(t, 0, nn.CountParameters[backend](model))

	nn.Unfreeze[backend](model)
	assert.Equal(t, before, nn.CountParameters[backend](model))
}

func TestCountParameters_DoesNotMutate(t *testing.T) {
	b := cpu.New()
	frozen := nn.NewParameter("embeddings", tensor.Zeros[float32](tensor.Shape{100, 16}, b))
	frozen.SetRequiresGrad(false)
	bag := paramBag{
		frozen,
		nn.NewParameter("scale", tensor.Zeros[float32](tensor.Shape{16}, b)),
	}

	assert.Equal(t, 16, nn.CountParameters[backend](bag))
	assert.Equal(t, 16, nn.CountParameters[backend](bag))
	assert.False(t, frozen.RequiresGrad())
	assert.True(t, bag[1].RequiresGrad())
}

func TestSummarize(t *testing.T) {
	b := cpu.New()
	model := nn.NewSequential[backend](
		nn.NewLinear(3, 2, b),
		nn.NewLinearNoBias(2, 4, b),
	)
	model.Module(0).Parameters()[1].SetRequiresGrad(false)

	got := nn.Summarize[backend](model)
	want := []nn.ParameterInfo{
		{Name: "weight", Shape: tensor.Shape{2, 3}, NumElements: 6, Trainable: true},
		{Name: "bias", Shape: tensor.Shape{2}, NumElements: 2, Trainable: false},
		{Name: "weight", Shape: tensor.Shape{4, 2}, NumElements: 8, Trainable: true},
	}
	assert.Equal(t, want, got)
}
