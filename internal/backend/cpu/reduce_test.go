package cpu

import (
	"math"
	"testing"

	"github.com/mininlp/mininlp/internal/tensor"
)

func TestSum(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
	result := backend.Sum(x)
	if len(result.Shape()) != 0 {
		t.Fatalf("Expected scalar shape, got %v", result.Shape())
	}
	if got := result.AsFloat32()[0]; got != 21 {
		t.Errorf("Expected 21, got %v", got)
	}

	counts := rawInt32(t, tensor.Shape{4}, 1, 0, 1, 1)
	if got := backend.Sum(counts).AsInt32()[0]; got != 3 {
		t.Errorf("Expected 3, got %v", got)
	}
}

func TestArgmax_Rows(t *testing.T) {
	backend := New()

	// Row 0: [0.1, 0.9], Row 1: [0.8, 0.2], Row 2: [0.3, 0.7]
	x := rawFloat32(t, tensor.Shape{3, 2}, 0.1, 0.9, 0.8, 0.2, 0.3, 0.7)
	result := backend.Argmax(x, 1)

	if !result.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("Expected shape [3], got %v", result.Shape())
	}
	want := []int32{1, 0, 1}
	for i, got := range result.AsInt32() {
		if got != want[i] {
			t.Errorf("row %d: got %d, want %d", i, got, want[i])
		}
	}

	// -1 is the last dimension.
	neg := backend.Argmax(x, -1).AsInt32()
	for i := range want {
		if neg[i] != want[i] {
			t.Errorf("dim=-1 row %d: got %d, want %d", i, neg[i], want[i])
		}
	}
}

func TestArgmax_TiesPickLowestIndex(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{2, 4}, 0.5, 0.5, 0.5, 0.5, 0, 3, 1, 3)
	got := backend.Argmax(x, 1).AsInt32()
	if got[0] != 0 || got[1] != 1 {
		t.Errorf("Expected [0 1], got %v", got)
	}
}

func TestArgmax_Columns(t *testing.T) {
	backend := New()

	// [[1, 9, 2],
	//  [5, 3, 8]]
	x := rawFloat32(t, tensor.Shape{2, 3}, 1, 9, 2, 5, 3, 8)
	got := backend.Argmax(x, 0).AsInt32()
	want := []int32{1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("col %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestArgmax_3D(t *testing.T) {
	backend := New()

	// Shape [2, 2, 3]; reduce the middle dimension.
	x := rawInt32(t, tensor.Shape{2, 2, 3},
		1, 7, 0,
		4, 2, 0,
		9, 1, 5,
		3, 6, 5,
	)
	result := backend.Argmax(x, 1)
	if !result.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("Expected shape [2 3], got %v", result.Shape())
	}
	want := []int32{1, 0, 0, 0, 1, 0}
	for i, got := range result.AsInt32() {
		if got != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got, want[i])
		}
	}
}

func TestArgmax_InvalidDim(t *testing.T) {
	backend := New()
	x := rawFloat32(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
	expectPanic(t, "dim 2", func() { backend.Argmax(x, 2) })
	expectPanic(t, "dim -3", func() { backend.Argmax(x, -3) })
}

func TestArgmax_NaN(t *testing.T) {
	backend := New()
	nan := float32(math.NaN())

	x := rawFloat32(t, tensor.Shape{3, 3},
		nan, 5, 1,
		0, nan, 9,
		1, nan, nan,
	)
	got := backend.Argmax(x, 1).AsInt32()
	want := []int32{0, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}
