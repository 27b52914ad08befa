package tensor

import "testing"

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeOf(t *testing.T) {
	if DataTypeOf[float32]() != Float32 || DataTypeOf[int64]() != Int64 || DataTypeOf[bool]() != Bool {
		t.Error("DataTypeOf returned the wrong runtime type")
	}
}

func TestShape(t *testing.T) {
	tests := []struct {
		shape    Shape
		rank     int
		elements int
		valid    bool
	}{
		{Shape{}, 0, 1, true},
		{Shape{4}, 1, 4, true},
		{Shape{3, 2}, 2, 6, true},
		{Shape{2, 3, 4}, 3, 24, true},
		{Shape{0, 3}, 2, 0, false},
		{Shape{3, -1}, 2, -3, false},
	}

	for _, tt := range tests {
		if got := tt.shape.Rank(); got != tt.rank {
			t.Errorf("%v.Rank() = %d, want %d", tt.shape, got, tt.rank)
		}
		if got := tt.shape.NumElements(); got != tt.elements {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.elements)
		}
		if err := tt.shape.Validate(); (err == nil) != tt.valid {
			t.Errorf("%v.Validate() = %v, want valid=%v", tt.shape, err, tt.valid)
		}
	}
}

func TestShapeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Fatalf("strides = %v, want %v", strides, want)
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 5}, Shape{5}, Shape{3, 5}, true, false},
		{Shape{3, 4}, Shape{3, 5}, nil, false, true},
	}

	for _, tt := range tests {
		got, broadcast, err := BroadcastShapes(tt.a, tt.b)
		if (err != nil) != tt.wantErr {
			t.Errorf("BroadcastShapes(%v, %v) error = %v", tt.a, tt.b, err)
			continue
		}
		if tt.wantErr {
			continue
		}
		if !got.Equal(tt.want) || broadcast != tt.broadcast {
			t.Errorf("BroadcastShapes(%v, %v) = %v, %v; want %v, %v", tt.a, tt.b, got, broadcast, tt.want, tt.broadcast)
		}
	}
}

func TestRawTensor(t *testing.T) {
	r, err := NewRaw(Shape{2, 3}, Float64, CPU)
	if err != nil {
		t.Fatal(err)
	}
	if r.ByteSize() != 48 {
		t.Errorf("ByteSize() = %d, want 48", r.ByteSize())
	}

	data := r.AsFloat64()
	data[4] = 2.5
	clone := r.Clone()
	data[4] = 0
	if clone.AsFloat64()[4] != 2.5 {
		t.Error("Clone() should not share storage")
	}

	defer func() {
		if recover() == nil {
			t.Error("AsInt32 on a float64 tensor should panic")
		}
	}()
	r.AsInt32()
}

func TestNewRaw_RejectsEmptyDimension(t *testing.T) {
	if _, err := NewRaw(Shape{0, 2}, Float32, CPU); err == nil {
		t.Error("expected error for zero-sized dimension")
	}
}
