// Package tensor provides the minimal tensor view consumed by the optimizer
// and configuration layers.
//
// This package intentionally covers only what parameter updates need: shapes,
// dense float32 storage, and elementwise access. Tensor algebra and device
// backends are external collaborators and live outside this module.
package tensor

import "fmt"

// Tensor is a dense float32 tensor with row-major storage.
type Tensor struct {
	shape Shape
	data  []float32
}

// New creates a zero-initialized tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Tensor{
		shape: shape.Clone(),
		data:  make([]float32, shape.NumElements()),
	}, nil
}

// Zeros creates a zero-initialized tensor, panicking on an invalid shape.
//
// Intended for internal allocation paths where the shape is already known to
// be valid (e.g. auxiliary optimizer state sized from an existing parameter).
func Zeros(shape Shape) *Tensor {
	t, err := New(shape)
	if err != nil {
		panic(err)
	}
	return t
}

// FromSlice creates a tensor from existing data. The data is copied.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	t := &Tensor{
		shape: shape.Clone(),
		data:  make([]float32, len(data)),
	}
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the underlying storage for in-place elementwise access.
func (t *Tensor) Data() []float32 {
	return t.data
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	c := &Tensor{
		shape: t.shape.Clone(),
		data:  make([]float32, len(t.data)),
	}
	copy(c.data, t.data)
	return c
}
