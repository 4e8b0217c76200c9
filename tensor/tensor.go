// Copyright 2025 The nntrain Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the minimal tensor view consumed by the optimizer
// and configuration layers. Tensor algebra and device backends are external
// collaborators and live outside this module.
package tensor

import (
	"github.com/nntrain-ml/nntrain/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a dense float32 tensor with row-major storage.
type Tensor = tensor.Tensor

// New creates a zero-initialized tensor with the given shape.
var New = tensor.New

// Zeros creates a zero-initialized tensor, panicking on an invalid shape.
var Zeros = tensor.Zeros

// FromSlice creates a tensor from existing data. The data is copied.
var FromSlice = tensor.FromSlice
