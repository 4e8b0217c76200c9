// Copyright 2025 The nntrain Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the trainable parameter store consumed by the
// optimizer layer.
package nn

import (
	"github.com/nntrain-ml/nntrain/internal/nn"
)

// Parameter represents one trainable parameter: its tensor, its gradient
// slot, and the auxiliary optimizer-variable tensors allocated for it.
type Parameter = nn.Parameter

// NewParameter creates a trainable parameter around an initialized tensor.
var NewParameter = nn.NewParameter
