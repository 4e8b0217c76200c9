// Copyright 2025 The nntrain Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/nntrain-ml/nntrain/internal/optim"
)

// Optimizer is the contract implemented by every update rule.
type Optimizer = optim.Optimizer

// RunContext binds one optimizer invocation to one parameter for the
// duration of a single ApplyGradient call.
type RunContext = optim.RunContext

// NewRunContext builds a context for one parameter update.
var NewRunContext = optim.NewRunContext

// SGD (Stochastic Gradient Descent)

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// NewSGD creates an SGD optimizer with default hyperparameters.
func NewSGD() *SGD {
	return optim.NewSGD()
}

// Adam (Adaptive Moment Estimation)

// Adam implements adaptive moment estimation.
type Adam = optim.Adam

// NewAdam creates an Adam optimizer with default hyperparameters.
func NewAdam() *Adam {
	return optim.NewAdam()
}

// Factory

// CreateFunc constructs a fresh, unconfigured optimizer instance.
type CreateFunc = optim.CreateFunc

// Create constructs an optimizer from a type token and applies the property
// list exactly once before returning.
//
// Example:
//
//	opt, err := optim.Create("sgd", []string{
//	    "learning_rate=0.01",
//	    "momentum=0.9",
//	})
var Create = optim.Create

// Register makes an additional optimizer type available to Create.
var Register = optim.Register

// Errors

// ConfigurationError reports an unknown or invalid configuration token.
type ConfigurationError = optim.ConfigurationError

// Common errors.
var (
	ErrUnknownOptimizer = optim.ErrUnknownOptimizer
	ErrStateCorrupted   = optim.ErrStateCorrupted
	ErrStateMismatch    = optim.ErrStateMismatch
)
