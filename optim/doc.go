// Copyright 2025 The nntrain Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the pluggable optimizer abstraction of the nntrain
// runtime.
//
// # Overview
//
// This package contains:
//   - Optimizer: the interface every update rule implements
//   - RunContext: the ephemeral per-parameter view passed to ApplyGradient
//   - SGD, Adam: the built-in update rules
//   - Create / Register: the optimizer factory
//
// # Basic Usage
//
//	import (
//	    "github.com/nntrain-ml/nntrain/nn"
//	    "github.com/nntrain-ml/nntrain/optim"
//	    "github.com/nntrain-ml/nntrain/tensor"
//	)
//
//	func main() {
//	    w, _ := tensor.FromSlice(weights, tensor.Shape{784, 10})
//	    param := nn.NewParameter("linear.weight", w)
//
//	    opt, err := optim.Create("adam", []string{
//	        "learning_rate=0.001",
//	        "beta1=0.9",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    param.AllocateOptimizerVariables(opt)
//
//	    // Training loop
//	    for step := uint64(0); step < numSteps; step++ {
//	        param.SetGrad(computeGradient(param))
//	        rc, _ := param.Bind(step)
//	        if err := opt.ApplyGradient(rc); err != nil {
//	            log.Fatal(err)
//	        }
//	        param.ZeroGrad()
//	    }
//	}
//
// # Configuration
//
// Optimizers are configured through ordered "key=value" property lists.
// Entries apply in list order, the last write for a key wins, and an
// unrecognized key fails with a ConfigurationError naming the token.
//
// # Custom optimizers
//
// Additional rules implement Optimizer and register with Register, or ship as
// separately built plugin units (see the plugin package).
package optim
