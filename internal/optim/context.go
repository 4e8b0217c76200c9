package optim

import (
	"fmt"

	"github.com/nntrain-ml/nntrain/internal/tensor"
)

// RunContext binds one optimizer invocation to one parameter: the parameter
// tensor, its current gradient, its auxiliary state slots, and the step
// count. It holds references only, never ownership, and is valid for the
// duration of a single ApplyGradient call.
type RunContext struct {
	weight    *tensor.Tensor
	gradient  *tensor.Tensor
	variables []*tensor.Tensor
	iteration uint64
}

// NewRunContext builds a context for one parameter update.
//
// weight and gradient must be non-nil; variables are the auxiliary state
// tensors allocated from VariableShapes, in declaration order.
func NewRunContext(weight, gradient *tensor.Tensor, variables []*tensor.Tensor, iteration uint64) *RunContext {
	return &RunContext{
		weight:    weight,
		gradient:  gradient,
		variables: variables,
		iteration: iteration,
	}
}

// Weight returns the parameter tensor to be updated in place.
func (rc *RunContext) Weight() *tensor.Tensor {
	return rc.weight
}

// Gradient returns the current gradient for the parameter.
func (rc *RunContext) Gradient() *tensor.Tensor {
	return rc.gradient
}

// Variable returns the i-th auxiliary state tensor.
func (rc *RunContext) Variable(i int) *tensor.Tensor {
	return rc.variables[i]
}

// NumVariables returns the number of auxiliary state tensors bound.
func (rc *RunContext) NumVariables() int {
	return len(rc.variables)
}

// Iteration returns the current training step count.
func (rc *RunContext) Iteration() uint64 {
	return rc.iteration
}

// validate checks the context is usable for a rule needing wantVars
// auxiliary tensors.
func (rc *RunContext) validate(wantVars int) error {
	if rc.weight == nil {
		return fmt.Errorf("run context has no weight tensor")
	}
	if rc.gradient == nil {
		return fmt.Errorf("run context has no gradient tensor")
	}
	if !rc.weight.Shape().Equal(rc.gradient.Shape()) {
		return fmt.Errorf("gradient shape %v does not match weight shape %v",
			rc.gradient.Shape(), rc.weight.Shape())
	}
	if len(rc.variables) < wantVars {
		return fmt.Errorf("run context has %d optimizer variables, need %d",
			len(rc.variables), wantVars)
	}
	for i := 0; i < wantVars; i++ {
		if rc.variables[i] == nil {
			return fmt.Errorf("optimizer variable %d is nil", i)
		}
		if !rc.variables[i].Shape().Equal(rc.weight.Shape()) {
			return fmt.Errorf("optimizer variable %d shape %v does not match weight shape %v",
				i, rc.variables[i].Shape(), rc.weight.Shape())
		}
	}
	return nil
}
