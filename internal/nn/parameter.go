// Package nn provides the trainable parameter store consumed by the
// optimizer layer.
package nn

import (
	"fmt"

	"github.com/nntrain-ml/nntrain/internal/optim"
	"github.com/nntrain-ml/nntrain/internal/tensor"
)

// Parameter represents one trainable parameter: its tensor, its gradient
// slot, and the auxiliary optimizer-variable tensors allocated for it.
//
// The parameter owns its tensors; the optimizer only sees them through the
// per-call RunContext.
type Parameter struct {
	name      string
	tensor    *tensor.Tensor
	grad      *tensor.Tensor
	variables []*tensor.Tensor
}

// NewParameter creates a trainable parameter around an initialized tensor.
//
// The gradient is set by the backward pass; optimizer variables are allocated
// once per optimizer via AllocateOptimizerVariables.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name (e.g. "linear1.weight").
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the gradient tensor, or nil before the first backward pass.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter) SetGrad(grad *tensor.Tensor) {
	p.grad = grad
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}

// OptimizerVariables returns the auxiliary state tensors allocated for this
// parameter, in the optimizer's declaration order.
func (p *Parameter) OptimizerVariables() []*tensor.Tensor {
	return p.variables
}

// AllocateOptimizerVariables sizes and zero-initializes the auxiliary state
// this parameter needs under the given optimizer. Must run before the first
// ApplyGradient touching this parameter; reallocating discards earlier state.
func (p *Parameter) AllocateOptimizerVariables(o optim.Optimizer) {
	shapes := o.VariableShapes(p.tensor.Shape())
	p.variables = make([]*tensor.Tensor, len(shapes))
	for i, shape := range shapes {
		p.variables[i] = tensor.Zeros(shape)
	}
}

// Bind builds the ephemeral per-step context for this parameter. It fails if
// no gradient has been computed yet.
func (p *Parameter) Bind(iteration uint64) (*optim.RunContext, error) {
	if p.grad == nil {
		return nil, fmt.Errorf("parameter %q has no gradient", p.name)
	}
	return optim.NewRunContext(p.tensor, p.grad, p.variables, iteration), nil
}
