package nn

import (
	"testing"

	"github.com/nntrain-ml/nntrain/internal/optim"
	"github.com/nntrain-ml/nntrain/internal/tensor"
)

// TestParameter_AllocateOptimizerVariables checks auxiliary state allocation
// follows the optimizer's declared shapes.
func TestParameter_AllocateOptimizerVariables(t *testing.T) {
	w, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	p := NewParameter("weight", w)

	adam := optim.NewAdam()
	p.AllocateOptimizerVariables(adam)

	vars := p.OptimizerVariables()
	if len(vars) != 2 {
		t.Fatalf("adam variables: got %d, want 2", len(vars))
	}
	for i, v := range vars {
		if !v.Shape().Equal(w.Shape()) {
			t.Errorf("variable %d shape: got %v, want %v", i, v.Shape(), w.Shape())
		}
	}

	sgd := optim.NewSGD()
	p.AllocateOptimizerVariables(sgd)
	if len(p.OptimizerVariables()) != 0 {
		t.Errorf("plain sgd should need no optimizer variables")
	}
}

// TestParameter_Bind checks context construction and the missing-gradient
// case.
func TestParameter_Bind(t *testing.T) {
	w, _ := tensor.FromSlice([]float32{1}, tensor.Shape{1})
	p := NewParameter("bias", w)

	if _, err := p.Bind(0); err == nil {
		t.Error("Bind should fail before a gradient is set")
	}

	g, _ := tensor.FromSlice([]float32{0.5}, tensor.Shape{1})
	p.SetGrad(g)

	rc, err := p.Bind(7)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if rc.Iteration() != 7 {
		t.Errorf("Iteration: got %d, want 7", rc.Iteration())
	}
	if rc.Weight() != w || rc.Gradient() != g {
		t.Error("context must reference the parameter's own tensors")
	}

	p.ZeroGrad()
	if p.Grad() != nil {
		t.Error("ZeroGrad should clear the gradient")
	}
}

// TestParameter_TrainStep runs one full SGD step through the parameter store.
func TestParameter_TrainStep(t *testing.T) {
	w, _ := tensor.FromSlice([]float32{2.0}, tensor.Shape{1})
	p := NewParameter("x", w)

	opt, err := optim.Create("sgd", []string{"learning_rate=0.1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	p.AllocateOptimizerVariables(opt)

	g, _ := tensor.FromSlice([]float32{1.0}, tensor.Shape{1})
	p.SetGrad(g)

	rc, err := p.Bind(0)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := opt.ApplyGradient(rc); err != nil {
		t.Fatalf("ApplyGradient: %v", err)
	}

	// x_new = 2.0 - 0.1 * 1.0 = 1.9
	got := p.Tensor().Data()[0]
	if got < 1.9-1e-6 || got > 1.9+1e-6 {
		t.Errorf("after step: got %f, want 1.9", got)
	}
}
