package optim

import (
	"io"
	"strconv"

	"github.com/nntrain-ml/nntrain/internal/export"
	"github.com/nntrain-ml/nntrain/internal/tensor"
)

// TypeSGD is the stable type name of the SGD optimizer.
const TypeSGD = "sgd"

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// With momentum enabled, SGD tracks one auxiliary state tensor (the velocity)
// per parameter; without it, none.
type SGD struct {
	Base
	momentum float64
}

// NewSGD creates an SGD optimizer with default hyperparameters
// (learning_rate 0.01, no momentum, no decay).
func NewSGD() *SGD {
	return &SGD{
		Base: newBase(0.01),
	}
}

// Type returns the stable type name.
func (s *SGD) Type() string {
	return TypeSGD
}

// Momentum returns the configured momentum factor.
func (s *SGD) Momentum() float64 {
	return s.momentum
}

// SetProperty applies an ordered "key=value" property list.
//
// Recognized keys: learning_rate, decay_rate, decay_steps, momentum.
func (s *SGD) SetProperty(values []string) error {
	for _, entry := range values {
		key, value, err := resolveProperty(entry)
		if err != nil {
			return err
		}
		if handled, err := s.applyBaseProperty(key, value); handled {
			if err != nil {
				return err
			}
			continue
		}
		switch key {
		case propMomentum:
			f, err := parseFloatValue(key, value)
			if err != nil {
				return err
			}
			s.momentum = f
		default:
			return &ConfigurationError{
				Token:   propertyTokens[key],
				Details: "property not supported by sgd",
			}
		}
	}
	return nil
}

// Finalize validates the momentum range before first use.
func (s *SGD) Finalize() error {
	if s.momentum < 0 || s.momentum >= 1 {
		return &ConfigurationError{
			Token:   strconv.FormatFloat(s.momentum, 'g', -1, 64),
			Details: "momentum must be in [0, 1)",
		}
	}
	return nil
}

// VariableShapes returns one velocity tensor shape when momentum is enabled,
// none otherwise.
func (s *SGD) VariableShapes(dim tensor.Shape) []tensor.Shape {
	if s.momentum == 0 {
		return nil
	}
	return []tensor.Shape{dim.Clone()}
}

// ApplyGradient updates the context's parameter in place.
func (s *SGD) ApplyGradient(rc *RunContext) error {
	wantVars := 0
	if s.momentum != 0 {
		wantVars = 1
	}
	if err := rc.validate(wantVars); err != nil {
		return err
	}

	lr := float32(s.LearningRateAt(rc.Iteration()))
	weight := rc.Weight().Data()
	grad := rc.Gradient().Data()

	if s.momentum == 0 {
		for i := range weight {
			weight[i] -= lr * grad[i]
		}
		return nil
	}

	momentum := float32(s.momentum)
	velocity := rc.Variable(0).Data()
	for i := range weight {
		velocity[i] = momentum*velocity[i] + grad[i]
		weight[i] -= lr * velocity[i]
	}
	return nil
}

// Save writes the scalar configuration. Field order: learning_rate,
// decay_rate, decay_steps, momentum.
func (s *SGD) Save(w io.Writer) error {
	if err := writeTypeTag(w, s.Type()); err != nil {
		return err
	}
	return writeScalars(w, s.learningRate, s.decayRate, s.decaySteps, s.momentum)
}

// Read restores the scalar configuration written by Save.
func (s *SGD) Read(r io.Reader) error {
	if err := readTypeTag(r, s.Type()); err != nil {
		return err
	}
	var lr, decayRate, decaySteps, momentum float64
	if err := readScalars(r, &lr, &decayRate, &decaySteps, &momentum); err != nil {
		return err
	}
	s.learningRate = lr
	s.decayRate = decayRate
	s.decaySteps = decaySteps
	s.momentum = momentum
	return nil
}

// ExportTo publishes the SGD hyperparameters.
func (s *SGD) ExportTo(e *export.Exporter, method export.Method) {
	e.Save("type", s.Type())
	e.Save("learning_rate", strconv.FormatFloat(s.learningRate, 'g', -1, 64))
	if s.momentum != 0 {
		e.Save("momentum", strconv.FormatFloat(s.momentum, 'g', -1, 64))
	}
}
