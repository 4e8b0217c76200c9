package optim

import (
	"io"
	"math"
	"strconv"

	"github.com/nntrain-ml/nntrain/internal/export"
	"github.com/nntrain-ml/nntrain/internal/tensor"
)

// TypeAdam is the stable type name of the Adam optimizer.
const TypeAdam = "adam"

// Adam implements adaptive moment estimation.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient      // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²     // Second moment
//	m_hat = m_t / (1 - beta1^t)                       // Bias correction
//	v_hat = v_t / (1 - beta2^t)                       // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// Adam tracks two auxiliary state tensors per parameter: the first and second
// moment accumulators, each shaped like the parameter.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	Base
	beta1   float64
	beta2   float64
	epsilon float64
}

// NewAdam creates an Adam optimizer with default hyperparameters
// (learning_rate 0.001, beta1 0.9, beta2 0.999, epsilon 1e-8).
func NewAdam() *Adam {
	return &Adam{
		Base:    newBase(0.001),
		beta1:   0.9,
		beta2:   0.999,
		epsilon: 1e-8,
	}
}

// Type returns the stable type name.
func (a *Adam) Type() string {
	return TypeAdam
}

// Beta1 returns the first-moment decay factor.
func (a *Adam) Beta1() float64 { return a.beta1 }

// Beta2 returns the second-moment decay factor.
func (a *Adam) Beta2() float64 { return a.beta2 }

// Epsilon returns the numerical stability term.
func (a *Adam) Epsilon() float64 { return a.epsilon }

// SetProperty applies an ordered "key=value" property list.
//
// Recognized keys: learning_rate, decay_rate, decay_steps, beta1, beta2,
// epsilon.
func (a *Adam) SetProperty(values []string) error {
	for _, entry := range values {
		key, value, err := resolveProperty(entry)
		if err != nil {
			return err
		}
		if handled, err := a.applyBaseProperty(key, value); handled {
			if err != nil {
				return err
			}
			continue
		}
		switch key {
		case propBeta1, propBeta2, propEpsilon:
			f, err := parseFloatValue(key, value)
			if err != nil {
				return err
			}
			switch key {
			case propBeta1:
				a.beta1 = f
			case propBeta2:
				a.beta2 = f
			case propEpsilon:
				a.epsilon = f
			}
		default:
			return &ConfigurationError{
				Token:   propertyTokens[key],
				Details: "property not supported by adam",
			}
		}
	}
	return nil
}

// Finalize validates hyperparameter ranges before first use.
func (a *Adam) Finalize() error {
	if a.beta1 < 0 || a.beta1 >= 1 {
		return &ConfigurationError{
			Token:   strconv.FormatFloat(a.beta1, 'g', -1, 64),
			Details: "beta1 must be in [0, 1)",
		}
	}
	if a.beta2 < 0 || a.beta2 >= 1 {
		return &ConfigurationError{
			Token:   strconv.FormatFloat(a.beta2, 'g', -1, 64),
			Details: "beta2 must be in [0, 1)",
		}
	}
	if a.epsilon <= 0 {
		return &ConfigurationError{
			Token:   strconv.FormatFloat(a.epsilon, 'g', -1, 64),
			Details: "epsilon must be > 0",
		}
	}
	return nil
}

// VariableShapes returns the two moment accumulator shapes, each matching the
// parameter shape.
func (a *Adam) VariableShapes(dim tensor.Shape) []tensor.Shape {
	return []tensor.Shape{dim.Clone(), dim.Clone()}
}

// ApplyGradient updates the context's parameter in place.
func (a *Adam) ApplyGradient(rc *RunContext) error {
	if err := rc.validate(2); err != nil {
		return err
	}

	// Timestep for bias correction; iterations count from 0.
	t := float64(rc.Iteration() + 1)
	biasCorrection1 := 1.0 - math.Pow(a.beta1, t)
	biasCorrection2 := 1.0 - math.Pow(a.beta2, t)

	lr := a.LearningRateAt(rc.Iteration())
	beta1 := float32(a.beta1)
	beta2 := float32(a.beta2)

	weight := rc.Weight().Data()
	grad := rc.Gradient().Data()
	m := rc.Variable(0).Data()
	v := rc.Variable(1).Data()

	for i := range weight {
		g := grad[i]

		m[i] = beta1*m[i] + (1.0-beta1)*g
		v[i] = beta2*v[i] + (1.0-beta2)*g*g

		mHat := float64(m[i]) / biasCorrection1
		vHat := float64(v[i]) / biasCorrection2

		weight[i] -= float32(lr * mHat / (math.Sqrt(vHat) + a.epsilon))
	}
	return nil
}

// Save writes the scalar configuration. Field order: learning_rate,
// decay_rate, decay_steps, beta1, beta2, epsilon.
func (a *Adam) Save(w io.Writer) error {
	if err := writeTypeTag(w, a.Type()); err != nil {
		return err
	}
	return writeScalars(w, a.learningRate, a.decayRate, a.decaySteps,
		a.beta1, a.beta2, a.epsilon)
}

// Read restores the scalar configuration written by Save.
func (a *Adam) Read(r io.Reader) error {
	if err := readTypeTag(r, a.Type()); err != nil {
		return err
	}
	var lr, decayRate, decaySteps, beta1, beta2, epsilon float64
	if err := readScalars(r, &lr, &decayRate, &decaySteps, &beta1, &beta2, &epsilon); err != nil {
		return err
	}
	a.learningRate = lr
	a.decayRate = decayRate
	a.decaySteps = decaySteps
	a.beta1 = beta1
	a.beta2 = beta2
	a.epsilon = epsilon
	return nil
}

// ExportTo publishes the Adam hyperparameters.
func (a *Adam) ExportTo(e *export.Exporter, method export.Method) {
	e.Save("type", a.Type())
	e.Save("learning_rate", strconv.FormatFloat(a.learningRate, 'g', -1, 64))
	e.Save("beta1", strconv.FormatFloat(a.beta1, 'g', -1, 64))
	e.Save("beta2", strconv.FormatFloat(a.beta2, 'g', -1, 64))
	e.Save("epsilon", strconv.FormatFloat(a.epsilon, 'g', -1, 64))
}
