package optim

import (
	"math"

	"github.com/nntrain-ml/nntrain/internal/export"
)

// Base carries the hyperparameters shared by all update rules and supplies
// default no-op hooks. Concrete optimizers embed it and override what they
// need.
type Base struct {
	learningRate float64
	decayRate    float64
	decaySteps   float64
}

// newBase returns a Base with the rule's default learning rate and decay
// disabled.
func newBase(learningRate float64) Base {
	return Base{
		learningRate: learningRate,
		decayRate:    1.0,
		decaySteps:   0,
	}
}

// DefaultLearningRate returns the configured base learning rate.
func (b *Base) DefaultLearningRate() float64 {
	return b.learningRate
}

// LearningRateAt returns the effective learning rate for an iteration.
//
// With decay configured (decay_steps > 0):
//
//	lr * decay_rate^(iteration/decay_steps)
func (b *Base) LearningRateAt(iteration uint64) float64 {
	if b.decaySteps <= 0 {
		return b.learningRate
	}
	return b.learningRate * math.Pow(b.decayRate, float64(iteration)/b.decaySteps)
}

// applyBaseProperty applies one resolved property if it belongs to the shared
// hyperparameter set. Returns false when the key is not handled here, leaving
// it to the embedding rule.
func (b *Base) applyBaseProperty(key propertyKey, value string) (bool, error) {
	switch key {
	case propLearningRate:
		f, err := parseFloatValue(key, value)
		if err != nil {
			return true, err
		}
		b.learningRate = f
	case propDecayRate:
		f, err := parseFloatValue(key, value)
		if err != nil {
			return true, err
		}
		b.decayRate = f
	case propDecaySteps:
		f, err := parseFloatValue(key, value)
		if err != nil {
			return true, err
		}
		b.decaySteps = f
	default:
		return false, nil
	}
	return true, nil
}

// ExportTo describes this optimizer to an exporter. No-op by default.
func (b *Base) ExportTo(e *export.Exporter, method export.Method) {}

// Finalize validates configuration before first use. No-op by default.
func (b *Base) Finalize() error {
	return nil
}
