// Package optim implements the pluggable optimizer abstraction of the
// training runtime.
//
// This package provides:
//   - Optimizer interface: the contract every update rule implements
//   - RunContext: the per-parameter, per-step view passed to ApplyGradient
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation with bias correction
//   - Create: factory constructing optimizers from a type token and a
//     property list
//
// Lifecycle of an optimizer instance:
//
//	Constructed -> Configured -> Finalized -> {Applying}* -> Destroyed
//
// SetProperty may be called repeatedly before Finalize; ApplyGradient is only
// valid afterwards (Finalize is a no-op for rules without finalize-time
// setup). The package defines no internal locking: an instance may be used
// concurrently for different parameters, but the caller must serialize calls
// touching the same parameter's context and must not reconfigure concurrently
// with application.
package optim

import (
	"io"

	"github.com/nntrain-ml/nntrain/internal/export"
	"github.com/nntrain-ml/nntrain/internal/tensor"
)

// Optimizer is the contract implemented by every update rule.
//
// An optimizer owns no parameter tensors. It declares the auxiliary state it
// needs per parameter via VariableShapes; the parameter store allocates those
// tensors and hands them back through the RunContext on every step.
type Optimizer interface {
	// DefaultLearningRate returns the configured base learning rate.
	DefaultLearningRate() float64

	// LearningRateAt returns the effective learning rate for an iteration,
	// after applying the decay schedule if one is configured.
	LearningRateAt(iteration uint64) float64

	// SetProperty applies an ordered "key=value" property list.
	//
	// Entries are applied in list order; the last write for a key wins. An
	// unrecognized key fails with a *ConfigurationError naming the offending
	// token, leaving properties applied so far in place.
	SetProperty(values []string) error

	// VariableShapes returns the shapes of the auxiliary state tensors this
	// rule tracks for a parameter of the given shape. Pure function of the
	// rule's configuration; called once per parameter before training.
	VariableShapes(dim tensor.Shape) []tensor.Shape

	// ApplyGradient updates the context's parameter tensor in place using its
	// gradient and auxiliary state. Safe to call once per parameter per step
	// in any parameter order, but not concurrently for the same context.
	ApplyGradient(rc *RunContext) error

	// Read restores the optimizer's scalar configuration from a stream
	// previously produced by Save on the same optimizer type.
	Read(r io.Reader) error

	// Save writes the optimizer's scalar configuration as a fixed-order
	// stream. Parameter and auxiliary state tensors are persisted by the
	// parameter store, not here.
	Save(w io.Writer) error

	// ExportTo describes this optimizer's configuration to an external
	// exporter. No-op by default.
	ExportTo(e *export.Exporter, method export.Method)

	// Finalize validates configuration before the first ApplyGradient call.
	// No-op for rules without finalize-time setup.
	Finalize() error

	// Type returns the stable type name used by the factory to recreate this
	// optimizer kind.
	Type() string
}
