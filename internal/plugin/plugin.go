// Package plugin loads runtime-pluggable optimizer units.
//
// A pluggable unit is an independently built Go plugin that exports exactly
// one descriptor symbol, named by SymbolName, of type Pluggable: a paired
// create/destroy function set. The pairing is the ownership contract across
// the load boundary: an instance produced by a unit's create function must be
// released only through the same unit's destroy function, never through the
// host's generic teardown path. Handle enforces this by carrying the paired
// destroy function with the instance.
package plugin

import (
	goplugin "plugin"

	"github.com/pkg/errors"

	"github.com/nntrain-ml/nntrain/internal/optim"
)

// SymbolName is the fixed symbol a pluggable optimizer unit must export.
const SymbolName = "OptimizerPluggable"

// Common errors.
var (
	ErrMissingSymbol = errors.New("plugin does not export the optimizer descriptor symbol")
	ErrBadDescriptor = errors.New("plugin optimizer descriptor is malformed")
)

// Pluggable is the descriptor record a unit exports under SymbolName.
type Pluggable struct {
	// Create returns a newly allocated, unconfigured optimizer.
	Create func() optim.Optimizer

	// Destroy releases an optimizer obtained from Create. It must be able to
	// free the instance with the unit's own allocator.
	Destroy func(optim.Optimizer)
}

// Unit is a loaded pluggable optimizer unit.
type Unit struct {
	path      string
	pluggable Pluggable
}

// Open loads a pluggable optimizer unit and validates its descriptor.
//
// A unit missing the descriptor symbol, exporting it with the wrong type, or
// leaving either function nil is rejected here, before any optimizer is
// constructed from it.
func Open(path string) (*Unit, error) {
	p, err := goplugin.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening optimizer plugin %s", path)
	}
	return fromPlugin(p, path)
}

func fromPlugin(p *goplugin.Plugin, path string) (*Unit, error) {
	sym, err := p.Lookup(SymbolName)
	if err != nil {
		return nil, errors.Wrapf(ErrMissingSymbol, "plugin %s", path)
	}
	desc, ok := sym.(*Pluggable)
	if !ok {
		return nil, errors.Wrapf(ErrBadDescriptor, "plugin %s: symbol %s has type %T", path, SymbolName, sym)
	}
	return NewUnit(path, *desc)
}

// NewUnit wraps a descriptor as a loaded unit, validating it the same way
// Open does. Split out so in-process descriptors (tests, statically linked
// extensions) go through identical validation.
func NewUnit(path string, desc Pluggable) (*Unit, error) {
	if desc.Create == nil || desc.Destroy == nil {
		return nil, errors.Wrapf(ErrBadDescriptor, "plugin %s: descriptor must pair create and destroy", path)
	}
	return &Unit{path: path, pluggable: desc}, nil
}

// Path returns the path the unit was loaded from.
func (u *Unit) Path() string {
	return u.path
}

// New creates an optimizer from the unit and applies the property list
// exactly once, mirroring the factory contract for linked-in optimizers.
//
// The returned handle owns the instance; release it with Handle.Release.
func (u *Unit) New(props []string) (*Handle, error) {
	opt := u.pluggable.Create()
	if opt == nil {
		return nil, errors.Wrapf(ErrBadDescriptor, "plugin %s: create returned nil", u.path)
	}
	if err := opt.SetProperty(props); err != nil {
		u.pluggable.Destroy(opt)
		return nil, errors.Wrapf(err, "configuring %q optimizer from plugin %s", opt.Type(), u.path)
	}
	return &Handle{opt: opt, destroy: u.pluggable.Destroy}, nil
}

// Handle is a foreign-ownership wrapper around an optimizer created by a
// pluggable unit. It tags the instance with the unit's destroy function so
// generic code can release it correctly without knowing the concrete type.
type Handle struct {
	opt     optim.Optimizer
	destroy func(optim.Optimizer)
}

// Optimizer returns the wrapped instance, or nil after Release.
func (h *Handle) Optimizer() optim.Optimizer {
	return h.opt
}

// Release destroys the instance through the unit's paired destroy function.
// The handle is unusable afterwards; further Release calls are no-ops, so the
// destroy function runs at most once per instance.
func (h *Handle) Release() {
	if h.opt == nil {
		return
	}
	h.destroy(h.opt)
	h.opt = nil
	h.destroy = nil
}
