package optim

import (
	"fmt"
	"strings"
	"sync"

	"github.com/nntrain-ml/nntrain/internal/parse"
)

// CreateFunc constructs a fresh, unconfigured optimizer instance.
type CreateFunc func() Optimizer

// builtin maps resolved optimizer kind indices to constructors.
var builtin = map[uint]CreateFunc{
	parse.OptimizerSGD:  func() Optimizer { return NewSGD() },
	parse.OptimizerAdam: func() Optimizer { return NewAdam() },
}

// extensions holds optimizers registered at runtime under their exact
// (lowercased) type name. Consulted only when the builtin vocabulary does not
// resolve the token.
var (
	extMu      sync.RWMutex
	extensions = map[string]CreateFunc{}
)

// Register makes an additional optimizer type available to Create under the
// given type name. Registering a name twice replaces the earlier constructor.
//
// Instances obtained from dynamically loaded units must not be registered
// here: their lifetime is bound to the unit's paired destroy function, not to
// the generic teardown path.
func Register(name string, create CreateFunc) error {
	if name == "" || create == nil {
		return fmt.Errorf("optimizer registration requires a name and a constructor")
	}
	extMu.Lock()
	defer extMu.Unlock()
	extensions[strings.ToLower(name)] = create
	return nil
}

// Create constructs an optimizer from a type token and applies the property
// list exactly once before returning.
//
// The token is resolved through the optimizer domain first; tokens the domain
// does not know are looked up among registered extensions. An unknown type is
// a configuration error wrapping ErrUnknownOptimizer.
func Create(typeToken string, props []string) (Optimizer, error) {
	var create CreateFunc

	if kind := parse.Resolve(parse.DomainOptimizer, typeToken); kind != parse.OptimizerUnknown {
		create = builtin[kind]
	} else {
		extMu.RLock()
		create = extensions[strings.ToLower(typeToken)]
		extMu.RUnlock()
	}
	if create == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOptimizer, typeToken)
	}

	opt := create()
	if err := opt.SetProperty(props); err != nil {
		return nil, fmt.Errorf("configuring %q optimizer: %w", opt.Type(), err)
	}
	return opt, nil
}
