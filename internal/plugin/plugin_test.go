package plugin

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nntrain-ml/nntrain/internal/optim"
)

// countingPluggable builds a descriptor instrumented with create/destroy
// counters, standing in for an externally built unit.
func countingPluggable(created, destroyed *int) Pluggable {
	return Pluggable{
		Create: func() optim.Optimizer {
			*created++
			return optim.NewSGD()
		},
		Destroy: func(o optim.Optimizer) {
			*destroyed++
		},
	}
}

// TestNewUnit_RejectsUnpairedDescriptor checks descriptors missing either
// function are rejected before any optimizer is constructed.
func TestNewUnit_RejectsUnpairedDescriptor(t *testing.T) {
	var created, destroyed int
	desc := countingPluggable(&created, &destroyed)

	_, err := NewUnit("test.so", Pluggable{Create: desc.Create})
	assert.ErrorIs(t, err, ErrBadDescriptor)

	_, err = NewUnit("test.so", Pluggable{Destroy: desc.Destroy})
	assert.ErrorIs(t, err, ErrBadDescriptor)

	assert.Zero(t, created, "rejected descriptor must not create instances")
}

// TestUnit_NewAppliesProperties checks the unit applies the property list
// exactly once, mirroring the factory contract.
func TestUnit_NewAppliesProperties(t *testing.T) {
	var created, destroyed int
	u, err := NewUnit("test.so", countingPluggable(&created, &destroyed))
	require.NoError(t, err)

	h, err := u.New([]string{"learning_rate=0.5", "momentum=0.9"})
	require.NoError(t, err)
	defer h.Release()

	assert.Equal(t, 1, created)
	assert.InDelta(t, 0.5, h.Optimizer().DefaultLearningRate(), 1e-12)
}

// TestUnit_NewDestroysOnBadProperties checks a failed configuration releases
// the half-built instance through the unit's own destroy function.
func TestUnit_NewDestroysOnBadProperties(t *testing.T) {
	var created, destroyed int
	u, err := NewUnit("test.so", countingPluggable(&created, &destroyed))
	require.NoError(t, err)

	_, err = u.New([]string{"no_such_property=1"})
	require.Error(t, err)

	var cfgErr *optim.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, destroyed)
}

// TestHandle_ReleaseOnce checks the paired destroy function runs at most once
// per instance and the handle is unusable afterwards.
func TestHandle_ReleaseOnce(t *testing.T) {
	var created, destroyed int
	u, err := NewUnit("test.so", countingPluggable(&created, &destroyed))
	require.NoError(t, err)

	h, err := u.New(nil)
	require.NoError(t, err)
	require.NotNil(t, h.Optimizer())

	h.Release()
	assert.Nil(t, h.Optimizer(), "instance must not be reachable after release")
	assert.Equal(t, 1, destroyed)

	// A second release must not reach the destroy function again.
	h.Release()
	assert.Equal(t, 1, destroyed)
}

// TestOpen_MissingFile checks load failures surface before construction.
func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("testdata/no_such_unit.so")
	require.Error(t, err)

	// Nothing beyond the load error: no descriptor, no instances.
	assert.False(t, errors.Is(err, ErrBadDescriptor))
}
