package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allDomains = []Domain{
	DomainOptimizer,
	DomainLoss,
	DomainNetwork,
	DomainActivation,
	DomainLayer,
	DomainWeightInit,
	DomainWeightDecay,
	DomainLayerProperty,
}

// TestResolve_DeclaredTokens checks every token in every domain resolves to
// its declared index, in both lower and upper case.
func TestResolve_DeclaredTokens(t *testing.T) {
	for _, d := range allDomains {
		tokens := d.Tokens()
		require.NotEmpty(t, tokens, "domain %d has no vocabulary", d)

		// All entries except the sentinel.
		for i, token := range tokens[:len(tokens)-1] {
			assert.Equal(t, uint(i), Resolve(d, token),
				"domain %d token %q", d, token)
			assert.Equal(t, uint(i), Resolve(d, strings.ToUpper(token)),
				"domain %d token %q (uppercase)", d, token)
		}
	}
}

// TestResolve_SentinelLast checks the sentinel is the last entry of every
// domain and equals Count-1.
func TestResolve_SentinelLast(t *testing.T) {
	for _, d := range allDomains {
		tokens := d.Tokens()
		assert.Equal(t, "unknown", tokens[len(tokens)-1], "domain %d", d)
		assert.Equal(t, uint(d.Count()-1), d.Sentinel(), "domain %d", d)
	}
}

// TestResolve_UnmatchedToken checks tokens matching no entry resolve to the
// sentinel index.
func TestResolve_UnmatchedToken(t *testing.T) {
	for _, d := range allDomains {
		got := Resolve(d, "zzz_no_such_token")
		assert.Equal(t, d.Sentinel(), got, "domain %d", d)
	}

	// rmsprop is not a known optimizer; 3-entry domain, so the sentinel index
	// is 2.
	assert.Equal(t, uint(2), Resolve(DomainOptimizer, "rmsprop"))
}

// TestResolve_OptimizerDomain pins the optimizer vocabulary end to end.
func TestResolve_OptimizerDomain(t *testing.T) {
	assert.Equal(t, OptimizerSGD, Resolve(DomainOptimizer, "sgd"))
	assert.Equal(t, OptimizerAdam, Resolve(DomainOptimizer, "Adam"))
	assert.Equal(t, OptimizerUnknown, Resolve(DomainOptimizer, "rmsprop"))
}

// TestResolve_PrefixShadowing pins the first-match-wins truncated-prefix
// behavior: an input longer than an entry matches that entry as long as the
// entry is a case-insensitive prefix of the input.
func TestResolve_PrefixShadowing(t *testing.T) {
	// "activation_fn" truncates to "activation" for the comparison against
	// entry 4 and matches it, rather than falling through to the sentinel.
	assert.Equal(t, PropertyActivation, Resolve(DomainLayerProperty, "activation_fn"))

	// "input_shape" is tried against "input_shape" first and wins there.
	assert.Equal(t, PropertyInputShape, Resolve(DomainLayerProperty, "input_shape"))

	// "sgd_momentum" still resolves to sgd: comparison truncates to entry
	// length.
	assert.Equal(t, OptimizerSGD, Resolve(DomainOptimizer, "sgd_momentum"))

	// An input shorter than every matching candidate does not match: "inp" is
	// a prefix of "input" but the comparison runs over the candidate's own
	// length.
	assert.Equal(t, LayerUnknown, Resolve(DomainLayer, "inp"))
}

// TestResolve_UnknownDomain checks the explicit unknown-domain selector
// returns its fixed index regardless of input.
func TestResolve_UnknownDomain(t *testing.T) {
	assert.Equal(t, uint(3), Resolve(DomainUnknown, "sgd"))
	assert.Equal(t, uint(3), Resolve(DomainUnknown, ""))
	assert.Equal(t, uint(3), Resolve(DomainUnknown, "anything"))
}

// TestResolve_InRange checks resolution never leaves [0, Count-1].
func TestResolve_InRange(t *testing.T) {
	inputs := []string{"", "a", "unknown", "UNKNOWN_extra", "l2", "l2norm_x"}
	for _, d := range allDomains {
		for _, in := range inputs {
			got := Resolve(d, in)
			assert.Less(t, got, uint(d.Count()), "domain %d input %q", d, in)
		}
	}
}

// TestLookup_SharedMatcher checks Lookup over a caller-supplied vocabulary
// behaves identically to domain resolution.
func TestLookup_SharedMatcher(t *testing.T) {
	vocab := []string{"learning_rate", "beta1", "unknown"}

	assert.Equal(t, uint(0), Lookup(vocab, "Learning_Rate"))
	assert.Equal(t, uint(1), Lookup(vocab, "beta1"))
	assert.Equal(t, uint(1), Lookup(vocab, "beta12")) // truncated comparison
	assert.Equal(t, uint(2), Lookup(vocab, "beta"))   // shorter than candidate
	assert.Equal(t, uint(2), Lookup(vocab, "gamma"))
}
