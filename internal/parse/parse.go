// Package parse resolves textual configuration tokens to typed kind indices.
//
// Each configuration domain (optimizer kind, loss kind, layer kind, ...) owns
// a fixed, ordered vocabulary whose last entry is always the "unknown"
// sentinel. Resolution is total: an unmatched token resolves to the sentinel
// index instead of failing, and callers treat the sentinel as a configuration
// error at their own boundary.
//
// Matching is case-insensitive and compares only over the candidate entry's
// length, trying entries in declaration order and taking the first match.
// Declaration order is therefore part of each domain's contract: a shorter
// entry declared earlier shadows longer entries it prefixes. For example, in
// the layer-property domain, "activation_fn" resolves to "activation".
package parse

import "strings"

// Domain selects one configuration vocabulary.
type Domain int

// Configuration domains.
const (
	DomainOptimizer Domain = iota
	DomainLoss
	DomainNetwork
	DomainActivation
	DomainLayer
	DomainWeightInit
	DomainWeightDecay
	DomainLayerProperty
	DomainUnknown
)

// unknownDomainIndex is the fixed index returned for DomainUnknown,
// representing an explicitly requested unknown classification (distinct from
// an unmatched token in a real domain).
const unknownDomainIndex = 3

// Per-domain vocabularies. Order is significant and part of the contract:
// resolution takes the first match, and the sentinel is always last.
var (
	optimizerTokens = []string{"sgd", "adam", "unknown"}

	lossTokens = []string{"msr", "cross", "unknown"}

	networkTokens = []string{"knn", "regression", "neuralnet", "unknown"}

	activationTokens = []string{"tanh", "sigmoid", "relu", "softmax", "unknown"}

	layerTokens = []string{"input", "fully_connected", "batch_normalization", "unknown"}

	weightInitTokens = []string{
		"lecun_normal", "lecun_uniform", "xavier_normal", "xavier_uniform",
		"he_normal", "he_uniform", "unknown",
	}

	weightDecayTokens = []string{"l2norm", "regression", "unknown"}

	layerPropertyTokens = []string{
		"input_shape", "bias_zero", "normalization", "standardization",
		"activation", "epsilon", "weight_decay", "unknown",
	}
)

// Kind indices for the optimizer domain.
const (
	OptimizerSGD uint = iota
	OptimizerAdam
	OptimizerUnknown
)

// Kind indices for the loss domain.
const (
	LossMSR uint = iota
	LossCrossEntropy
	LossUnknown
)

// Kind indices for the network domain.
const (
	NetworkKNN uint = iota
	NetworkRegression
	NetworkNeuralNet
	NetworkUnknown
)

// Kind indices for the activation domain.
const (
	ActivationTanh uint = iota
	ActivationSigmoid
	ActivationReLU
	ActivationSoftmax
	ActivationUnknown
)

// Kind indices for the layer domain.
const (
	LayerInput uint = iota
	LayerFullyConnected
	LayerBatchNormalization
	LayerUnknown
)

// Kind indices for the weight-initialization domain.
const (
	WeightInitLeCunNormal uint = iota
	WeightInitLeCunUniform
	WeightInitXavierNormal
	WeightInitXavierUniform
	WeightInitHeNormal
	WeightInitHeUniform
	WeightInitUnknown
)

// Kind indices for the weight-decay domain.
const (
	WeightDecayL2Norm uint = iota
	WeightDecayRegression
	WeightDecayUnknown
)

// Kind indices for the layer-property domain.
const (
	PropertyInputShape uint = iota
	PropertyBiasZero
	PropertyNormalization
	PropertyStandardization
	PropertyActivation
	PropertyEpsilon
	PropertyWeightDecay
	PropertyUnknown
)

// Tokens returns the domain's vocabulary in declaration order, or nil for
// DomainUnknown. The returned slice must not be modified.
func (d Domain) Tokens() []string {
	switch d {
	case DomainOptimizer:
		return optimizerTokens
	case DomainLoss:
		return lossTokens
	case DomainNetwork:
		return networkTokens
	case DomainActivation:
		return activationTokens
	case DomainLayer:
		return layerTokens
	case DomainWeightInit:
		return weightInitTokens
	case DomainWeightDecay:
		return weightDecayTokens
	case DomainLayerProperty:
		return layerPropertyTokens
	default:
		return nil
	}
}

// Count returns the number of entries in the domain, including the sentinel.
func (d Domain) Count() int {
	return len(d.Tokens())
}

// Sentinel returns the domain's "unknown" index, always the last entry.
func (d Domain) Sentinel() uint {
	if n := d.Count(); n > 0 {
		return uint(n - 1)
	}
	return unknownDomainIndex
}

// Resolve maps a token to its kind index within the domain.
//
// An unmatched token resolves to the domain's sentinel index; Resolve never
// fails and never returns an index outside [0, Count-1]. DomainUnknown
// resolves every token to a fixed index.
func Resolve(d Domain, token string) uint {
	entries := d.Tokens()
	if entries == nil {
		return unknownDomainIndex
	}
	return Lookup(entries, token)
}

// Lookup applies the resolver's matching rule to an arbitrary ordered
// vocabulary: case-insensitive comparison truncated to each candidate's
// length, first match wins, last entry returned when nothing matches.
//
// Exported so optimizer-specific property vocabularies share the exact
// matching semantics of the fixed domains.
func Lookup(entries []string, token string) uint {
	for i, entry := range entries {
		if len(token) >= len(entry) && strings.EqualFold(token[:len(entry)], entry) {
			return uint(i)
		}
	}
	return uint(len(entries) - 1)
}
