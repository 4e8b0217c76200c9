package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nntrain-ml/nntrain/internal/optim"
	"github.com/nntrain-ml/nntrain/internal/parse"
)

const validDoc = `
network: neuralnet
loss: cross
weight_init: xavier_uniform
optimizer:
  type: adam
  properties:
    - learning_rate=0.002
    - beta1=0.8
layers:
  - type: input
    properties:
      - normalization=true
  - type: fully_connected
    properties:
      - activation=relu
      - weight_decay=l2norm
`

// TestLoad_Valid checks a complete document resolves end to end.
func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(strings.NewReader(validDoc))
	require.NoError(t, err)

	assert.Equal(t, parse.NetworkNeuralNet, cfg.Network)
	assert.Equal(t, parse.LossCrossEntropy, cfg.Loss)
	assert.Equal(t, parse.WeightInitXavierUniform, cfg.WeightInit)

	require.Len(t, cfg.Layers, 2)
	assert.Equal(t, parse.LayerInput, cfg.Layers[0].Kind)
	assert.Equal(t, parse.LayerFullyConnected, cfg.Layers[1].Kind)

	require.NotNil(t, cfg.Optimizer)
	assert.Equal(t, optim.TypeAdam, cfg.Optimizer.Type())
	assert.InDelta(t, 0.002, cfg.Optimizer.DefaultLearningRate(), 1e-12)
}

// TestLoad_CaseInsensitiveTokens checks tokens resolve regardless of case.
func TestLoad_CaseInsensitiveTokens(t *testing.T) {
	doc := strings.ReplaceAll(validDoc, "neuralnet", "NeuralNet")
	doc = strings.ReplaceAll(doc, "adam", "Adam")

	cfg, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, parse.NetworkNeuralNet, cfg.Network)
	assert.Equal(t, optim.TypeAdam, cfg.Optimizer.Type())
}

// TestLoad_UnknownTokens checks each sentinel resolution fails the load and
// names the offending token.
func TestLoad_UnknownTokens(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantSub string
	}{
		{"network", func(d string) string { return strings.Replace(d, "neuralnet", "cnn", 1) }, `network type "cnn"`},
		{"loss", func(d string) string { return strings.Replace(d, "cross", "hinge", 1) }, `loss type "hinge"`},
		{"weight init", func(d string) string { return strings.Replace(d, "xavier_uniform", "orthogonal", 1) }, `weight initializer "orthogonal"`},
		{"layer type", func(d string) string { return strings.Replace(d, "fully_connected", "dropout", 1) }, `layer type "dropout"`},
		{"layer property", func(d string) string { return strings.Replace(d, "normalization=true", "rate=0.5", 1) }, `layer property "rate"`},
		{"activation value", func(d string) string { return strings.Replace(d, "activation=relu", "activation=swish", 1) }, `activation "swish"`},
		{"weight decay value", func(d string) string { return strings.Replace(d, "weight_decay=l2norm", "weight_decay=l1norm", 1) }, `weight decay "l1norm"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.mutate(validDoc)))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnresolvedToken)
			assert.Contains(t, err.Error(), tt.wantSub)
		})
	}
}

// TestLoad_UnknownOptimizer checks an unresolvable optimizer type fails with
// the factory's error.
func TestLoad_UnknownOptimizer(t *testing.T) {
	doc := strings.Replace(validDoc, "type: adam", "type: rmsprop", 1)
	doc = strings.Replace(doc, "- beta1=0.8", "", 1)

	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, optim.ErrUnknownOptimizer)
}

// TestLoad_BadOptimizerProperty checks property errors surface through the
// load.
func TestLoad_BadOptimizerProperty(t *testing.T) {
	doc := strings.Replace(validDoc, "learning_rate=0.002", "warmup=100", 1)

	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)

	var cfgErr *optim.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "warmup", cfgErr.Token)
}

// TestLoad_RejectsUnknownFields checks strict YAML decoding.
func TestLoad_RejectsUnknownFields(t *testing.T) {
	doc := validDoc + "\nscheduler: cosine\n"
	_, err := Load(strings.NewReader(doc))
	assert.Error(t, err)
}
