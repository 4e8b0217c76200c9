// Package config loads model/training configuration files and resolves every
// textual token into typed kinds.
//
// The file is a YAML document naming the network type, the loss, an optional
// weight initializer, the layer stack, and the optimizer with its property
// list. Resolution is strict at this boundary: any token the resolver maps to
// a domain's "unknown" sentinel fails the load, naming the offending token.
//
// Example document:
//
//	network: neuralnet
//	loss: cross
//	weight_init: xavier_uniform
//	optimizer:
//	  type: adam
//	  properties:
//	    - learning_rate=0.001
//	    - beta1=0.9
//	layers:
//	  - type: fully_connected
//	    properties:
//	      - activation=relu
//	      - weight_decay=l2norm
package config

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nntrain-ml/nntrain/internal/optim"
	"github.com/nntrain-ml/nntrain/internal/parse"
)

// ErrUnresolvedToken reports a configuration token that resolved to a
// domain's unknown sentinel.
var ErrUnresolvedToken = errors.New("unresolved configuration token")

// Config is a fully resolved model configuration.
type Config struct {
	Network    uint            // Resolved network kind
	Loss       uint            // Resolved loss kind
	WeightInit uint            // Resolved weight-init kind (sentinel when absent)
	Layers     []Layer         // Layer stack in file order
	Optimizer  optim.Optimizer // Constructed and configured optimizer
}

// Layer is one resolved layer description.
type Layer struct {
	Kind       uint     // Resolved layer kind
	Properties []string // Raw "key=value" entries, keys already validated
}

// File-shape types for YAML decoding.
type fileModel struct {
	Network    string        `yaml:"network"`
	Loss       string        `yaml:"loss"`
	WeightInit string        `yaml:"weight_init"`
	Optimizer  fileOptimizer `yaml:"optimizer"`
	Layers     []fileLayer   `yaml:"layers"`
}

type fileOptimizer struct {
	Type       string   `yaml:"type"`
	Properties []string `yaml:"properties"`
}

type fileLayer struct {
	Type       string   `yaml:"type"`
	Properties []string `yaml:"properties"`
}

// LoadFile loads and resolves a configuration file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a YAML configuration document and resolves every token.
func Load(r io.Reader) (*Config, error) {
	var fm fileModel
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fm); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	cfg := &Config{}

	cfg.Network = parse.Resolve(parse.DomainNetwork, fm.Network)
	if cfg.Network == parse.NetworkUnknown {
		return nil, errors.Wrapf(ErrUnresolvedToken, "network type %q", fm.Network)
	}

	cfg.Loss = parse.Resolve(parse.DomainLoss, fm.Loss)
	if cfg.Loss == parse.LossUnknown {
		return nil, errors.Wrapf(ErrUnresolvedToken, "loss type %q", fm.Loss)
	}

	cfg.WeightInit = parse.WeightInitUnknown
	if fm.WeightInit != "" {
		cfg.WeightInit = parse.Resolve(parse.DomainWeightInit, fm.WeightInit)
		if cfg.WeightInit == parse.WeightInitUnknown {
			return nil, errors.Wrapf(ErrUnresolvedToken, "weight initializer %q", fm.WeightInit)
		}
	}

	for i, fl := range fm.Layers {
		layer, err := resolveLayer(fl)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		cfg.Layers = append(cfg.Layers, layer)
	}

	opt, err := optim.Create(fm.Optimizer.Type, fm.Optimizer.Properties)
	if err != nil {
		return nil, errors.Wrap(err, "optimizer")
	}
	if err := opt.Finalize(); err != nil {
		return nil, errors.Wrap(err, "optimizer")
	}
	cfg.Optimizer = opt

	return cfg, nil
}

// resolveLayer resolves a layer's type and validates its property keys, plus
// the property values that are themselves tokens of another domain.
func resolveLayer(fl fileLayer) (Layer, error) {
	kind := parse.Resolve(parse.DomainLayer, fl.Type)
	if kind == parse.LayerUnknown {
		return Layer{}, errors.Wrapf(ErrUnresolvedToken, "layer type %q", fl.Type)
	}

	for _, entry := range fl.Properties {
		if err := validateLayerProperty(entry); err != nil {
			return Layer{}, err
		}
	}

	return Layer{Kind: kind, Properties: fl.Properties}, nil
}

func validateLayerProperty(entry string) error {
	key, value := splitEntry(entry)
	prop := parse.Resolve(parse.DomainLayerProperty, key)
	if prop == parse.PropertyUnknown {
		return errors.Wrapf(ErrUnresolvedToken, "layer property %q", key)
	}

	// Token-valued properties are resolved against their own domains.
	switch prop {
	case parse.PropertyActivation:
		if parse.Resolve(parse.DomainActivation, value) == parse.ActivationUnknown {
			return errors.Wrapf(ErrUnresolvedToken, "activation %q", value)
		}
	case parse.PropertyWeightDecay:
		if parse.Resolve(parse.DomainWeightDecay, value) == parse.WeightDecayUnknown {
			return errors.Wrapf(ErrUnresolvedToken, "weight decay %q", value)
		}
	}
	return nil
}

func splitEntry(entry string) (key, value string) {
	key, value, _ = strings.Cut(entry, "=")
	return key, value
}
