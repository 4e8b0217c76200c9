package optim

import (
	"strconv"
	"strings"

	"github.com/nntrain-ml/nntrain/internal/parse"
)

// propertyKey indexes the optimizer property vocabulary.
type propertyKey uint

// Optimizer property keys. This vocabulary is an optimizer-specific superset
// of the generic layer-property vocabulary and is resolved with the same
// first-match-wins truncated-prefix rule; order is significant and the
// sentinel is last.
const (
	propLearningRate propertyKey = iota
	propDecayRate
	propDecaySteps
	propBeta1
	propBeta2
	propEpsilon
	propMomentum
	propUnknown
)

var propertyTokens = []string{
	"learning_rate", "decay_rate", "decay_steps",
	"beta1", "beta2", "epsilon", "momentum", "unknown",
}

// resolveProperty splits one "key=value" entry and resolves the key.
//
// A key resolving to the sentinel is a configuration error carrying the
// offending token; it must never be silently applied to a wrong field.
func resolveProperty(entry string) (propertyKey, string, error) {
	key, value, found := strings.Cut(entry, "=")
	if !found {
		return propUnknown, "", &ConfigurationError{
			Token:   entry,
			Details: "expected key=value",
		}
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	resolved := propertyKey(parse.Lookup(propertyTokens, key))
	if resolved == propUnknown {
		return propUnknown, "", &ConfigurationError{
			Token:   key,
			Details: "unrecognized optimizer property",
		}
	}
	return resolved, value, nil
}

// parseFloatValue parses a property value as float64.
func parseFloatValue(key propertyKey, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ConfigurationError{
			Token:   value,
			Details: "property " + propertyTokens[key] + " requires a numeric value",
		}
	}
	return f, nil
}
