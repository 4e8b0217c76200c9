// Copyright 2025 The nntrain Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package parse resolves textual configuration tokens to typed kind indices.
//
// Each configuration domain owns a fixed, ordered vocabulary whose last entry
// is the "unknown" sentinel. Resolution is total: unmatched tokens resolve to
// the sentinel index, and callers treat the sentinel as a configuration error
// at their own boundary.
package parse

import (
	"github.com/nntrain-ml/nntrain/internal/parse"
)

// Domain selects one configuration vocabulary.
type Domain = parse.Domain

// Configuration domains.
const (
	DomainOptimizer     = parse.DomainOptimizer
	DomainLoss          = parse.DomainLoss
	DomainNetwork       = parse.DomainNetwork
	DomainActivation    = parse.DomainActivation
	DomainLayer         = parse.DomainLayer
	DomainWeightInit    = parse.DomainWeightInit
	DomainWeightDecay   = parse.DomainWeightDecay
	DomainLayerProperty = parse.DomainLayerProperty
	DomainUnknown       = parse.DomainUnknown
)

// Resolve maps a token to its kind index within the domain. An unmatched
// token resolves to the domain's sentinel index; Resolve never fails.
var Resolve = parse.Resolve

// Lookup applies the resolver's matching rule to an arbitrary ordered
// vocabulary.
var Lookup = parse.Lookup
