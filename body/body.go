// Package body serializes request parameters according to the declared
// Content-Type. Each media type maps to a Strategy held in a Registry; media
// types without a strategy pass the parameters through untouched.
package body

import (
	"fmt"
	"sync"
)

// Strategy turns request parameters into a transport ready body.
type Strategy interface {
	Serialize(params any) (any, error)
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc func(params any) (any, error)

func (f StrategyFunc) Serialize(params any) (any, error) {
	return f(params)
}

type Registry struct {
	mu         sync.RWMutex
	strategies map[MimeType]Strategy
}

// NewRegistry returns an empty registry. Every media type passes through until
// a strategy is registered for it.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[MimeType]Strategy)}
}

// DefaultRegistry returns a registry holding the built-in JSON, form, YAML and
// BSON strategies.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(JSON, StrategyFunc(serializeJSON))
	r.Register(FORM, StrategyFunc(serializeForm))
	r.Register(YAML, StrategyFunc(serializeYAML))
	r.Register(BSON, StrategyFunc(serializeBSON))
	return r
}

func (r *Registry) Register(mimeType MimeType, strategy Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[mimeType] = strategy
}

func (r *Registry) Lookup(mimeType MimeType) (Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[mimeType]
	return s, ok
}

// Serialize encodes params with the strategy registered for contentType.
// Nil params yield a nil body. Unknown or absent content types return params
// unchanged.
func (r *Registry) Serialize(contentType string, params any) (body any, err error) {
	if params == nil {
		return nil, nil
	}
	mimeType := FromString(contentType)
	strategy, ok := r.Lookup(mimeType)
	if !ok {
		return params, nil
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			body = nil
			err = fmt.Errorf("panic during %s encode: %v", mimeType, recovered)
		}
	}()

	body, err = strategy.Serialize(params)
	if err != nil {
		return nil, fmt.Errorf("serialize %s body: %w", mimeType, err)
	}
	return body, nil
}

var defaultRegistry = DefaultRegistry()

// Register adds a strategy to the package registry used by Serialize.
func Register(mimeType MimeType, strategy Strategy) {
	defaultRegistry.Register(mimeType, strategy)
}

// Serialize encodes params with the package registry.
func Serialize(contentType string, params any) (any, error) {
	return defaultRegistry.Serialize(contentType, params)
}
