package ftchr

import (
	"sync/atomic"

	"github.com/andy-shea/ftchr/dto"
)

// DefaultsRegistry holds the options every dispatch starts from. Values are
// replaced whole and copied on the way in and out, so a snapshot never
// changes under a running request.
type DefaultsRegistry struct {
	current atomic.Pointer[dto.Options]
}

func NewDefaultsRegistry(initial dto.Options) *DefaultsRegistry {
	r := &DefaultsRegistry{}
	r.Set(initial)
	return r
}

// Set replaces the defaults. Later dispatches see the new value; dispatches
// already in flight keep the snapshot they started with.
func (r *DefaultsRegistry) Set(defaults dto.Options) {
	cpy := defaults.Clone()
	r.current.Store(&cpy)
}

// Snapshot returns a copy of the current defaults.
func (r *DefaultsRegistry) Snapshot() dto.Options {
	cur := r.current.Load()
	if cur == nil {
		return dto.BaselineDefaults()
	}
	return cur.Clone()
}
