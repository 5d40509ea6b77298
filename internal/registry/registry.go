package registry

import (
	"sync"

	"github.com/google/uuid"
)

// Registry tracks which dropdown instances are currently open so that
// opening one widget can close its siblings. Instances register a close
// callback under a generated id and bind CloseOthers into their action
// dependencies.
type Registry struct {
	mu      sync.RWMutex
	closers map[string]func()
}

// New creates an empty widget registry
func New() *Registry {
	return &Registry{
		closers: make(map[string]func()),
	}
}

// Register adds a widget instance and returns its generated id
func (r *Registry) Register(closeFn func()) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.closers[id] = closeFn
	return id
}

// Deregister removes a widget instance
func (r *Registry) Deregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.closers, id)
}

// CloseOthers invokes the close callback of every registered instance
// except the given one
func (r *Registry) CloseOthers(id string) {
	r.mu.RLock()
	// Copy so callbacks run without the lock held
	closers := make([]func(), 0, len(r.closers))
	for otherID, closeFn := range r.closers {
		if otherID != id && closeFn != nil {
			closers = append(closers, closeFn)
		}
	}
	r.mu.RUnlock()

	for _, closeFn := range closers {
		closeFn()
	}
}

// Count returns the number of registered instances
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.closers)
}
