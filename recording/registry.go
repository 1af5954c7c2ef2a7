package recording

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownBackend is returned by NewBackend for a name no package has
// registered.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// BackendFactory creates a backend for one playback.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available by name. Output packages call it from
// init, so importing them for side effects is enough:
//
//	import _ "github.com/gogpu/rive/recording/backends/svg" // registers "svg"
//
// Register panics on an empty name, a nil factory or a name registered
// twice.
func Register(name string, factory BackendFactory) {
	if name == "" || factory == nil {
		panic("recording: Register needs a name and a factory")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

// NewBackend creates a fresh backend registered under name. For an unknown
// name the error wraps ErrUnknownBackend and lists the registered names.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	return factory(), nil
}

// Backends returns the registered names in alphabetical order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(backends))
}

// IsRegistered reports whether a backend is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
