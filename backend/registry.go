package backend

import (
	"errors"
	"sync"

	"github.com/gogpu/pixedit"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU compositing backend.
	BackendSoftware = "software"
	// BackendGPU is the conventional name under which host integrations
	// (e.g. integration/gpucanvas wrapped in a closure over its draw
	// context) register themselves.
	BackendGPU = "gpu"
)

// ErrBackendNotAvailable is the panic value of MustDefault when no usable
// backend is registered.
var ErrBackendNotAvailable = errors.New("backend: not available")

// Factory creates a new backend instance.
type Factory func() pixedit.Backend

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	// GPU > Software (GPU is fastest, Software is fallback).
	backendPriority = []string{BackendGPU, BackendSoftware}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns a list of registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a backend instance by name.
// Returns nil if the backend is not registered.
func Get(name string) pixedit.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available backend based on priority.
// Returns nil if no backends are registered.
func Default() pixedit.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if b := factory(); b != nil {
				return b
			}
		}
	}

	// Fallback: return first available
	for _, factory := range backends {
		if b := factory(); b != nil {
			return b
		}
	}

	return nil
}

// MustDefault returns the default backend or panics with
// ErrBackendNotAvailable.
func MustDefault() pixedit.Backend {
	b := Default()
	if b == nil {
		panic(ErrBackendNotAvailable)
	}
	return b
}
