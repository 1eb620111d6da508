package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/pixedit"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	// Software backend is auto-registered via init()
	if !IsRegistered("software") {
		t.Error("software backend should be auto-registered")
	}

	b := Get("software")
	if b == nil {
		t.Fatal("Get(software) returned nil")
	}
	if _, ok := b.(*Software); !ok {
		t.Errorf("Get(software) = %T, want *Software", b)
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if b := Get("nonexistent"); b != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	found := false
	for _, name := range Available() {
		if name == "software" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Available() should include 'software'")
	}
}

func TestRegistryDefault(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
}

func TestRegistryDefaultPrefersGPU(t *testing.T) {
	fake := NewSoftware()
	Register(BackendGPU, func() pixedit.Backend { return fake })
	defer Unregister(BackendGPU)

	if b := Default(); b != pixedit.Backend(fake) {
		t.Error("Default() did not prefer the registered gpu backend")
	}
}

func TestRegistryMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	if b := MustDefault(); b == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestRegistryMustDefaultEmpty(t *testing.T) {
	// Empty the registry for the duration of the test; only the software
	// backend is registered from init().
	names := Available()
	for _, name := range names {
		Unregister(name)
	}
	defer Register(BackendSoftware, func() pixedit.Backend { return NewSoftware() })

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustDefault() did not panic with an empty registry")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrBackendNotAvailable) {
			t.Errorf("MustDefault() panicked with %v, want %v", r, ErrBackendNotAvailable)
		}
	}()
	MustDefault()
}

func TestRegistryUnregister(t *testing.T) {
	Register("test-backend", func() pixedit.Backend { return NewSoftware() })
	if !IsRegistered("test-backend") {
		t.Error("test-backend should be registered")
	}

	Unregister("test-backend")
	if IsRegistered("test-backend") {
		t.Error("test-backend should be unregistered")
	}
}
