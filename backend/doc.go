// Package backend provides a pluggable host-backend abstraction for the
// pixedit tile cache.
//
// The engine itself never talks to a window system or a GPU. It hands
// fixed-size pixel patches to a pixedit.Backend, which owns texture
// allocation, updates, and on-screen placement. This package supplies the
// registry that maps backend names to factories, plus a CPU software
// backend that composites tiles into an image.RGBA framebuffer.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The software backend is automatically registered on import:
//
//	import _ "github.com/gogpu/pixedit/backend"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get("software")
//
// # Usage with Editor
//
// A backend plugs straight into the editor:
//
//	be := backend.MustDefault()
//	ed := pixedit.NewEditor[pixedit.RGBA8](be)
//
// # Available Backends
//
// - "software": CPU compositor into an image.RGBA framebuffer (always available)
// - "gpu": registered by host integrations that wrap a GPU draw context
package backend
