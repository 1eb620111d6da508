// Package pixedit provides a tiled raster image-editing engine for Go.
//
// # Overview
//
// pixedit lets an application paint shaped strokes onto a large, addressable
// pixel surface while keeping on-screen rendering cheap. It is an embedded
// engine, not a GUI: the host supplies input and a texture backend, and
// pixedit supplies exact integer brush geometry, a lazily-materialized tiled
// render cache with per-tile dirty invalidation, and a sparse, frame-grouped
// undo/redo log.
//
// # Quick Start
//
//	import "github.com/gogpu/pixedit"
//
//	// The image being edited. Buffer is the built-in dense implementation;
//	// any type implementing Image works.
//	img := pixedit.NewBuffer[pixedit.RGBA8](1000, 1000)
//
//	// One editor per logical canvas, bound to a host render backend.
//	ed := pixedit.NewEditor[pixedit.RGBA8](backend)
//
//	// Once per host frame:
//	ed.Edit(img, input, pixedit.Ellipse(3, 3), pixedit.RGBA8{R: 255, A: 255})
//
// # Architecture
//
// The library is organized into:
//   - Public API: Image, Buffer, Crop, Brush, History, TileCache, Editor
//   - Backends: backend (registry + software), integration/gpucanvas (gogpu)
//   - Demo: cmd/pixedit-term (terminal host via tcell)
//
// Writes flow through composable views: the undo tracker records a delta and
// forwards to the tile tracker, which marks the owning tile dirty and
// forwards to the underlying image. Reads and the render pass go straight to
// the image.
//
// # Coordinate System
//
// Pixel coordinates are signed integers; the image origin need not be (0,0).
// Bounds are inclusive ranges that may grow over a session but never shrink.
//
// # Concurrency
//
// The engine is single-threaded and cooperative with the host's frame tick.
// No operation blocks; every call runs to completion before returning.
package pixedit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
