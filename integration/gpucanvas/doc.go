// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpucanvas bridges the pixedit tile cache to gogpu GPU-accelerated
// windows.
//
// The engine hands fixed-size pixel patches to a backend; this package
// uploads them as GPU textures and draws them through a
// gpucontext.TextureDrawer. The data flow is:
//
//	pixedit.TileCache (sample) -> Patch (CPU) -> GPU Texture -> Window
//
// # Usage
//
// Basic usage inside a gogpu draw callback:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    be, err := gpucanvas.New(dc.AsTextureDrawer(), maxTextureSide)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    ed := pixedit.NewEditor[pixedit.RGBA8](be)
//	    ...
//	})
//
// In practice the backend is created once and reused across frames; tile
// textures survive for the session and only dirty tiles are re-uploaded.
//
// # Error Handling
//
// pixedit.Backend methods carry no error returns: the engine treats texture
// failures as host-level faults. The backend records the first failure and
// exposes it through Err(); hosts should check it once per frame.
//
// # Thread Safety
//
// Backend is NOT safe for concurrent use, matching the engine's
// single-goroutine contract.
//
// # Integration Without Circular Imports
//
// This package imports only gpucontext, never gogpu itself, so the engine
// can integrate with GPU windows without a dependency cycle.
package gpucanvas
