// Package renderer is the coordination core of the terminal's display
// pipeline: it decides when and over which rows to repaint, and fans
// state-change notifications out to an ordered set of compositing
// layers.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Facade)             │
//	├───────────────┬─────────────────────────┤
//	│ refresh       │ layer                   │
//	│ (row-range    │ (background, text,      │
//	│  scheduler)   │  cursor │ selection)    │
//	├───────────────┴─────────────────────────┤
//	│ colors (palette snapshots)              │
//	├─────────────────────────────────────────┤
//	│ backend (tcell terminal │ null)         │
//	└─────────────────────────────────────────┘
//
// Data layers are row-oriented and painted once per display-refresh
// cycle via the scheduler; the selection layer is point-oriented and
// painted immediately. A completed flush publishes "render.refresh"
// with the effective row range so the host can mark those rows clean.
//
// OnResize reaches data layers only, while OnCharSizeChanged reaches
// both families: the selection overlay derives its dimensions from the
// selection points it is handed, but a glyph-metric change invalidates
// cached raster state everywhere.
//
// All coordination state lives on a single logical execution context;
// hosts drive the renderer from one event loop. Internal mutexes only
// guard the boundary and are never held across layer callbacks.
package renderer
