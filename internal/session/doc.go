// Package session binds the tab registry, the store and the single editing
// surface.
//
// A Controller is created per process and moves through an explicit
// lifecycle:
//
//	New       wire registry, store and logger
//	Init      load persisted tabs and the active id, repair both
//	Attach    bind the editing surface; the session is now ready
//	Teardown  flush the active tab, persist, detach
//
// Operations that need the surface (Switch, CreateAndActivate,
// CloseAndReconcile, CaptureActive) return false without side effects until
// Attach has run. Rename only touches the registry and works at any time.
//
// The Controller is not safe for concurrent use. The TUI calls it from the
// Bubble Tea event loop only; the debounce timer posts a message instead of
// calling CaptureActive directly.
package session
