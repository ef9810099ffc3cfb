// Package host defines the window/input contract the emulator core is
// agnostic to: opening a window of fixed pixel dimensions,
// blitting a row-major RGBA framebuffer, and a non-blocking query of
// the debug key bindings (F1 system info, F5 reset, 1-8 border
// colour). An ebiten-backed implementation lives in host_ebiten.go
// (build tag !headless); a headless double for tests and for CI lives
// in host_headless.go.
package host

// Host is the window surface the frame loop drives once per frame.
type Host interface {
	// Open creates a window sized width x height pixels (before any
	// display scale factor) with the given title.
	Open(width, height int, title string) error

	// IsOpen reports whether the window is still open; the frame loop
	// exits cleanly once this turns false.
	IsOpen() bool

	// Blit uploads a row-major RGBA framebuffer for display. len(frame)
	// must equal width*height*4 as passed to Open.
	Blit(frame []byte) error

	// Pump services the host's event loop once per frame (processing
	// window events on backends that need it) and must be called
	// before any of the key-query methods below.
	Pump() error

	// F1Pressed reports a single F1 key-down edge since the last Pump.
	F1Pressed() bool

	// F5Pressed reports a single F5 key-down edge since the last Pump.
	F5Pressed() bool

	// BorderKey reports whether one of the number keys 1-8 was just
	// pressed, returning the corresponding border colour 0-7.
	BorderKey() (color uint8, ok bool)

	// Close releases any resources held by the window.
	Close() error
}
