//go:build headless

package host

// New constructs the platform Host backend; this build uses the
// in-memory headless double.
func New() Host {
	return &HeadlessHost{}
}

// HeadlessHost is an in-memory Host double: it accepts Blit calls and
// records the last frame, but never opens a real window. Used by
// builds with the headless tag (CI) and by tests of the frame loop
// that would otherwise need a display.
type HeadlessHost struct {
	width, height int
	open          bool
	LastFrame     []byte

	// InjectedF1/F5/BorderKey let tests drive the key bindings without
	// a real keyboard; Pump consumes them exactly once.
	InjectedF1     bool
	InjectedF5     bool
	InjectedBorder *uint8

	f1, f5      bool
	borderColor uint8
	borderOK    bool
}

func (h *HeadlessHost) Open(width, height int, _ string) error {
	h.width, h.height = width, height
	h.open = true
	return nil
}

func (h *HeadlessHost) IsOpen() bool { return h.open }

func (h *HeadlessHost) Blit(frame []byte) error {
	h.LastFrame = frame
	return nil
}

func (h *HeadlessHost) Pump() error {
	h.f1, h.InjectedF1 = h.InjectedF1, false
	h.f5, h.InjectedF5 = h.InjectedF5, false
	h.borderOK = h.InjectedBorder != nil
	if h.borderOK {
		h.borderColor = *h.InjectedBorder
		h.InjectedBorder = nil
	}
	return nil
}

func (h *HeadlessHost) F1Pressed() bool { return h.f1 }
func (h *HeadlessHost) F5Pressed() bool { return h.f5 }

func (h *HeadlessHost) BorderKey() (uint8, bool) { return h.borderColor, h.borderOK }

func (h *HeadlessHost) Close() error {
	h.open = false
	return nil
}
