//go:build !headless

package host

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// borderKeys maps the number-row keys to the border colour (0-7) they
// select, per the 1-8 runtime binding.
var borderKeys = map[ebiten.Key]uint8{
	ebiten.Key1: 0,
	ebiten.Key2: 1,
	ebiten.Key3: 2,
	ebiten.Key4: 3,
	ebiten.Key5: 4,
	ebiten.Key6: 5,
	ebiten.Key7: 6,
	ebiten.Key8: 7,
}

// New constructs the platform Host backend; this build uses ebiten.
func New() Host {
	return &EbitenHost{}
}

// EbitenHost implements Host on top of ebiten's game loop. ebiten drives
// its own Draw/Layout callbacks from a dedicated goroutine started by
// Open; Blit hands the next frame across a mutex-guarded buffer rather
// than calling into ebiten directly, since ebiten's image calls are not
// safe to make from an arbitrary goroutine.
type EbitenHost struct {
	width, height int

	mu       sync.Mutex
	pending  []byte
	image    *ebiten.Image
	open     bool
	closeErr error

	f1, f5      bool
	borderColor uint8
	borderOK    bool
}

// Open starts ebiten's game loop on a background goroutine. ebiten owns
// the OS event loop from that point on; the frame loop talks to it only
// through the mutex-guarded fields above.
func (h *EbitenHost) Open(width, height int, title string) error {
	h.mu.Lock()
	h.width, h.height = width, height
	h.open = true
	h.mu.Unlock()
	ready := make(chan struct{})

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	go func() {
		close(ready)
		err := ebiten.RunGame(&ebitenGame{host: h})
		h.mu.Lock()
		h.open = false
		h.closeErr = err
		h.mu.Unlock()
	}()
	<-ready
	return nil
}

func (h *EbitenHost) IsOpen() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.open
}

func (h *EbitenHost) Blit(frame []byte) error {
	h.mu.Lock()
	h.pending = frame
	h.mu.Unlock()
	return nil
}

// Pump samples ebiten's input state once: it records the F1, F5 and
// number-key just-pressed edges that the query methods below report.
// ebiten's own goroutine drives Update/Draw independently.
func (h *EbitenHost) Pump() error {
	h.f1 = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	h.f5 = inpututil.IsKeyJustPressed(ebiten.KeyF5)
	h.borderOK = false
	for key, color := range borderKeys {
		if inpututil.IsKeyJustPressed(key) {
			h.borderColor = color
			h.borderOK = true
			break
		}
	}
	return nil
}

func (h *EbitenHost) F1Pressed() bool { return h.f1 }
func (h *EbitenHost) F5Pressed() bool { return h.f5 }

func (h *EbitenHost) BorderKey() (uint8, bool) { return h.borderColor, h.borderOK }

func (h *EbitenHost) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.open = false
	return h.closeErr
}

// ebitenGame adapts EbitenHost to ebiten.Game.
type ebitenGame struct {
	host *EbitenHost
}

func (g *ebitenGame) Update() error {
	if !g.host.IsOpen() {
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	h := g.host
	h.mu.Lock()
	if h.image == nil {
		h.image = ebiten.NewImage(h.width, h.height)
	}
	if h.pending != nil {
		h.image.WritePixels(h.pending)
	}
	img := h.image
	h.mu.Unlock()
	screen.DrawImage(img, nil)
}

func (g *ebitenGame) Layout(_, _ int) (int, int) {
	return g.host.width, g.host.height
}
