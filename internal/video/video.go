// Package video implements the ZX Spectrum ULA screen decode: the
// non-linear bitmap addressing, attribute-cell colouring, and the
// border margin, rendered as a pure function of memory.Memory contents
// plus the ULA's own border/flash state.
package video

import "github.com/intuitionamiga/spectrum48/internal/memory"

const (
	DisplayWidth  = 256
	DisplayHeight = 192

	CellSize = 8
	CellsX   = DisplayWidth / CellSize
	CellsY   = DisplayHeight / CellSize

	BorderSize = 32

	FrameWidth  = DisplayWidth + 2*BorderSize
	FrameHeight = DisplayHeight + 2*BorderSize

	// FlashFrames is the number of 50Hz frames between FLASH ink/paper
	// swaps.
	FlashFrames = 16
)

// ColorNormal holds RGB values for the 8 base colours (BRIGHT bit clear).
var ColorNormal = [8][3]uint8{
	{0, 0, 0},
	{0, 0, 205},
	{205, 0, 0},
	{205, 0, 205},
	{0, 205, 0},
	{0, 205, 205},
	{205, 205, 0},
	{205, 205, 205},
}

// ColorBright holds RGB values for the 8 colours with BRIGHT set.
var ColorBright = [8][3]uint8{
	{0, 0, 0},
	{0, 0, 255},
	{255, 0, 0},
	{255, 0, 255},
	{0, 255, 0},
	{0, 255, 255},
	{255, 255, 0},
	{255, 255, 255},
}

// BitmapOffset returns the offset into the 6144-byte bitmap region for
// pixel (x, y), following the Spectrum's non-linear Y addressing: the
// screen is divided into three 64-line thirds, each third into 8
// character rows, each row into 8 pixel rows.
func BitmapOffset(x, y int) int {
	col := x >> 3
	third := y / 64
	line := y % 64
	scan := line / 8
	pr := line % 8
	return (third << 11) | (pr << 8) | (scan << 5) | col
}

// AttributeOffset returns the offset into the 768-byte attribute region
// for the cell containing pixel (x, y).
func AttributeOffset(x, y int) int {
	col := x >> 3
	return (y>>3)*CellsX + col
}

// ParseAttribute extracts ink, paper, bright and flash from an
// attribute byte laid out FBPPPIII.
func ParseAttribute(attr byte) (ink, paper uint8, bright, flash bool) {
	ink = attr & 0x07
	paper = (attr >> 3) & 0x07
	bright = attr&0x40 != 0
	flash = attr&0x80 != 0
	return
}

// ULA holds the video chip's own state: the border colour latch and
// the flash-toggle frame counter. It owns no pixel data of its own —
// screen bitmap and attributes live in memory.Memory, and Render reads
// them fresh on every call.
type ULA struct {
	border     uint8
	frameCount int
	flashState bool
}

// New returns a ULA with border colour 0 (black) and flash clear.
func New() *ULA {
	return &ULA{}
}

// SetBorder latches a new border colour; only the low 3 bits matter.
func (u *ULA) SetBorder(color uint8) {
	u.border = color & 0x07
}

// Border returns the current border colour.
func (u *ULA) Border() uint8 { return u.border }

// Advance is called once per emulated frame; it toggles the FLASH
// state every FlashFrames frames.
func (u *ULA) Advance() {
	u.frameCount++
	if u.frameCount >= FlashFrames {
		u.frameCount = 0
		u.flashState = !u.flashState
	}
}

// Render decodes mem's screen bitmap and attributes, plus the current
// border colour and flash state, into a row-major RGBA framebuffer of
// FrameWidth x FrameHeight pixels.
func (u *ULA) Render(mem *memory.Memory) []byte {
	frame := make([]byte, FrameWidth*FrameHeight*4)
	u.RenderInto(mem, frame)
	return frame
}

// RenderInto renders into a caller-supplied buffer, which must be at
// least FrameWidth*FrameHeight*4 bytes, avoiding an allocation on every
// frame for callers that keep their own framebuffer.
func (u *ULA) RenderInto(mem *memory.Memory, frame []byte) {
	borderRGB := colorFor(u.border, false)
	fillBorder(frame, borderRGB)

	bitmap := mem.ScreenBitmap()
	attrs := mem.ScreenAttributes()

	for y := 0; y < DisplayHeight; y++ {
		rowBase := (BorderSize + y) * FrameWidth * 4
		for cellX := 0; cellX < CellsX; cellX++ {
			x := cellX * CellSize
			bitmapByte := bitmap[BitmapOffset(x, y)]
			attr := attrs[AttributeOffset(x, y)]
			ink, paper, bright, flash := ParseAttribute(attr)

			fg, bg := ink, paper
			if flash && u.flashState {
				fg, bg = bg, fg
			}
			fgRGB := colorFor(fg, bright)
			bgRGB := colorFor(bg, bright)

			pixelBase := rowBase + (BorderSize+x)*4
			for bit := 0; bit < 8; bit++ {
				idx := pixelBase + bit*4
				if bitmapByte&(0x80>>bit) != 0 {
					putPixel(frame, idx, fgRGB)
				} else {
					putPixel(frame, idx, bgRGB)
				}
			}
		}
	}
}

func colorFor(index uint8, bright bool) [3]uint8 {
	if bright {
		return ColorBright[index&0x07]
	}
	return ColorNormal[index&0x07]
}

func putPixel(frame []byte, idx int, rgb [3]uint8) {
	frame[idx] = rgb[0]
	frame[idx+1] = rgb[1]
	frame[idx+2] = rgb[2]
	frame[idx+3] = 0xFF
}

func fillBorder(frame []byte, rgb [3]uint8) {
	for idx := 0; idx < len(frame); idx += 4 {
		putPixel(frame, idx, rgb)
	}
}
