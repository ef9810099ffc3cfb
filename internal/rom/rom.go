// Package rom loads ZX Spectrum 48K ROM images from disk.
package rom

import (
	"errors"
	"fmt"
	"os"

	"github.com/intuitionamiga/spectrum48/internal/memory"
)

// ErrInvalidSize indicates a ROM file whose length is not exactly
// memory.ROMSize bytes.
var ErrInvalidSize = errors.New("rom: invalid image size")

// Load reads the ROM image at path and validates its size. A 48K
// Spectrum ROM is always exactly 16384 bytes; any other length is
// rejected rather than silently truncated or padded.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rom: failed to read %q: %w", path, err)
	}
	if len(data) != memory.ROMSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d bytes from %q",
			ErrInvalidSize, memory.ROMSize, len(data), path)
	}
	return data, nil
}
