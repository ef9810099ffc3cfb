package debug

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intuitionamiga/spectrum48/internal/emulator"
)

func TestFormatInfoContainsAllFields(t *testing.T) {
	info := emulator.Info{
		PC: 0x1234, SP: 0xFFFE,
		AF: 0x0044, BC: 0x0102, DE: 0x0304, HL: 0x0506,
		IX: 0x2800, IY: 0x2900,
		IM:         1,
		IFF1:       true,
		IFF2:       false,
		Halted:     false,
		Border:     3,
		FrameCount: 42,
	}

	out := FormatInfo(info)
	require.Contains(t, out, "PC=1234")
	require.Contains(t, out, "SP=FFFE")
	require.Contains(t, out, "AF=0044")
	require.Contains(t, out, "IX=2800")
	require.Contains(t, out, "IY=2900")
	require.Contains(t, out, "IFF1=true")
	require.Contains(t, out, "IFF2=false")
	require.Contains(t, out, "Border=3")
	require.Contains(t, out, "Frame=42")
}
