package debug

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intuitionamiga/spectrum48/internal/memory"
)

func TestDisassembleSimpleSequence(t *testing.T) {
	mem := memory.New(make([]byte, memory.ROMSize))
	mem.Write(0x8000, 0x3E) // LD A, $42
	mem.Write(0x8001, 0x42)
	mem.Write(0x8002, 0x00) // NOP
	mem.Write(0x8003, 0x76) // HALT

	lines := Disassemble(mem, 0x8000, 3)
	require.Len(t, lines, 3)
	require.Equal(t, "LD A, $42", lines[0].Mnemonic)
	require.Equal(t, 2, lines[0].Size)
	require.Equal(t, uint16(0x8000), lines[0].Address)
	require.Equal(t, "NOP", lines[1].Mnemonic)
	require.Equal(t, uint16(0x8002), lines[1].Address)
	require.Equal(t, "HALT", lines[2].Mnemonic)
}

func TestDisassembleJumpSetsBranchTarget(t *testing.T) {
	mem := memory.New(make([]byte, memory.ROMSize))
	mem.Write(0x8000, 0xC3) // JP $4000
	mem.Write(0x8001, 0x00)
	mem.Write(0x8002, 0x40)

	lines := Disassemble(mem, 0x8000, 1)
	require.Len(t, lines, 1)
	require.True(t, lines[0].IsBranch)
	require.Equal(t, uint16(0x4000), lines[0].BranchTarget)
	require.Equal(t, "JP $4000", lines[0].Mnemonic)
}

func TestDisassembleRelativeJumpTarget(t *testing.T) {
	mem := memory.New(make([]byte, memory.ROMSize))
	mem.Write(0x8000, 0x18) // JR +5
	mem.Write(0x8001, 0x05)

	lines := Disassemble(mem, 0x8000, 1)
	require.True(t, lines[0].IsBranch)
	require.Equal(t, uint16(0x8007), lines[0].BranchTarget)
}

func TestDisassembleIndexedBitInstruction(t *testing.T) {
	mem := memory.New(make([]byte, memory.ROMSize))
	mem.Write(0x8000, 0xDD)
	mem.Write(0x8001, 0xCB)
	mem.Write(0x8002, 0x05)
	mem.Write(0x8003, 0x46) // BIT 0, (IX+5)

	lines := Disassemble(mem, 0x8000, 1)
	require.Equal(t, "BIT 0, (IX+5)", lines[0].Mnemonic)
	require.Equal(t, 4, lines[0].Size)
	require.Equal(t, "DD CB 05 46", lines[0].HexBytes)
}

func TestDisassembleEDBlockInstruction(t *testing.T) {
	mem := memory.New(make([]byte, memory.ROMSize))
	mem.Write(0x8000, 0xED)
	mem.Write(0x8001, 0xB0) // LDIR

	lines := Disassemble(mem, 0x8000, 1)
	require.Equal(t, "LDIR", lines[0].Mnemonic)
	require.Equal(t, 2, lines[0].Size)
}

func TestDisassembleStopsAtTopOfAddressSpace(t *testing.T) {
	mem := memory.New(make([]byte, memory.ROMSize))
	mem.Write(0xFFFF, 0x00) // NOP

	lines := Disassemble(mem, 0xFFFF, 5)
	require.Len(t, lines, 1)
}
