package z80

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// dumpOnFail prints the full register file via go-spew if t has already
// failed, so a broken assertion in a long scenario still shows the
// whole machine state instead of just the one mismatched field.
func dumpOnFail(t *testing.T, c *CPU) {
	t.Helper()
	if t.Failed() {
		t.Log(spew.Sdump(c))
	}
}

func TestResetState(t *testing.T) {
	c, _ := newTestCPU()
	require.Equal(t, byte(0), c.A)
	require.Equal(t, byte(0), c.B)
	require.Equal(t, byte(0), c.C)
	require.Equal(t, byte(0), c.D)
	require.Equal(t, byte(0), c.E)
	require.Equal(t, byte(0), c.H)
	require.Equal(t, byte(0), c.L)
	require.Equal(t, byte(0), c.F)
	require.Equal(t, byte(0), c.I)
	require.Equal(t, byte(0), c.R)
	require.Equal(t, uint16(0xFFFF), c.SP)
	require.Equal(t, uint16(0x0000), c.PC)
	require.False(t, c.IFF1)
	require.False(t, c.IFF2)
	require.Equal(t, IM0, c.IM)
	require.False(t, c.Halted)
}

func TestLoadAddAccumulatesCyclesAndFlags(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x4000
	bus.loadAt(0x4000, 0x3E, 0x42, 0x06, 0x13, 0x80)

	total := 0
	total += c.Step() // LD A,0x42
	total += c.Step() // LD B,0x13
	total += c.Step() // ADD A,B
	dumpOnFail(t, c)

	require.Equal(t, byte(0x55), c.A)
	require.False(t, c.Flag(flagN))
	require.False(t, c.Flag(flagZ))
	require.False(t, c.Flag(flagH))
	require.False(t, c.Flag(flagC))
	require.False(t, c.Flag(flagPV))
	require.False(t, c.Flag(flagS))
	// 0x55 has bits 3 and 5 clear, so both undocumented flags drop.
	require.False(t, c.Flag(flagY))
	require.False(t, c.Flag(flagX))
	require.Equal(t, 18, total)
}

func TestLDIRBlockCopy(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x8000
	bus.loadAt(0x8000, 0x21, 0x00, 0x40, 0x11, 0x10, 0x40, 0x01, 0x04, 0x00, 0xED, 0xB0)
	bus.loadAt(0x4000, 0xAA, 0xBB, 0xCC, 0xDD)

	total := 0
	total += c.Step() // LD HL,0x4000
	total += c.Step() // LD DE,0x4010
	total += c.Step() // LD BC,0x0004

	ldirCycles := 0
	for c.BC() != 0 {
		ldirCycles += c.Step()
	}
	total += ldirCycles
	dumpOnFail(t, c)

	require.Equal(t, uint16(0), c.BC())
	require.Equal(t, uint16(0x4004), c.HL())
	require.Equal(t, uint16(0x4014), c.DE())
	for i := uint16(0); i < 4; i++ {
		require.Equal(t, bus.Read(0x4000+i), bus.Read(0x4010+i))
	}
	require.Equal(t, 21+21+21+16, ldirCycles)
}

func TestXorAClearsAndSetsParity(t *testing.T) {
	c, bus := newTestCPU()
	c.A = 0x99
	c.PC = 0x4000
	bus.loadAt(0x4000, 0xAF) // XOR A

	c.Step()
	dumpOnFail(t, c)

	require.Equal(t, byte(0), c.A)
	require.True(t, c.Flag(flagZ))
	require.False(t, c.Flag(flagS))
	require.False(t, c.Flag(flagH))
	require.False(t, c.Flag(flagN))
	require.False(t, c.Flag(flagC))
	require.True(t, c.Flag(flagPV))
	require.False(t, c.Flag(flagX))
	require.False(t, c.Flag(flagY))
}

func TestNegWithA80(t *testing.T) {
	c, bus := newTestCPU()
	c.A = 0x80
	c.PC = 0x4000
	bus.loadAt(0x4000, 0xED, 0x44) // NEG

	c.Step()
	dumpOnFail(t, c)

	require.Equal(t, byte(0x80), c.A)
	require.True(t, c.Flag(flagC))
	require.True(t, c.Flag(flagPV))
	require.True(t, c.Flag(flagN))
	require.True(t, c.Flag(flagS))
	require.False(t, c.Flag(flagZ))
	require.False(t, c.Flag(flagH))
}

func TestPushPopRoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	c.SP = 0x8000
	c.SetBC(0x1234)
	c.pushWord(c.BC())
	before := c.SP
	c.SetBC(c.popWord())
	dumpOnFail(t, c)
	require.Equal(t, uint16(0x1234), c.BC())
	require.Equal(t, before+2, c.SP)
}

func TestExAFIsInvolution(t *testing.T) {
	c, _ := newTestCPU()
	c.SetAF(0xABCD)
	c.ExAF()
	c.ExAF()
	require.Equal(t, uint16(0xABCD), c.AF())
}

func TestExxIsInvolution(t *testing.T) {
	c, _ := newTestCPU()
	c.SetBC(0x1111)
	c.SetDE(0x2222)
	c.SetHL(0x3333)
	c.Exx()
	c.Exx()
	require.Equal(t, uint16(0x1111), c.BC())
	require.Equal(t, uint16(0x2222), c.DE())
	require.Equal(t, uint16(0x3333), c.HL())
}

func TestExDEHLIsInvolution(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x4000
	c.SetDE(0x1111)
	c.SetHL(0x2222)
	bus.loadAt(0x4000, 0xEB, 0xEB) // EX DE,HL ; EX DE,HL
	c.Step()
	c.Step()
	require.Equal(t, uint16(0x1111), c.DE())
	require.Equal(t, uint16(0x2222), c.HL())
}

func TestCPIRStopsOnFirstMatch(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x4000
	c.A = 0x42
	c.SetHL(0x5000)
	c.SetBC(5)
	bus.loadAt(0x5000, 0x01, 0x02, 0x42, 0x04, 0x05)
	bus.loadAt(0x4000, 0xED, 0xB1) // CPIR

	for {
		c.Step()
		if c.Flag(flagZ) || c.BC() == 0 {
			break
		}
	}
	dumpOnFail(t, c)

	require.True(t, c.Flag(flagZ))
	require.Equal(t, uint16(2), c.BC())
	require.Equal(t, uint16(0x5003), c.HL())
}

func TestCBRotateAndBit(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x4000
	c.B = 0x80
	bus.loadAt(0x4000, 0xCB, 0x00) // RLC B

	c.Step()
	dumpOnFail(t, c)
	require.Equal(t, byte(0x01), c.B)
	require.True(t, c.Flag(flagC))

	c.PC = 0x4002
	c.H, c.L = 0x40, 0x10
	bus.Write(0x4010, 0x08)        // bit 3 set
	bus.loadAt(0x4002, 0xCB, 0x5E) // BIT 3,(HL)
	c.Step()
	dumpOnFail(t, c)
	require.False(t, c.Flag(flagZ))
	require.True(t, c.Flag(flagH))
}

func TestUndocumentedSLL(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x4000
	c.C = 0x40
	bus.loadAt(0x4000, 0xCB, 0x31) // SLL C

	c.Step()
	dumpOnFail(t, c)
	require.Equal(t, byte(0x81), c.C)
	require.False(t, c.Flag(flagC))
}

func TestIndexedLoadSubstitutesHighLow(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x4000
	c.SetIX(0x5000)
	bus.loadAt(0x4000, 0xDD, 0x21, 0x00, 0x50) // LD IX,0x5000
	bus.loadAt(0x4004, 0xDD, 0x36, 0x02, 0x99) // LD (IX+2),0x99

	c.Step()
	c.Step()
	dumpOnFail(t, c)
	require.Equal(t, byte(0x99), bus.Read(0x5002))
}

func TestIndexedBitFlagsComeFromAddressHighByte(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x4000
	c.SetIX(0x2800)
	bus.Write(0x2805, 0xFF)
	bus.loadAt(0x4000, 0xDD, 0xCB, 0x05, 0x46) // BIT 0,(IX+5)

	c.Step()
	dumpOnFail(t, c)
	require.False(t, c.Flag(flagZ))
	require.True(t, c.Flag(flagY))
	require.True(t, c.Flag(flagX))
}

func TestEIDefersInterruptByOneInstruction(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x4000
	c.IM = IM1
	bus.loadAt(0x4000, 0xFB, 0x00, 0x00) // EI, NOP, NOP

	c.Step() // EI
	require.False(t, c.IFF1)
	c.Step() // NOP: iffDelay reaches 0, IFF1 becomes true
	require.True(t, c.IFF1)

	c.PC = 0x4002
	cycles := c.Interrupt(0xFF)
	dumpOnFail(t, c)
	require.Equal(t, 13, cycles)
	require.Equal(t, uint16(0x0038), c.PC)
	require.False(t, c.IFF1)
}

func TestInterruptMode2VectorsThroughITable(t *testing.T) {
	c, bus := newTestCPU()
	c.IFF1 = true
	c.IM = IM2
	c.I = 0x60
	c.PC = 0x8000
	bus.loadAt(0x60FF, 0x34, 0x12) // vector table entry: little-endian 0x1234

	cycles := c.Interrupt(0xFF)
	dumpOnFail(t, c)
	require.Equal(t, 19, cycles)
	require.Equal(t, uint16(0x1234), c.PC)
}

func TestHaltedStepChargesNOPCycles(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x4000
	bus.loadAt(0x4000, 0x76) // HALT

	c.Step()
	require.True(t, c.Halted)
	cycles := c.Step()
	require.Equal(t, 4, cycles)
	require.True(t, c.Halted)
}

func TestMemoryReadWriteRoundTrip(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x4000
	c.A = 0x77
	bus.loadAt(0x4000, 0x32, 0x00, 0x60, 0x3A, 0x00, 0x60) // LD (0x6000),A ; LD A,(0x6000)
	c.A = 0x55
	c.Step()
	c.A = 0
	c.Step()
	dumpOnFail(t, c)
	require.Equal(t, byte(0x55), c.A)
}
