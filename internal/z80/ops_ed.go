package z80

// initEDOps populates the ED-prefixed extended instruction plane: 8-bit
// port I/O through C, 16-bit ADC/SBC, 16-bit memory LD forms, the
// interrupt-mode/refresh-register group, and the LDI/LDD/CPI/CPD/INI/
// IND/OUTI/OUTD block families (each with an auto-repeating R variant).
// Unassigned codes are genuine gaps in the ED plane (the real chip
// treats them as an 8-cycle NOP) and are logged once hit, per the
// core's diagnostic-not-fatal decode policy.
func (c *CPU) initEDOps() {
	for i := range c.edOps {
		opcode := byte(i)
		c.edOps[i] = func(cpu *CPU) { cpu.opEDUnimplemented(opcode) }
	}

	inRegs := map[byte]*byte{0x40: &c.B, 0x48: &c.C, 0x50: &c.D, 0x58: &c.E, 0x60: &c.H, 0x68: &c.L, 0x78: &c.A}
	for opcode, reg := range inRegs {
		reg := reg
		c.edOps[opcode] = func(cpu *CPU) { cpu.inRegC(reg) }
	}
	c.edOps[0x70] = func(cpu *CPU) {
		value := cpu.in(cpu.BC())
		cpu.updateInFlags(value)
		cpu.tick(12)
	}

	outRegs := map[byte]*byte{0x41: &c.B, 0x49: &c.C, 0x51: &c.D, 0x59: &c.E, 0x61: &c.H, 0x69: &c.L, 0x79: &c.A}
	for opcode, reg := range outRegs {
		reg := reg
		c.edOps[opcode] = func(cpu *CPU) { cpu.outRegC(*reg) }
	}
	c.edOps[0x71] = func(cpu *CPU) { cpu.outRegC(0x00) }

	for _, opcode := range []byte{0x44, 0x4C, 0x54, 0x5C, 0x64, 0x6C, 0x74, 0x7C} {
		c.edOps[opcode] = (*CPU).opNEG
	}

	c.edOps[0x47] = func(cpu *CPU) { cpu.I = cpu.A; cpu.tick(9) }
	c.edOps[0x4F] = func(cpu *CPU) { cpu.R = cpu.A; cpu.tick(9) }
	c.edOps[0x57] = func(cpu *CPU) { cpu.A = cpu.I; cpu.updateLDAIRFlags(); cpu.tick(9) }
	c.edOps[0x5F] = func(cpu *CPU) { cpu.A = cpu.R; cpu.updateLDAIRFlags(); cpu.tick(9) }

	for _, opcode := range []byte{0x46, 0x66, 0x6E} {
		c.edOps[opcode] = func(cpu *CPU) { cpu.IM = IM0; cpu.tick(8) }
	}
	for _, opcode := range []byte{0x56, 0x76} {
		c.edOps[opcode] = func(cpu *CPU) { cpu.IM = IM1; cpu.tick(8) }
	}
	for _, opcode := range []byte{0x5E, 0x7E} {
		c.edOps[opcode] = func(cpu *CPU) { cpu.IM = IM2; cpu.tick(8) }
	}

	for _, opcode := range []byte{0x45, 0x4D, 0x55, 0x5D, 0x65, 0x6D, 0x75, 0x7D} {
		c.edOps[opcode] = (*CPU).opRETN
	}

	c.edOps[0x67] = (*CPU).opRRD
	c.edOps[0x6F] = (*CPU).opRLD

	c.edOps[0xA0] = (*CPU).opLDI
	c.edOps[0xB0] = (*CPU).opLDIR
	c.edOps[0xA8] = (*CPU).opLDD
	c.edOps[0xB8] = (*CPU).opLDDR
	c.edOps[0xA1] = (*CPU).opCPI
	c.edOps[0xB1] = (*CPU).opCPIR
	c.edOps[0xA9] = (*CPU).opCPD
	c.edOps[0xB9] = (*CPU).opCPDR
	c.edOps[0xA2] = (*CPU).opINI
	c.edOps[0xB2] = (*CPU).opINIR
	c.edOps[0xAA] = (*CPU).opIND
	c.edOps[0xBA] = (*CPU).opINDR
	c.edOps[0xA3] = (*CPU).opOUTI
	c.edOps[0xB3] = (*CPU).opOTIR
	c.edOps[0xAB] = (*CPU).opOUTD
	c.edOps[0xBB] = (*CPU).opOTDR

	c.edOps[0x43] = func(cpu *CPU) { cpu.ld16ToMem(cpu.BC()) }
	c.edOps[0x4B] = func(cpu *CPU) { cpu.SetBC(cpu.ld16FromMem()) }
	c.edOps[0x53] = func(cpu *CPU) { cpu.ld16ToMem(cpu.DE()) }
	c.edOps[0x5B] = func(cpu *CPU) { cpu.SetDE(cpu.ld16FromMem()) }
	c.edOps[0x63] = func(cpu *CPU) { cpu.ld16ToMem(cpu.HL()) }
	c.edOps[0x6B] = func(cpu *CPU) { cpu.SetHL(cpu.ld16FromMem()) }
	c.edOps[0x73] = func(cpu *CPU) { cpu.ld16ToMem(cpu.SP) }
	c.edOps[0x7B] = func(cpu *CPU) { cpu.SP = cpu.ld16FromMem() }

	c.edOps[0x4A] = func(cpu *CPU) { cpu.adcHL(cpu.BC()); cpu.tick(15) }
	c.edOps[0x5A] = func(cpu *CPU) { cpu.adcHL(cpu.DE()); cpu.tick(15) }
	c.edOps[0x6A] = func(cpu *CPU) { cpu.adcHL(cpu.HL()); cpu.tick(15) }
	c.edOps[0x7A] = func(cpu *CPU) { cpu.adcHL(cpu.SP); cpu.tick(15) }
	c.edOps[0x42] = func(cpu *CPU) { cpu.sbcHL(cpu.BC()); cpu.tick(15) }
	c.edOps[0x52] = func(cpu *CPU) { cpu.sbcHL(cpu.DE()); cpu.tick(15) }
	c.edOps[0x62] = func(cpu *CPU) { cpu.sbcHL(cpu.HL()); cpu.tick(15) }
	c.edOps[0x72] = func(cpu *CPU) { cpu.sbcHL(cpu.SP); cpu.tick(15) }
}

func (c *CPU) opEDUnimplemented(opcode byte) {
	c.logUnknownOpcode("ED", opcode, c.PC-2)
	c.tick(8)
}

func (c *CPU) inRegC(dest *byte) {
	value := c.in(c.BC())
	*dest = value
	c.updateInFlags(value)
	c.tick(12)
}

func (c *CPU) outRegC(value byte) {
	c.out(c.BC(), value)
	c.tick(12)
}

// opNEG is 0 - A with full subtract flag semantics: P/V set only when
// A was 0x80, C set whenever A was nonzero.
func (c *CPU) opNEG() {
	value := c.A
	c.A = 0
	c.subA(value, 0, true)
	c.tick(8)
}

func (c *CPU) opRETN() {
	c.PC = c.popWord()
	c.IFF1 = c.IFF2
	c.tick(14)
}

func (c *CPU) opRRD() {
	addr := c.HL()
	value := c.read(addr)
	c.write(addr, (value>>4)|(c.A<<4))
	c.A = (c.A & 0xF0) | (value & 0x0F)
	c.updateAParityFlagsPreserveCarry()
	c.tick(18)
}

func (c *CPU) opRLD() {
	addr := c.HL()
	value := c.read(addr)
	c.write(addr, (value<<4)|(c.A&0x0F))
	c.A = (c.A & 0xF0) | (value >> 4)
	c.updateAParityFlagsPreserveCarry()
	c.tick(18)
}

func (c *CPU) ld16ToMem(value uint16) {
	addr := c.fetchWord()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.tick(20)
}

func (c *CPU) ld16FromMem() uint16 {
	addr := c.fetchWord()
	lo := c.read(addr)
	hi := c.read(addr + 1)
	c.tick(20)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) opLDI() {
	value := c.read(c.HL())
	c.write(c.DE(), value)
	c.SetHL(c.HL() + 1)
	c.SetDE(c.DE() + 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.updateLDIFlags(value, bc)
	c.tick(16)
}

func (c *CPU) opLDIR() {
	c.opLDI()
	if c.BC() != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opLDD() {
	value := c.read(c.HL())
	c.write(c.DE(), value)
	c.SetHL(c.HL() - 1)
	c.SetDE(c.DE() - 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.updateLDIFlags(value, bc)
	c.tick(16)
}

func (c *CPU) opLDDR() {
	c.opLDD()
	if c.BC() != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opCPI() {
	value := c.read(c.HL())
	c.SetHL(c.HL() + 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.subA(value, 0, false)
	c.cpiCPDFlags(value, bc)
	c.tick(16)
}

func (c *CPU) opCPIR() {
	c.opCPI()
	if c.BC() != 0 && !c.Flag(flagZ) {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opCPD() {
	value := c.read(c.HL())
	c.SetHL(c.HL() - 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.subA(value, 0, false)
	c.cpiCPDFlags(value, bc)
	c.tick(16)
}

func (c *CPU) opCPDR() {
	c.opCPD()
	if c.BC() != 0 && !c.Flag(flagZ) {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opINI() {
	value := c.in(c.BC())
	c.write(c.HL(), value)
	c.B--
	c.SetHL(c.HL() + 1)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) opINIR() {
	c.opINI()
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opIND() {
	value := c.in(c.BC())
	c.write(c.HL(), value)
	c.B--
	c.SetHL(c.HL() - 1)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) opINDR() {
	c.opIND()
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opOUTI() {
	value := c.read(c.HL())
	c.B--
	c.out(c.BC(), value)
	c.SetHL(c.HL() + 1)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) opOTIR() {
	c.opOUTI()
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opOUTD() {
	value := c.read(c.HL())
	c.B--
	c.out(c.BC(), value)
	c.SetHL(c.HL() - 1)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) opOTDR() {
	c.opOUTD()
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}
