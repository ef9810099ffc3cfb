package z80

// initBaseOps populates the unprefixed instruction table. Every slot is
// reachable: a handful are literal opcodes, the rest are generated by
// looping the x/y/z octal fields the Z80 manual decodes opcodes by.
func (c *CPU) initBaseOps() {
	for i := range c.baseOps {
		c.baseOps[i] = (*CPU).opNOP
	}

	c.baseOps[0x76] = (*CPU).opHALT

	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		dest := byte((opcode >> 3) & 0x07)
		src := byte(opcode & 0x07)
		c.baseOps[opcode] = func(cpu *CPU) { cpu.opLDRegReg(dest, src) }
	}

	ldRegImm := map[byte]byte{0x06: 0, 0x0E: 1, 0x16: 2, 0x1E: 3, 0x26: 4, 0x2E: 5, 0x36: 6, 0x3E: 7}
	for opcode, dest := range ldRegImm {
		dest := dest
		c.baseOps[opcode] = func(cpu *CPU) { cpu.opLDRegImm(dest) }
	}

	aluOps := []aluOp{aluAdd, aluAdc, aluSub, aluSbc, aluAnd, aluXor, aluOr, aluCp}
	for i, op := range aluOps {
		base := 0x80 + i*8
		op := op
		for reg := 0; reg < 8; reg++ {
			opcode := base + reg
			src := byte(reg)
			c.baseOps[opcode] = func(cpu *CPU) { cpu.opALUReg(op, src) }
		}
	}
	immOpcodes := map[byte]aluOp{0xC6: aluAdd, 0xCE: aluAdc, 0xD6: aluSub, 0xDE: aluSbc, 0xE6: aluAnd, 0xEE: aluXor, 0xF6: aluOr, 0xFE: aluCp}
	for opcode, op := range immOpcodes {
		op := op
		c.baseOps[opcode] = func(cpu *CPU) { cpu.opALUImm(op) }
	}

	c.baseOps[0x27] = (*CPU).opDAA
	c.baseOps[0x2F] = (*CPU).opCPL
	c.baseOps[0x37] = (*CPU).opSCF
	c.baseOps[0x3F] = (*CPU).opCCF

	c.baseOps[0x01] = (*CPU).opLDBCNN
	c.baseOps[0x11] = (*CPU).opLDDENN
	c.baseOps[0x21] = (*CPU).opLDHLNN
	c.baseOps[0x31] = (*CPU).opLDSPNN
	c.baseOps[0x09] = func(cpu *CPU) { cpu.SetHL(cpu.add16(cpu.HL(), cpu.BC())); cpu.tick(11) }
	c.baseOps[0x19] = func(cpu *CPU) { cpu.SetHL(cpu.add16(cpu.HL(), cpu.DE())); cpu.tick(11) }
	c.baseOps[0x29] = func(cpu *CPU) { cpu.SetHL(cpu.add16(cpu.HL(), cpu.HL())); cpu.tick(11) }
	c.baseOps[0x39] = func(cpu *CPU) { cpu.SetHL(cpu.add16(cpu.HL(), cpu.SP)); cpu.tick(11) }

	c.baseOps[0x03] = func(cpu *CPU) { cpu.SetBC(cpu.BC() + 1); cpu.tick(6) }
	c.baseOps[0x13] = func(cpu *CPU) { cpu.SetDE(cpu.DE() + 1); cpu.tick(6) }
	c.baseOps[0x23] = func(cpu *CPU) { cpu.SetHL(cpu.HL() + 1); cpu.tick(6) }
	c.baseOps[0x33] = func(cpu *CPU) { cpu.SP++; cpu.tick(6) }
	c.baseOps[0x0B] = func(cpu *CPU) { cpu.SetBC(cpu.BC() - 1); cpu.tick(6) }
	c.baseOps[0x1B] = func(cpu *CPU) { cpu.SetDE(cpu.DE() - 1); cpu.tick(6) }
	c.baseOps[0x2B] = func(cpu *CPU) { cpu.SetHL(cpu.HL() - 1); cpu.tick(6) }
	c.baseOps[0x3B] = func(cpu *CPU) { cpu.SP--; cpu.tick(6) }

	c.baseOps[0x04] = func(cpu *CPU) { cpu.B = cpu.inc8(cpu.B); cpu.tick(4) }
	c.baseOps[0x0C] = func(cpu *CPU) { cpu.C = cpu.inc8(cpu.C); cpu.tick(4) }
	c.baseOps[0x14] = func(cpu *CPU) { cpu.D = cpu.inc8(cpu.D); cpu.tick(4) }
	c.baseOps[0x1C] = func(cpu *CPU) { cpu.E = cpu.inc8(cpu.E); cpu.tick(4) }
	c.baseOps[0x24] = func(cpu *CPU) { cpu.writeReg8(4, cpu.inc8(cpu.readReg8(4))); cpu.tick(4) }
	c.baseOps[0x2C] = func(cpu *CPU) { cpu.writeReg8(5, cpu.inc8(cpu.readReg8(5))); cpu.tick(4) }
	c.baseOps[0x3C] = func(cpu *CPU) { cpu.A = cpu.inc8(cpu.A); cpu.tick(4) }
	c.baseOps[0x34] = (*CPU).opINCHLMem
	c.baseOps[0x05] = func(cpu *CPU) { cpu.B = cpu.dec8(cpu.B); cpu.tick(4) }
	c.baseOps[0x0D] = func(cpu *CPU) { cpu.C = cpu.dec8(cpu.C); cpu.tick(4) }
	c.baseOps[0x15] = func(cpu *CPU) { cpu.D = cpu.dec8(cpu.D); cpu.tick(4) }
	c.baseOps[0x1D] = func(cpu *CPU) { cpu.E = cpu.dec8(cpu.E); cpu.tick(4) }
	c.baseOps[0x25] = func(cpu *CPU) { cpu.writeReg8(4, cpu.dec8(cpu.readReg8(4))); cpu.tick(4) }
	c.baseOps[0x2D] = func(cpu *CPU) { cpu.writeReg8(5, cpu.dec8(cpu.readReg8(5))); cpu.tick(4) }
	c.baseOps[0x3D] = func(cpu *CPU) { cpu.A = cpu.dec8(cpu.A); cpu.tick(4) }
	c.baseOps[0x35] = (*CPU).opDECHLMem

	c.baseOps[0xC5] = func(cpu *CPU) { cpu.pushWord(cpu.BC()); cpu.tick(11) }
	c.baseOps[0xD5] = func(cpu *CPU) { cpu.pushWord(cpu.DE()); cpu.tick(11) }
	c.baseOps[0xE5] = func(cpu *CPU) { cpu.pushWord(cpu.HL()); cpu.tick(11) }
	c.baseOps[0xF5] = func(cpu *CPU) { cpu.pushWord(cpu.AF()); cpu.tick(11) }
	c.baseOps[0xC1] = func(cpu *CPU) { cpu.SetBC(cpu.popWord()); cpu.tick(10) }
	c.baseOps[0xD1] = func(cpu *CPU) { cpu.SetDE(cpu.popWord()); cpu.tick(10) }
	c.baseOps[0xE1] = func(cpu *CPU) { cpu.SetHL(cpu.popWord()); cpu.tick(10) }
	c.baseOps[0xF1] = func(cpu *CPU) { cpu.SetAF(cpu.popWord()); cpu.tick(10) }

	c.baseOps[0xC3] = func(cpu *CPU) { cpu.PC = cpu.fetchWord(); cpu.tick(10) }
	c.baseOps[0x18] = (*CPU).opJR
	c.baseOps[0x10] = (*CPU).opDJNZ
	c.baseOps[0xCD] = (*CPU).opCALLNN
	c.baseOps[0xC9] = func(cpu *CPU) { cpu.PC = cpu.popWord(); cpu.tick(10) }
	c.baseOps[0xE9] = func(cpu *CPU) { cpu.PC = cpu.HL(); cpu.tick(4) }
	c.baseOps[0xF9] = func(cpu *CPU) { cpu.SP = cpu.HL(); cpu.tick(6) }

	c.baseOps[0xE3] = (*CPU).opEXSPHL
	c.baseOps[0x08] = func(cpu *CPU) { cpu.ExAF(); cpu.tick(4) }
	c.baseOps[0xEB] = func(cpu *CPU) { cpu.D, cpu.H = cpu.H, cpu.D; cpu.E, cpu.L = cpu.L, cpu.E; cpu.tick(4) }
	c.baseOps[0xD9] = func(cpu *CPU) { cpu.Exx(); cpu.tick(4) }

	c.baseOps[0x22] = (*CPU).opLDNNHL
	c.baseOps[0x2A] = (*CPU).opLDHLNNMem
	c.baseOps[0x32] = (*CPU).opLDNNA
	c.baseOps[0x3A] = (*CPU).opLDANN
	c.baseOps[0x02] = func(cpu *CPU) { cpu.write(cpu.BC(), cpu.A); cpu.tick(7) }
	c.baseOps[0x0A] = func(cpu *CPU) { cpu.A = cpu.read(cpu.BC()); cpu.tick(7) }
	c.baseOps[0x12] = func(cpu *CPU) { cpu.write(cpu.DE(), cpu.A); cpu.tick(7) }
	c.baseOps[0x1A] = func(cpu *CPU) { cpu.A = cpu.read(cpu.DE()); cpu.tick(7) }

	c.baseOps[0xD3] = (*CPU).opOUTNA
	c.baseOps[0xDB] = (*CPU).opINAN

	c.baseOps[0x07] = (*CPU).opRLCA
	c.baseOps[0x0F] = (*CPU).opRRCA
	c.baseOps[0x17] = (*CPU).opRLA
	c.baseOps[0x1F] = (*CPU).opRRA

	rst := map[byte]uint16{0xC7: 0x00, 0xCF: 0x08, 0xD7: 0x10, 0xDF: 0x18, 0xE7: 0x20, 0xEF: 0x28, 0xF7: 0x30, 0xFF: 0x38}
	for opcode, vector := range rst {
		vector := vector
		c.baseOps[opcode] = func(cpu *CPU) { cpu.pushWord(cpu.PC); cpu.PC = vector; cpu.tick(11) }
	}

	c.baseOps[0xC2] = func(cpu *CPU) { cpu.jpCond(!cpu.Flag(flagZ)) }
	c.baseOps[0xCA] = func(cpu *CPU) { cpu.jpCond(cpu.Flag(flagZ)) }
	c.baseOps[0xD2] = func(cpu *CPU) { cpu.jpCond(!cpu.Flag(flagC)) }
	c.baseOps[0xDA] = func(cpu *CPU) { cpu.jpCond(cpu.Flag(flagC)) }
	c.baseOps[0xE2] = func(cpu *CPU) { cpu.jpCond(!cpu.Flag(flagPV)) }
	c.baseOps[0xEA] = func(cpu *CPU) { cpu.jpCond(cpu.Flag(flagPV)) }
	c.baseOps[0xF2] = func(cpu *CPU) { cpu.jpCond(!cpu.Flag(flagS)) }
	c.baseOps[0xFA] = func(cpu *CPU) { cpu.jpCond(cpu.Flag(flagS)) }

	c.baseOps[0x20] = func(cpu *CPU) { cpu.jrCond(!cpu.Flag(flagZ)) }
	c.baseOps[0x28] = func(cpu *CPU) { cpu.jrCond(cpu.Flag(flagZ)) }
	c.baseOps[0x30] = func(cpu *CPU) { cpu.jrCond(!cpu.Flag(flagC)) }
	c.baseOps[0x38] = func(cpu *CPU) { cpu.jrCond(cpu.Flag(flagC)) }

	c.baseOps[0xC4] = func(cpu *CPU) { cpu.callCond(!cpu.Flag(flagZ)) }
	c.baseOps[0xCC] = func(cpu *CPU) { cpu.callCond(cpu.Flag(flagZ)) }
	c.baseOps[0xD4] = func(cpu *CPU) { cpu.callCond(!cpu.Flag(flagC)) }
	c.baseOps[0xDC] = func(cpu *CPU) { cpu.callCond(cpu.Flag(flagC)) }
	c.baseOps[0xE4] = func(cpu *CPU) { cpu.callCond(!cpu.Flag(flagPV)) }
	c.baseOps[0xEC] = func(cpu *CPU) { cpu.callCond(cpu.Flag(flagPV)) }
	c.baseOps[0xF4] = func(cpu *CPU) { cpu.callCond(!cpu.Flag(flagS)) }
	c.baseOps[0xFC] = func(cpu *CPU) { cpu.callCond(cpu.Flag(flagS)) }

	c.baseOps[0xC0] = func(cpu *CPU) { cpu.retCond(!cpu.Flag(flagZ)) }
	c.baseOps[0xC8] = func(cpu *CPU) { cpu.retCond(cpu.Flag(flagZ)) }
	c.baseOps[0xD0] = func(cpu *CPU) { cpu.retCond(!cpu.Flag(flagC)) }
	c.baseOps[0xD8] = func(cpu *CPU) { cpu.retCond(cpu.Flag(flagC)) }
	c.baseOps[0xE0] = func(cpu *CPU) { cpu.retCond(!cpu.Flag(flagPV)) }
	c.baseOps[0xE8] = func(cpu *CPU) { cpu.retCond(cpu.Flag(flagPV)) }
	c.baseOps[0xF0] = func(cpu *CPU) { cpu.retCond(!cpu.Flag(flagS)) }
	c.baseOps[0xF8] = func(cpu *CPU) { cpu.retCond(cpu.Flag(flagS)) }

	c.baseOps[0xCB] = (*CPU).opCBPrefix
	c.baseOps[0xDD] = (*CPU).opDDPrefix
	c.baseOps[0xFD] = (*CPU).opFDPrefix
	c.baseOps[0xED] = (*CPU).opEDPrefix
	c.baseOps[0xF3] = (*CPU).opDI
	c.baseOps[0xFB] = (*CPU).opEI
}

func (c *CPU) opNOP() { c.tick(4) }

func (c *CPU) opHALT() {
	c.Halted = true
	c.tick(4)
}

func (c *CPU) opLDRegReg(dest, src byte) {
	value := c.readReg8(src)
	c.writeReg8(dest, value)
	if dest == 6 || src == 6 {
		c.tick(7)
	} else {
		c.tick(4)
	}
}

func (c *CPU) opLDRegImm(dest byte) {
	value := c.fetchByte()
	c.writeReg8(dest, value)
	if dest == 6 {
		c.tick(10)
	} else {
		c.tick(7)
	}
}

func (c *CPU) opALUReg(op aluOp, src byte) {
	value := c.readReg8(src)
	c.performALU(op, value)
	if src == 6 {
		c.tick(7)
	} else {
		c.tick(4)
	}
}

func (c *CPU) opALUImm(op aluOp) {
	value := c.fetchByte()
	c.performALU(op, value)
	c.tick(7)
}

func (c *CPU) opLDBCNN() { c.SetBC(c.fetchWord()); c.tick(10) }
func (c *CPU) opLDDENN() { c.SetDE(c.fetchWord()); c.tick(10) }
func (c *CPU) opLDHLNN() { c.SetHL(c.fetchWord()); c.tick(10) }
func (c *CPU) opLDSPNN() { c.SP = c.fetchWord(); c.tick(10) }

func (c *CPU) opINCHLMem() {
	addr := c.HL()
	c.write(addr, c.inc8(c.read(addr)))
	c.tick(11)
}

func (c *CPU) opDECHLMem() {
	addr := c.HL()
	c.write(addr, c.dec8(c.read(addr)))
	c.tick(11)
}

func (c *CPU) opJR() {
	disp := int8(c.fetchByte())
	c.PC = uint16(int32(c.PC) + int32(disp))
	c.tick(12)
}

func (c *CPU) opDJNZ() {
	disp := int8(c.fetchByte())
	c.B--
	if c.B != 0 {
		c.PC = uint16(int32(c.PC) + int32(disp))
		c.tick(13)
	} else {
		c.tick(8)
	}
}

func (c *CPU) opCALLNN() {
	addr := c.fetchWord()
	c.pushWord(c.PC)
	c.PC = addr
	c.tick(17)
}

func (c *CPU) opEXSPHL() {
	lo := c.read(c.SP)
	hi := c.read(c.SP + 1)
	memVal := uint16(hi)<<8 | uint16(lo)
	hl := c.HL()
	c.write(c.SP, byte(hl))
	c.write(c.SP+1, byte(hl>>8))
	c.SetHL(memVal)
	c.tick(19)
}

func (c *CPU) opLDNNHL() {
	addr := c.fetchWord()
	value := c.HL()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.tick(16)
}

func (c *CPU) opLDHLNNMem() {
	addr := c.fetchWord()
	lo := c.read(addr)
	hi := c.read(addr + 1)
	c.SetHL(uint16(hi)<<8 | uint16(lo))
	c.tick(16)
}

func (c *CPU) opLDNNA() {
	addr := c.fetchWord()
	c.write(addr, c.A)
	c.tick(13)
}

func (c *CPU) opLDANN() {
	addr := c.fetchWord()
	c.A = c.read(addr)
	c.tick(13)
}

func (c *CPU) opOUTNA() {
	port := uint16(c.A)<<8 | uint16(c.fetchByte())
	c.out(port, c.A)
	c.tick(11)
}

func (c *CPU) opINAN() {
	port := uint16(c.A)<<8 | uint16(c.fetchByte())
	c.A = c.in(port)
	c.tick(11)
}

func (c *CPU) opRLCA() {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	c.updateRotateFlags(carry)
	c.tick(4)
}

func (c *CPU) opRRCA() {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	c.updateRotateFlags(carry)
	c.tick(4)
}

func (c *CPU) opRLA() {
	carryIn := c.Flag(flagC)
	carryOut := c.A&0x80 != 0
	c.A <<= 1
	if carryIn {
		c.A |= 0x01
	}
	c.updateRotateFlags(carryOut)
	c.tick(4)
}

func (c *CPU) opRRA() {
	carryIn := c.Flag(flagC)
	carryOut := c.A&0x01 != 0
	c.A >>= 1
	if carryIn {
		c.A |= 0x80
	}
	c.updateRotateFlags(carryOut)
	c.tick(4)
}

func (c *CPU) opDI() {
	c.IFF1 = false
	c.IFF2 = false
	c.iffDelay = 0
	c.tick(4)
}

func (c *CPU) opEI() {
	c.iffDelay = 2
	c.tick(4)
}

func (c *CPU) jpCond(cond bool) {
	addr := c.fetchWord()
	if cond {
		c.PC = addr
	}
	c.tick(10)
}

func (c *CPU) jrCond(cond bool) {
	disp := int8(c.fetchByte())
	if cond {
		c.PC = uint16(int32(c.PC) + int32(disp))
		c.tick(12)
	} else {
		c.tick(7)
	}
}

func (c *CPU) callCond(cond bool) {
	addr := c.fetchWord()
	if cond {
		c.pushWord(c.PC)
		c.PC = addr
		c.tick(17)
	} else {
		c.tick(10)
	}
}

func (c *CPU) retCond(cond bool) {
	if cond {
		c.PC = c.popWord()
		c.tick(11)
	} else {
		c.tick(5)
	}
}

// opCBPrefix, opDDPrefix, opFDPrefix and opEDPrefix fetch the second
// opcode byte and dispatch into the matching per-plane table. DD/FD
// additionally record prefixMode/prefixOpcode: readReg8/writeReg8 use
// prefixMode to redirect H/L slot accesses to IX/IY, and the DD/FD
// table's unimplemented entries use prefixOpcode to replay the base
// opcode as a plain (unprefixed, +4 cycle) instruction, matching real
// Z80 behaviour for opcodes the index prefix doesn't affect.
func (c *CPU) opCBPrefix() {
	opcode := c.fetchOpcode()
	c.cbOps[opcode](c)
}

func (c *CPU) opDDPrefix() {
	opcode := c.fetchOpcode()
	prev := c.prefixMode
	c.prefixMode = prefixDD
	c.prefixOpcode = opcode
	c.ddOps[opcode](c)
	c.prefixMode = prev
}

func (c *CPU) opFDPrefix() {
	opcode := c.fetchOpcode()
	prev := c.prefixMode
	c.prefixMode = prefixFD
	c.prefixOpcode = opcode
	c.fdOps[opcode](c)
	c.prefixMode = prev
}

func (c *CPU) opEDPrefix() {
	opcode := c.fetchOpcode()
	c.edOps[opcode](c)
}
