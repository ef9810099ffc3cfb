package z80

// initDDOps and initFDOps populate the DD (IX) and FD (IY) prefix
// planes. Both tables are built by the same generator: every handler
// reads which index register is active through indexReg/setIndexReg,
// which consult prefixMode exactly as the register-slot tables do, so
// one set of functions serves both prefixes. Opcodes the index prefix
// doesn't touch fall back to opIndexUnimplemented, which replays the
// base-plane opcode (base-table LD r,r'/ALU r etc. already redirect
// H/L through prefixMode via readReg8/writeReg8).
func (c *CPU) initDDOps() { c.buildIndexOps(&c.ddOps) }
func (c *CPU) initFDOps() { c.buildIndexOps(&c.fdOps) }

func (c *CPU) buildIndexOps(table *[256]func(*CPU)) {
	for i := range table {
		table[i] = (*CPU).opIndexUnimplemented
	}

	table[0x21] = (*CPU).opLDIndexNN
	table[0x22] = (*CPU).opLDNNIndex
	table[0x2A] = (*CPU).opLDIndexNNMem
	table[0xE5] = func(cpu *CPU) { cpu.pushWord(cpu.indexReg()); cpu.tick(15) }
	table[0xE1] = func(cpu *CPU) { cpu.setIndexReg(cpu.popWord()); cpu.tick(14) }
	table[0xF9] = func(cpu *CPU) { cpu.SP = cpu.indexReg(); cpu.tick(10) }
	table[0x36] = (*CPU).opLDIndexDispN
	table[0x34] = (*CPU).opINCIndexDisp
	table[0x35] = (*CPU).opDECIndexDisp
	table[0xE9] = func(cpu *CPU) { cpu.PC = cpu.indexReg(); cpu.tick(8) }
	table[0xCB] = (*CPU).opIndexCBPrefix
	table[0xE3] = (*CPU).opEXSPIndex
	table[0x09] = func(cpu *CPU) { cpu.addIndex(cpu.BC()); cpu.tick(15) }
	table[0x19] = func(cpu *CPU) { cpu.addIndex(cpu.DE()); cpu.tick(15) }
	table[0x29] = func(cpu *CPU) { cpu.addIndex(cpu.indexReg()); cpu.tick(15) }
	table[0x39] = func(cpu *CPU) { cpu.addIndex(cpu.SP); cpu.tick(15) }
	table[0x23] = func(cpu *CPU) { cpu.setIndexReg(cpu.indexReg() + 1); cpu.tick(10) }
	table[0x2B] = func(cpu *CPU) { cpu.setIndexReg(cpu.indexReg() - 1); cpu.tick(10) }

	for opcode := byte(0x46); opcode <= 0x7E; opcode += 0x08 {
		if opcode == 0x76 {
			continue
		}
		dest := (opcode >> 3) & 0x07
		table[opcode] = func(cpu *CPU) { cpu.opLDRegIndexDisp(dest) }
	}
	for opcode := byte(0x70); opcode <= 0x77; opcode++ {
		if opcode == 0x76 {
			continue
		}
		src := opcode & 0x07
		table[opcode] = func(cpu *CPU) { cpu.opLDIndexDispReg(src) }
	}
	for opcode := byte(0x86); opcode <= 0xBE; opcode += 0x08 {
		op := aluOp((opcode >> 3) & 0x07)
		table[opcode] = func(cpu *CPU) { cpu.opALUIndexDisp(op) }
	}
}

// opIndexUnimplemented replays the base-plane handler for the same
// opcode: DD/FD only adds behaviour to the small set of opcodes
// touching H/L or (HL); everything else behaves exactly like its
// unprefixed form, with an extra 4-cycle fetch charge for the prefix
// byte.
func (c *CPU) opIndexUnimplemented() {
	c.tick(4)
	c.baseOps[c.prefixOpcode](c)
}

func (c *CPU) indexReg() uint16 {
	if c.prefixMode == prefixFD {
		return c.IY()
	}
	return c.IX()
}

func (c *CPU) setIndexReg(v uint16) {
	if c.prefixMode == prefixFD {
		c.SetIY(v)
	} else {
		c.SetIX(v)
	}
}

func (c *CPU) addIndex(value uint16) {
	c.setIndexReg(c.add16(c.indexReg(), value))
}

func (c *CPU) indexEffectiveAddr() uint16 {
	disp := int8(c.fetchByte())
	return uint16(int32(c.indexReg()) + int32(disp))
}

func (c *CPU) opLDIndexNN() { c.setIndexReg(c.fetchWord()); c.tick(14) }

func (c *CPU) opLDNNIndex() {
	addr := c.fetchWord()
	value := c.indexReg()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.tick(20)
}

func (c *CPU) opLDIndexNNMem() {
	addr := c.fetchWord()
	lo := c.read(addr)
	hi := c.read(addr + 1)
	c.setIndexReg(uint16(hi)<<8 | uint16(lo))
	c.tick(20)
}

func (c *CPU) opLDIndexDispN() {
	addr := c.indexEffectiveAddr()
	value := c.fetchByte()
	c.write(addr, value)
	c.tick(19)
}

func (c *CPU) opINCIndexDisp() {
	addr := c.indexEffectiveAddr()
	c.write(addr, c.inc8(c.read(addr)))
	c.tick(23)
}

func (c *CPU) opDECIndexDisp() {
	addr := c.indexEffectiveAddr()
	c.write(addr, c.dec8(c.read(addr)))
	c.tick(23)
}

func (c *CPU) opEXSPIndex() {
	lo := c.read(c.SP)
	hi := c.read(c.SP + 1)
	memVal := uint16(hi)<<8 | uint16(lo)
	value := c.indexReg()
	c.write(c.SP, byte(value))
	c.write(c.SP+1, byte(value>>8))
	c.setIndexReg(memVal)
	c.tick(23)
}

func (c *CPU) opLDRegIndexDisp(dest byte) {
	addr := c.indexEffectiveAddr()
	c.writeReg8Plain(dest, c.read(addr))
	c.tick(19)
}

func (c *CPU) opLDIndexDispReg(src byte) {
	addr := c.indexEffectiveAddr()
	c.write(addr, c.readReg8Plain(src))
	c.tick(19)
}

func (c *CPU) opALUIndexDisp(op aluOp) {
	addr := c.indexEffectiveAddr()
	c.performALU(op, c.read(addr))
	c.tick(19)
}

// opIndexCBPrefix handles the doubly-prefixed DDCB/FDCB plane: the
// displacement byte always comes before the CB sub-opcode, the
// effective address is resolved exactly once, and rotate/shift/RES/SET
// forms additionally copy their result into a named register when the
// low three bits of the sub-opcode don't select (HL) (undocumented on
// real silicon, but faithfully reproduced here).
func (c *CPU) opIndexCBPrefix() {
	addr := c.indexEffectiveAddr()
	opcode := c.fetchOpcode()
	group := opcode >> 6
	switch group {
	case 0:
		c.cbIndexedRotateShift(addr, opcode)
	case 1:
		c.cbIndexedBIT(addr, opcode)
	case 2:
		c.cbIndexedRES(addr, opcode)
	default:
		c.cbIndexedSET(addr, opcode)
	}
}

func (c *CPU) cbIndexedRotateShift(addr uint16, opcode byte) {
	group := (opcode >> 3) & 0x07
	reg := opcode & 0x07
	value := c.read(addr)
	res, carry := rotateShiftGroup(c, group, value)

	c.F = sz53pTable[res]
	if carry {
		c.F |= flagC
	}

	c.write(addr, res)
	if reg != 6 {
		c.writeReg8Plain(reg, res)
	}
	c.tick(23)
}

// cbIndexedBIT sources the undocumented X/Y flags from the high byte
// of the effective address rather than from the tested byte, matching
// documented behaviour for the indexed BIT forms.
func (c *CPU) cbIndexedBIT(addr uint16, opcode byte) {
	value := c.read(addr)
	bit := (opcode >> 3) & 0x07
	mask := byte(1 << bit)
	c.F &^= flagN | flagZ | flagS | flagPV | flagX | flagY
	c.F |= flagH
	if value&mask == 0 {
		c.F |= flagZ | flagPV
	}
	if bit == 7 && value&mask != 0 {
		c.F |= flagS
	}
	c.F |= byte(addr>>8) & (flagX | flagY)
	c.tick(20)
}

func (c *CPU) cbIndexedRES(addr uint16, opcode byte) {
	bit := (opcode >> 3) & 0x07
	reg := opcode & 0x07
	res := c.read(addr) &^ (1 << bit)
	c.write(addr, res)
	if reg != 6 {
		c.writeReg8Plain(reg, res)
	}
	c.tick(23)
}

func (c *CPU) cbIndexedSET(addr uint16, opcode byte) {
	bit := (opcode >> 3) & 0x07
	reg := opcode & 0x07
	res := c.read(addr) | (1 << bit)
	c.write(addr, res)
	if reg != 6 {
		c.writeReg8Plain(reg, res)
	}
	c.tick(23)
}
