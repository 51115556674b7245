package cpu

import "github.com/sixfiveohtwo/core/bus"

// runFunc is the behavior half of an opcode table entry. addr is the
// already-resolved effective address (meaningless for Implied/Accumulator/
// Immediate); imm is always the raw first operand byte, regardless of
// mode, so branch and no-op handlers can use it without a mode switch of
// their own. The return value is any extra cycles the instruction itself
// contributes (currently only the branch-taken penalty).
type runFunc func(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int

// opEntry is the {length, cycles, handler} record the core's own design
// notes call for: a flat 256-entry table beats a 256-case switch both for
// decode speed and for keeping metadata (mnemonic, length, base cycle
// count) next to the behavior that uses it.
type opEntry struct {
	mnemonic string
	mode     addrMode
	length   uint8
	cycles   uint8
	run      runFunc
	uncaught bool
}

var opcodeTable [256]opEntry

func set(op uint8, mnemonic string, mode addrMode, length, cycles uint8, run runFunc) {
	opcodeTable[op] = opEntry{mnemonic: mnemonic, mode: mode, length: length, cycles: cycles, run: run}
}

// Mnemonic returns the three-letter name the core uses for op, or "NOP"
// for any byte that isn't one of the 151 documented opcodes.
func Mnemonic(op uint8) string {
	return opcodeTable[op].mnemonic
}

// Length returns the instruction length in bytes (1-3) the core will
// advance PC by when it decodes op.
func Length(op uint8) uint8 {
	return opcodeTable[op].length
}

func init() {
	// ADC
	set(0x69, "ADC", modeImmediate, 2, 2, opADC)
	set(0x65, "ADC", modeZP, 2, 3, opADC)
	set(0x75, "ADC", modeZPX, 2, 4, opADC)
	set(0x6D, "ADC", modeAbsolute, 3, 4, opADC)
	set(0x7D, "ADC", modeAbsoluteX, 3, 4, opADC)
	set(0x79, "ADC", modeAbsoluteY, 3, 4, opADC)
	set(0x61, "ADC", modeIndirectX, 2, 6, opADC)
	set(0x71, "ADC", modeIndirectY, 2, 5, opADC)

	// AND
	set(0x29, "AND", modeImmediate, 2, 2, opAND)
	set(0x25, "AND", modeZP, 2, 3, opAND)
	set(0x35, "AND", modeZPX, 2, 4, opAND)
	set(0x2D, "AND", modeAbsolute, 3, 4, opAND)
	set(0x3D, "AND", modeAbsoluteX, 3, 4, opAND)
	set(0x39, "AND", modeAbsoluteY, 3, 4, opAND)
	set(0x21, "AND", modeIndirectX, 2, 6, opAND)
	set(0x31, "AND", modeIndirectY, 2, 5, opAND)

	// ASL
	set(0x0A, "ASL", modeAccumulator, 1, 2, opASL)
	set(0x06, "ASL", modeZP, 2, 5, opASL)
	set(0x16, "ASL", modeZPX, 2, 6, opASL)
	set(0x0E, "ASL", modeAbsolute, 3, 6, opASL)
	set(0x1E, "ASL", modeAbsoluteX, 3, 7, opASL)

	// Branches
	set(0x90, "BCC", modeRelative, 2, 2, opBCC)
	set(0xB0, "BCS", modeRelative, 2, 2, opBCS)
	set(0xF0, "BEQ", modeRelative, 2, 2, opBEQ)
	set(0x30, "BMI", modeRelative, 2, 2, opBMI)
	set(0xD0, "BNE", modeRelative, 2, 2, opBNE)
	set(0x10, "BPL", modeRelative, 2, 2, opBPL)
	set(0x50, "BVC", modeRelative, 2, 2, opBVC)
	set(0x70, "BVS", modeRelative, 2, 2, opBVS)

	// BIT
	set(0x24, "BIT", modeZP, 2, 3, opBIT)
	set(0x2C, "BIT", modeAbsolute, 3, 4, opBIT)

	// BRK
	set(0x00, "BRK", modeImplied, 2, 7, opBRK)

	// Flags
	set(0x18, "CLC", modeImplied, 1, 2, opCLC)
	set(0xD8, "CLD", modeImplied, 1, 2, opCLD)
	set(0x58, "CLI", modeImplied, 1, 2, opCLI)
	set(0xB8, "CLV", modeImplied, 1, 2, opCLV)
	set(0x38, "SEC", modeImplied, 1, 2, opSEC)
	set(0xF8, "SED", modeImplied, 1, 2, opSED)
	set(0x78, "SEI", modeImplied, 1, 2, opSEI)

	// CMP / CPX / CPY
	set(0xC9, "CMP", modeImmediate, 2, 2, opCMP)
	set(0xC5, "CMP", modeZP, 2, 3, opCMP)
	set(0xD5, "CMP", modeZPX, 2, 4, opCMP)
	set(0xCD, "CMP", modeAbsolute, 3, 4, opCMP)
	set(0xDD, "CMP", modeAbsoluteX, 3, 4, opCMP)
	set(0xD9, "CMP", modeAbsoluteY, 3, 4, opCMP)
	set(0xC1, "CMP", modeIndirectX, 2, 6, opCMP)
	set(0xD1, "CMP", modeIndirectY, 2, 5, opCMP)
	set(0xE0, "CPX", modeImmediate, 2, 2, opCPX)
	set(0xE4, "CPX", modeZP, 2, 3, opCPX)
	set(0xEC, "CPX", modeAbsolute, 3, 4, opCPX)
	set(0xC0, "CPY", modeImmediate, 2, 2, opCPY)
	set(0xC4, "CPY", modeZP, 2, 3, opCPY)
	set(0xCC, "CPY", modeAbsolute, 3, 4, opCPY)

	// DEC / DEX / DEY
	set(0xC6, "DEC", modeZP, 2, 5, opDEC)
	set(0xD6, "DEC", modeZPX, 2, 6, opDEC)
	set(0xCE, "DEC", modeAbsolute, 3, 6, opDEC)
	set(0xDE, "DEC", modeAbsoluteX, 3, 7, opDEC)
	set(0xCA, "DEX", modeImplied, 1, 2, opDEX)
	set(0x88, "DEY", modeImplied, 1, 2, opDEY)

	// EOR
	set(0x49, "EOR", modeImmediate, 2, 2, opEOR)
	set(0x45, "EOR", modeZP, 2, 3, opEOR)
	set(0x55, "EOR", modeZPX, 2, 4, opEOR)
	set(0x4D, "EOR", modeAbsolute, 3, 4, opEOR)
	set(0x5D, "EOR", modeAbsoluteX, 3, 4, opEOR)
	set(0x59, "EOR", modeAbsoluteY, 3, 4, opEOR)
	set(0x41, "EOR", modeIndirectX, 2, 6, opEOR)
	set(0x51, "EOR", modeIndirectY, 2, 5, opEOR)

	// INC / INX / INY
	set(0xE6, "INC", modeZP, 2, 5, opINC)
	set(0xF6, "INC", modeZPX, 2, 6, opINC)
	set(0xEE, "INC", modeAbsolute, 3, 6, opINC)
	set(0xFE, "INC", modeAbsoluteX, 3, 7, opINC)
	set(0xE8, "INX", modeImplied, 1, 2, opINX)
	set(0xC8, "INY", modeImplied, 1, 2, opINY)

	// JMP / JSR / RTS / RTI
	set(0x4C, "JMP", modeAbsolute, 3, 3, opJMP)
	set(0x6C, "JMP", modeIndirect, 3, 5, opJMP)
	set(0x20, "JSR", modeAbsolute, 3, 6, opJSR)
	set(0x60, "RTS", modeImplied, 1, 6, opRTS)
	set(0x40, "RTI", modeImplied, 1, 6, opRTI)

	// LDA / LDX / LDY
	set(0xA9, "LDA", modeImmediate, 2, 2, opLDA)
	set(0xA5, "LDA", modeZP, 2, 3, opLDA)
	set(0xB5, "LDA", modeZPX, 2, 4, opLDA)
	set(0xAD, "LDA", modeAbsolute, 3, 4, opLDA)
	set(0xBD, "LDA", modeAbsoluteX, 3, 4, opLDA)
	set(0xB9, "LDA", modeAbsoluteY, 3, 4, opLDA)
	set(0xA1, "LDA", modeIndirectX, 2, 6, opLDA)
	set(0xB1, "LDA", modeIndirectY, 2, 5, opLDA)
	set(0xA2, "LDX", modeImmediate, 2, 2, opLDX)
	set(0xA6, "LDX", modeZP, 2, 3, opLDX)
	set(0xB6, "LDX", modeZPY, 2, 4, opLDX)
	set(0xAE, "LDX", modeAbsolute, 3, 4, opLDX)
	set(0xBE, "LDX", modeAbsoluteY, 3, 4, opLDX)
	set(0xA0, "LDY", modeImmediate, 2, 2, opLDY)
	set(0xA4, "LDY", modeZP, 2, 3, opLDY)
	set(0xB4, "LDY", modeZPX, 2, 4, opLDY)
	set(0xAC, "LDY", modeAbsolute, 3, 4, opLDY)
	set(0xBC, "LDY", modeAbsoluteX, 3, 4, opLDY)

	// LSR
	set(0x4A, "LSR", modeAccumulator, 1, 2, opLSR)
	set(0x46, "LSR", modeZP, 2, 5, opLSR)
	set(0x56, "LSR", modeZPX, 2, 6, opLSR)
	set(0x4E, "LSR", modeAbsolute, 3, 6, opLSR)
	set(0x5E, "LSR", modeAbsoluteX, 3, 7, opLSR)

	// NOP (documented)
	set(0xEA, "NOP", modeImplied, 1, 2, opNOP)

	// ORA
	set(0x09, "ORA", modeImmediate, 2, 2, opORA)
	set(0x05, "ORA", modeZP, 2, 3, opORA)
	set(0x15, "ORA", modeZPX, 2, 4, opORA)
	set(0x0D, "ORA", modeAbsolute, 3, 4, opORA)
	set(0x1D, "ORA", modeAbsoluteX, 3, 4, opORA)
	set(0x19, "ORA", modeAbsoluteY, 3, 4, opORA)
	set(0x01, "ORA", modeIndirectX, 2, 6, opORA)
	set(0x11, "ORA", modeIndirectY, 2, 5, opORA)

	// Stack
	set(0x48, "PHA", modeImplied, 1, 3, opPHA)
	set(0x08, "PHP", modeImplied, 1, 3, opPHP)
	set(0x68, "PLA", modeImplied, 1, 4, opPLA)
	set(0x28, "PLP", modeImplied, 1, 4, opPLP)

	// ROL / ROR
	set(0x2A, "ROL", modeAccumulator, 1, 2, opROL)
	set(0x26, "ROL", modeZP, 2, 5, opROL)
	set(0x36, "ROL", modeZPX, 2, 6, opROL)
	set(0x2E, "ROL", modeAbsolute, 3, 6, opROL)
	set(0x3E, "ROL", modeAbsoluteX, 3, 7, opROL)
	set(0x6A, "ROR", modeAccumulator, 1, 2, opROR)
	set(0x66, "ROR", modeZP, 2, 5, opROR)
	set(0x76, "ROR", modeZPX, 2, 6, opROR)
	set(0x6E, "ROR", modeAbsolute, 3, 6, opROR)
	set(0x7E, "ROR", modeAbsoluteX, 3, 7, opROR)

	// SBC
	set(0xE9, "SBC", modeImmediate, 2, 2, opSBC)
	set(0xE5, "SBC", modeZP, 2, 3, opSBC)
	set(0xF5, "SBC", modeZPX, 2, 4, opSBC)
	set(0xED, "SBC", modeAbsolute, 3, 4, opSBC)
	set(0xFD, "SBC", modeAbsoluteX, 3, 4, opSBC)
	set(0xF9, "SBC", modeAbsoluteY, 3, 4, opSBC)
	set(0xE1, "SBC", modeIndirectX, 2, 6, opSBC)
	set(0xF1, "SBC", modeIndirectY, 2, 5, opSBC)

	// STA / STX / STY
	set(0x85, "STA", modeZP, 2, 3, opSTA)
	set(0x95, "STA", modeZPX, 2, 4, opSTA)
	set(0x8D, "STA", modeAbsolute, 3, 4, opSTA)
	set(0x9D, "STA", modeAbsoluteX, 3, 5, opSTA)
	set(0x99, "STA", modeAbsoluteY, 3, 5, opSTA)
	set(0x81, "STA", modeIndirectX, 2, 6, opSTA)
	set(0x91, "STA", modeIndirectY, 2, 6, opSTA)
	set(0x86, "STX", modeZP, 2, 3, opSTX)
	set(0x96, "STX", modeZPY, 2, 4, opSTX)
	set(0x8E, "STX", modeAbsolute, 3, 4, opSTX)
	set(0x84, "STY", modeZP, 2, 3, opSTY)
	set(0x94, "STY", modeZPX, 2, 4, opSTY)
	set(0x8C, "STY", modeAbsolute, 3, 4, opSTY)

	// Transfers
	set(0xAA, "TAX", modeImplied, 1, 2, opTAX)
	set(0xA8, "TAY", modeImplied, 1, 2, opTAY)
	set(0xBA, "TSX", modeImplied, 1, 2, opTSX)
	set(0x8A, "TXA", modeImplied, 1, 2, opTXA)
	set(0x9A, "TXS", modeImplied, 1, 2, opTXS)
	set(0x98, "TYA", modeImplied, 1, 2, opTYA)

	for i := 0; i < 256; i++ {
		if opcodeTable[i].run != nil {
			continue
		}
		op := uint8(i)
		if isImmediateNoOp(op) {
			// Silent: takes and discards an operand byte, but isn't
			// flagged as uncaught. Matches the original's NOPi0 shape.
			opcodeTable[i] = opEntry{mnemonic: "NOP", mode: modeImmediate, length: 2, cycles: 2, run: opNOP}
		} else {
			// Flagged: the catch-all bucket, recorded in the debug
			// field. Matches the original's NOPim shape.
			opcodeTable[i] = opEntry{mnemonic: "NOP", mode: modeImplied, length: 1, cycles: 2, run: opNOP, uncaught: true}
		}
	}
}

// isImmediateNoOp lists the small, well-known group of undocumented
// opcodes that take a (discarded) immediate operand byte, so PC still
// advances by 2 for them instead of the single-byte default every other
// undefined byte gets.
func isImmediateNoOp(op uint8) bool {
	switch op {
	case 0x80, 0x82, 0x89, 0xC2, 0xE2:
		return true
	}
	return false
}

func opADC(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.adc(c.operand(b, mode, addr, imm))
	return 0
}

func opSBC(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.sbc(c.operand(b, mode, addr, imm))
	return 0
}

func opAND(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.A &= c.operand(b, mode, addr, imm)
	c.updateZN(c.A)
	return 0
}

func opORA(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.A |= c.operand(b, mode, addr, imm)
	c.updateZN(c.A)
	return 0
}

func opEOR(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.A ^= c.operand(b, mode, addr, imm)
	c.updateZN(c.A)
	return 0
}

func opCMP(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.compare(c.A, c.operand(b, mode, addr, imm))
	return 0
}

func opCPX(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.compare(c.X, c.operand(b, mode, addr, imm))
	return 0
}

func opCPY(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.compare(c.Y, c.operand(b, mode, addr, imm))
	return 0
}

func opBIT(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.bitOp(c.operand(b, mode, addr, imm))
	return 0
}

func opASL(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	v := c.operand(b, mode, addr, imm)
	nv, carry := asl(v)
	c.setFlag(PCarry, carry)
	c.updateZN(nv)
	c.storeOperand(b, mode, addr, nv)
	return 0
}

func opLSR(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	v := c.operand(b, mode, addr, imm)
	nv, carry := lsr(v)
	c.setFlag(PCarry, carry)
	c.updateZN(nv)
	c.storeOperand(b, mode, addr, nv)
	return 0
}

func opROL(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	v := c.operand(b, mode, addr, imm)
	nv, carry := rol(v, c.GetCarry())
	c.setFlag(PCarry, carry)
	c.updateZN(nv)
	c.storeOperand(b, mode, addr, nv)
	return 0
}

func opROR(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	v := c.operand(b, mode, addr, imm)
	nv, carry := ror(v, c.GetCarry())
	c.setFlag(PCarry, carry)
	c.updateZN(nv)
	c.storeOperand(b, mode, addr, nv)
	return 0
}

func opINC(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	v := c.operand(b, mode, addr, imm) + 1
	c.updateZN(v)
	c.storeOperand(b, mode, addr, v)
	return 0
}

func opDEC(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	v := c.operand(b, mode, addr, imm) - 1
	c.updateZN(v)
	c.storeOperand(b, mode, addr, v)
	return 0
}

func opINX(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.X++
	c.updateZN(c.X)
	return 0
}

func opINY(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.Y++
	c.updateZN(c.Y)
	return 0
}

func opDEX(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.X--
	c.updateZN(c.X)
	return 0
}

func opDEY(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.Y--
	c.updateZN(c.Y)
	return 0
}

func opLDA(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.A = c.operand(b, mode, addr, imm)
	c.updateZN(c.A)
	return 0
}

func opLDX(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.X = c.operand(b, mode, addr, imm)
	c.updateZN(c.X)
	return 0
}

func opLDY(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.Y = c.operand(b, mode, addr, imm)
	c.updateZN(c.Y)
	return 0
}

func opSTA(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	b.Write(addr, c.A)
	return 0
}

func opSTX(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	b.Write(addr, c.X)
	return 0
}

func opSTY(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	b.Write(addr, c.Y)
	return 0
}

func opJMP(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.PC = addr
	return 0
}

func opJSR(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	ret := c.PC - 1
	c.push(b, uint8(ret>>8))
	c.push(b, uint8(ret))
	c.PC = addr
	return 0
}

func opRTS(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.PC = c.popPC(b) + 1
	return 0
}

func opRTI(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.pullStatus(c.pop(b))
	c.PC = c.popPC(b)
	return 0
}

func opBRK(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.serviceInterrupt(b, IRQVector, true)
	return 0
}

func doBranch(c *Chip, taken bool, offset uint8) int {
	if !taken {
		return 0
	}
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
	return 1
}

func opBCC(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	return doBranch(c, !c.GetCarry(), imm)
}
func opBCS(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	return doBranch(c, c.GetCarry(), imm)
}
func opBEQ(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	return doBranch(c, c.GetZero(), imm)
}
func opBNE(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	return doBranch(c, !c.GetZero(), imm)
}
func opBMI(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	return doBranch(c, c.GetNegative(), imm)
}
func opBPL(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	return doBranch(c, !c.GetNegative(), imm)
}
func opBVC(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	return doBranch(c, !c.GetOverflow(), imm)
}
func opBVS(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	return doBranch(c, c.GetOverflow(), imm)
}

func opCLC(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.setFlag(PCarry, false)
	return 0
}
func opSEC(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.setFlag(PCarry, true)
	return 0
}
func opCLI(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.setFlag(PInterrupt, false)
	return 0
}
func opSEI(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.setFlag(PInterrupt, true)
	return 0
}
func opCLD(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.setFlag(PDecimal, false)
	return 0
}
func opSED(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.setFlag(PDecimal, true)
	return 0
}
func opCLV(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.setFlag(POverflow, false)
	return 0
}

func opPHA(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.push(b, c.A)
	return 0
}
func opPHP(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.push(b, c.statusForPush(true))
	return 0
}
func opPLA(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.A = c.pop(b)
	c.updateZN(c.A)
	return 0
}
func opPLP(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.pullStatus(c.pop(b))
	return 0
}

func opTAX(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.X = c.A
	c.updateZN(c.X)
	return 0
}
func opTAY(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.Y = c.A
	c.updateZN(c.Y)
	return 0
}
func opTXA(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.A = c.X
	c.updateZN(c.A)
	return 0
}
func opTYA(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.A = c.Y
	c.updateZN(c.A)
	return 0
}
func opTSX(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.X = c.S
	c.updateZN(c.X)
	return 0
}
func opTXS(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	c.S = c.X
	return 0
}

func opNOP(c *Chip, b bus.Bus, mode addrMode, addr uint16, imm uint8) int {
	return 0
}
