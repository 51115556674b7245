package cpu

import "github.com/sixfiveohtwo/core/bus"

// addrMode identifies one of the 6502's addressing modes. Accumulator and
// Implied both resolve to no address; they're kept distinct because
// Accumulator-mode instructions (ASL/LSR/ROL/ROR A) read and write the A
// register in place of a bus operand.
type addrMode uint8

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZP
	modeZPX
	modeZPY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirectX
	modeIndirectY
	modeIndirect
	modeRelative
)

// resolveAddr computes the effective address for mode given the one or
// two operand bytes that followed the opcode, and the extra cycle (if
// any) the addressing mode itself contributes. Implied, Accumulator,
// Immediate and Relative never touch the bus; they return b1 as addr,
// which no handler uses for those modes.
//
// Page-crossing and zero-page-wrap cycle penalties are applied uniformly
// here regardless of the instruction that ends up using the address — the
// addressing mode, not the opcode's read/write/read-modify-write kind,
// owns the extra-cycle rule in this model.
func (c *Chip) resolveAddr(b bus.Bus, mode addrMode, b1, b2 uint8) (addr uint16, extra int) {
	switch mode {
	case modeImplied, modeAccumulator, modeImmediate, modeRelative:
		return uint16(b1), 0

	case modeZP:
		return uint16(b1), 0

	case modeZPX:
		raw := uint16(b1) + uint16(c.X)
		if raw > 0xFF {
			extra = 1
		}
		return uint16(uint8(raw)), extra

	case modeZPY:
		raw := uint16(b1) + uint16(c.Y)
		if raw > 0xFF {
			extra = 1
		}
		return uint16(uint8(raw)), extra

	case modeAbsolute:
		return uint16(b1) | uint16(b2)<<8, 0

	case modeAbsoluteX:
		base := uint16(b1) | uint16(b2)<<8
		addr = base + uint16(c.X)
		if addr&0xFF00 != base&0xFF00 {
			extra = 1
		}
		return addr, extra

	case modeAbsoluteY:
		base := uint16(b1) | uint16(b2)<<8
		addr = base + uint16(c.Y)
		if addr&0xFF00 != base&0xFF00 {
			extra = 1
		}
		return addr, extra

	case modeIndirectX:
		ptr := uint8(b1 + c.X)
		lo := b.Read(uint16(ptr))
		hi := b.Read(uint16(uint8(ptr + 1)))
		return uint16(lo) | uint16(hi)<<8, 0

	case modeIndirectY:
		lo := b.Read(uint16(b1))
		hi := b.Read(uint16(uint8(b1 + 1)))
		base := uint16(lo) | uint16(hi)<<8
		addr = base + uint16(c.Y)
		if addr&0xFF00 != base&0xFF00 {
			extra = 1
		}
		return addr, extra

	case modeIndirect:
		ptr := uint16(b1) | uint16(b2)<<8
		lo := b.Read(ptr)
		// Reproduces the NMOS indirect-JMP page-wrap bug: the high byte
		// is fetched from the same page as the low byte, not the next
		// page, when the pointer's low byte is 0xFF.
		hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
		hi := b.Read(hiAddr)
		return uint16(lo) | uint16(hi)<<8, 0
	}
	return 0, 0
}

// operand returns the byte an instruction should act on for mode: the
// accumulator, the raw immediate byte, or a bus read at addr.
func (c *Chip) operand(b bus.Bus, mode addrMode, addr uint16, imm uint8) uint8 {
	switch mode {
	case modeAccumulator:
		return c.A
	case modeImmediate:
		return imm
	default:
		return b.Read(addr)
	}
}

// storeOperand writes val back to wherever operand would have read it
// from, for read-modify-write instructions (and the accumulator-mode
// shift/rotate opcodes).
func (c *Chip) storeOperand(b bus.Bus, mode addrMode, addr uint16, val uint8) {
	if mode == modeAccumulator {
		c.A = val
		return
	}
	b.Write(addr, val)
}
