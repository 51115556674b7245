// Package cpu implements an instruction-level, cycle-approximate NMOS 6502
// core. It decodes and retires exactly one instruction (or services exactly
// one pending interrupt) per call to Tick; the host supplies memory through
// the bus.Bus interface and drives the clock by calling Tick in a loop.
//
// The core owns no address space, no master clock, and no I/O of its own.
// It is meant to be embedded by a larger system emulator the way the
// teacher's cpu package was: construct a Chip, wire a bus.Bus and
// (optionally) irq.Sender lines for IRQ/NMI, call Reset, and Tick forever.
package cpu

import (
	"fmt"

	"github.com/sixfiveohtwo/core/bus"
	"github.com/sixfiveohtwo/core/irq"
)

// CPUType selects small behavioral variants within the NMOS family. CMOS
// (65C02) extensions are out of scope; only the BCD-arithmetic difference
// between stock NMOS parts and the Ricoh 2A03/2A07 (used in the NES, which
// wires decimal mode off) is modeled.
type CPUType int

const (
	// NMOS is the stock MOS 6502/6507/6510: binary and decimal ADC/SBC.
	NMOS CPUType = iota
	// NMOSRicoh is the NES's 2A03/2A07: identical to NMOS except the
	// decimal flag is wired off — ADC/SBC never do BCD regardless of D.
	NMOSRicoh
)

// Status register bit masks. Bit 5 is unused on real silicon and always
// reads back as 1. B has no effect on execution: in P it keeps the value
// set at construction (PLP and RTI leave it unchanged), and in the byte
// pushed to the stack it is set for BRK/PHP and clear for IRQ/NMI.
const (
	PNegative  uint8 = 0x80
	POverflow  uint8 = 0x40
	PUnused    uint8 = 0x20
	PBreak     uint8 = 0x10
	PDecimal   uint8 = 0x08
	PInterrupt uint8 = 0x04
	PZero      uint8 = 0x02
	PCarry     uint8 = 0x01
)

// Hardware interrupt vectors.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE
)

// InvalidCPUState reports a precondition violation that has nothing to do
// with the program being executed: New returns it for a bad CPU type at
// construction. Programs running on a correctly
// constructed Chip never trigger it.
type InvalidCPUState struct {
	Reason string
}

func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid cpu state: %s", e.Reason)
}

// HaltOpcode is returned by Tick once the host has set Chip.halted (via
// Halt) to signal a fatal fault. It carries the last opcode byte fetched
// before the halt took effect, for diagnostics.
type HaltOpcode struct {
	Opcode uint8
}

func (e HaltOpcode) Error() string {
	return fmt.Sprintf("cpu halted at opcode 0x%02X", e.Opcode)
}

// ChipDef configures a Chip at construction time.
type ChipDef struct {
	// Cpu selects the NMOS variant. Zero value is NMOS.
	Cpu CPUType
	// Irq, if non-nil, is polled at the top of every Tick; when it
	// reports Raised and the I flag is clear, an IRQ is serviced instead
	// of fetching the next instruction.
	Irq irq.Sender
	// Nmi, if non-nil, is polled at the top of every Tick ahead of Irq;
	// NMI is edge-triggered in real hardware, so the host is responsible
	// for dropping the line once it has been serviced.
	Nmi irq.Sender
}

// Chip is one 6502 core: registers, status, and the handful of debug
// fields a host or test harness needs to observe without reaching into
// unexported state. The zero value is not usable; construct with New.
type Chip struct {
	A  uint8
	X  uint8
	Y  uint8
	S  uint8
	PC uint16
	P  uint8

	cpuType CPUType
	irqSrc  irq.Sender
	nmiSrc  irq.Sender
	halted  bool

	// LastOpcode, LastPC and LastCycles describe the most recently
	// retired instruction; an interrupt service updates only LastCycles.
	// InstructionCount is a running total of instructions and interrupt
	// services, useful for benchmarks and trace tools.
	LastOpcode       uint8
	LastPC           uint16
	LastCycles       int
	InstructionCount uint64

	// UncaughtOpcode reports whether the most recently decoded byte was a
	// flagged undefined opcode, and UncaughtOpcodeValue holds the most
	// recent such byte. Every byte that isn't one of the 151 documented
	// opcodes is flagged except the five immediate-shaped undefined bytes
	// (see isImmediateNoOp). Execution continues as a no-op; this is
	// purely observational.
	UncaughtOpcode      bool
	UncaughtOpcodeValue uint8
}

// New constructs a Chip with all registers and status zeroed except for
// the status register's two fixed-high bits (unused bit 5, and B, which
// reads as the teacher's "fresh reset" value of 0x30; pushes, PLP and RTI
// do not change either bit). SP starts at 0xFF, the top of the stack page.
func New(def *ChipDef) (*Chip, error) {
	if def == nil {
		def = &ChipDef{}
	}
	if def.Cpu != NMOS && def.Cpu != NMOSRicoh {
		return nil, InvalidCPUState{Reason: "unknown cpu type"}
	}
	return &Chip{
		S:       0xFF,
		P:       PUnused | PBreak,
		cpuType: def.Cpu,
		irqSrc:  def.Irq,
		nmiSrc:  def.Nmi,
	}, nil
}

// Halt marks the core halted; subsequent Ticks return HaltOpcode without
// touching the bus or any register. Intended for a host to call after
// detecting a fatal condition the core itself has no opinion about
// (bus error, watchdog, etc).
func (c *Chip) Halt() {
	c.halted = true
}

// Halted reports whether the core has been halted.
func (c *Chip) Halted() bool {
	return c.halted
}

// Reset loads PC from the reset vector. It does not touch A, X, Y, S, or
// any status flag — on real hardware those retain whatever value they
// held, and a host that wants deterministic startup state should set them
// itself after New before the first Reset.
func (c *Chip) Reset(b bus.Bus) {
	lo := b.Read(ResetVector)
	hi := b.Read(ResetVector + 1)
	c.PC = uint16(lo) | uint16(hi)<<8
}

// SetPC forces the program counter, bypassing normal fetch/decode. Useful
// for test harnesses that want to drop a short routine at an arbitrary
// address without wiring a full reset vector.
func (c *Chip) SetPC(pc uint16) {
	c.PC = pc
}

// Status returns the raw 8-bit status register, NVUBDIZC from bit 7 down
// to bit 0.
func (c *Chip) Status() uint8 {
	return c.P
}

// SetStatus overwrites the status register outright. Bit 5 is forced to 1
// regardless of the value passed in, matching real silicon.
func (c *Chip) SetStatus(p uint8) {
	c.P = p | PUnused
}

func (c *Chip) flag(mask uint8) bool { return c.P&mask != 0 }

// GetNegative, GetOverflow, GetBreak, GetDecimal, GetInterrupt, GetZero and
// GetCarry are pure accessors over individual status bits, for tests and
// trace tools that would rather not mask the byte themselves.
func (c *Chip) GetNegative() bool  { return c.flag(PNegative) }
func (c *Chip) GetOverflow() bool  { return c.flag(POverflow) }
func (c *Chip) GetBreak() bool     { return c.flag(PBreak) }
func (c *Chip) GetDecimal() bool   { return c.flag(PDecimal) }
func (c *Chip) GetInterrupt() bool { return c.flag(PInterrupt) }
func (c *Chip) GetZero() bool      { return c.flag(PZero) }
func (c *Chip) GetCarry() bool     { return c.flag(PCarry) }

func (c *Chip) setFlag(mask uint8, v bool) {
	if v {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

// zeroCheck and negativeCheck are the two halves of the batch routine
// spec'd as update_zero_negative: every load, transfer, increment and
// logical/arithmetic instruction that defines Z and N from its result
// calls both.
func (c *Chip) zeroCheck(v uint8)     { c.setFlag(PZero, v == 0) }
func (c *Chip) negativeCheck(v uint8) { c.setFlag(PNegative, v&0x80 != 0) }
func (c *Chip) updateZN(v uint8) {
	c.zeroCheck(v)
	c.negativeCheck(v)
}

func (c *Chip) carryCheck(sum uint16) { c.setFlag(PCarry, sum >= 0x100) }

// overflowCheck implements the standard two's-complement overflow test: V
// is set when the addends share a sign and the result's sign differs from
// theirs.
func (c *Chip) overflowCheck(a, operand, res uint8) {
	c.setFlag(POverflow, (a^res)&(operand^res)&0x80 != 0)
}

// push writes val to the stack page (0x0100-0x01FF) at the current S and
// decrements S, wrapping at the page boundary the way the hardware stack
// pointer does (it is an 8-bit register; there is no overflow into page
// zero).
func (c *Chip) push(b bus.Bus, val uint8) {
	b.Write(0x0100|uint16(c.S), val)
	c.S--
}

func (c *Chip) pop(b bus.Bus) uint8 {
	c.S++
	return b.Read(0x0100 | uint16(c.S))
}

func (c *Chip) pushPC(b bus.Bus) {
	c.push(b, uint8(c.PC>>8))
	c.push(b, uint8(c.PC))
}

func (c *Chip) popPC(b bus.Bus) uint16 {
	lo := c.pop(b)
	hi := c.pop(b)
	return uint16(lo) | uint16(hi)<<8
}

// statusForPush returns the byte that hits the stack on a push, with bit 5
// forced high and bit 4 (B) set only for a software break (BRK/PHP); a
// hardware IRQ or NMI pushes B clear.
func (c *Chip) statusForPush(brk bool) uint8 {
	p := c.P | PUnused
	if brk {
		p |= PBreak
	} else {
		p &^= PBreak
	}
	return p
}

// pullStatus implements the PLP/RTI pull rule: bits 4 and 5 of the pulled
// byte are discarded, and the in-register bits 4 and 5 are left exactly as
// they were.
func (c *Chip) pullStatus(pulled uint8) {
	c.P = (c.P & (PUnused | PBreak)) | (pulled &^ (PUnused | PBreak))
}

// serviceInterrupt runs the shared NMI/IRQ/BRK vectoring sequence: push
// PC, push status (with B set only for software BRK), raise I, and load
// PC from vector. Callers are responsible for having already advanced PC
// past the BRK opcode and its padding byte, if applicable; hardware
// NMI/IRQ push the PC of the instruction that was about to execute.
func (c *Chip) serviceInterrupt(b bus.Bus, vector uint16, brk bool) {
	c.pushPC(b)
	c.push(b, c.statusForPush(brk))
	c.setFlag(PInterrupt, true)
	lo := b.Read(vector)
	hi := b.Read(vector + 1)
	c.PC = uint16(lo) | uint16(hi)<<8
}

// Tick retires exactly one instruction, or services exactly one pending
// interrupt, and returns. NMI is checked ahead of IRQ every call, matching
// real priority; IRQ is masked by the I flag, NMI never is. A halted core
// returns HaltOpcode without consuming a bus cycle.
func (c *Chip) Tick(b bus.Bus) error {
	if c.halted {
		return HaltOpcode{Opcode: c.LastOpcode}
	}
	if c.nmiSrc != nil && c.nmiSrc.Raised() {
		c.serviceInterrupt(b, NMIVector, false)
		c.LastCycles = 7
		c.InstructionCount++
		return nil
	}
	if c.irqSrc != nil && c.irqSrc.Raised() && !c.GetInterrupt() {
		c.serviceInterrupt(b, IRQVector, false)
		c.LastCycles = 7
		c.InstructionCount++
		return nil
	}

	op, b1, b2 := bus.ReadPipelined(b, c.PC)
	entry := opcodeTable[op]

	c.LastPC = c.PC
	c.LastOpcode = op
	c.UncaughtOpcode = entry.uncaught
	if entry.uncaught {
		c.UncaughtOpcodeValue = op
	}
	c.PC += uint16(entry.length)

	addr, extra := c.resolveAddr(b, entry.mode, b1, b2)
	extra += entry.run(c, b, entry.mode, addr, b1)

	c.LastCycles = int(entry.cycles) + extra
	c.InstructionCount++
	return nil
}
