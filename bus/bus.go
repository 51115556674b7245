// Package bus defines the memory-bus interface the cpu core requires of
// its host, and provides a flat-RAM reference implementation for tests
// and simple embeddings.
//
// The core owns no address space of its own. Everything it knows about
// the outside world — RAM, ROM, memory-mapped peripherals, cartridge
// banking — arrives through the Bus interface, which the host supplies.
package bus

// Bus is the capability set the cpu core consumes. A host implements
// whatever RAM/ROM/MMIO mapping it needs behind these two methods; the
// core neither knows nor cares how addr is resolved.
type Bus interface {
	// Read returns the byte at addr. Side effects (e.g. MMIO reads that
	// clear a status register) are the host's responsibility; the core
	// does not special-case any address.
	Read(addr uint16) uint8
	// Write stores val at addr. For ROM addresses this is a no-op; the
	// host decides, the core just calls Write unconditionally.
	Write(addr uint16, val uint8)
}

// Pipelined is an optional extension a Bus may implement for speed. The
// core calls ReadPipelined once per instruction to fetch the opcode byte
// and the (up to) two operand bytes that follow it. Hosts that don't
// implement it get the default behavior of three sequential Read calls
// via ReadPipelined.
//
// Contract: the host must tolerate spurious reads of the two bytes after
// the opcode even when the decoded instruction is only one byte long —
// real 6502 silicon always fetches three bytes' worth of bus activity
// per instruction fetch/decode, and code relying on read side effects
// (rare, but real on MMIO-heavy systems) must cope with it.
type Pipelined interface {
	Bus
	ReadPipelined(addr uint16) (op, b1, b2 uint8)
}

// ReadPipelined returns the three bytes starting at addr, wrapping at
// 0x10000. If b implements Pipelined its own implementation is used;
// otherwise this falls back to three sequential Read calls.
func ReadPipelined(b Bus, addr uint16) (op, b1, b2 uint8) {
	if p, ok := b.(Pipelined); ok {
		return p.ReadPipelined(addr)
	}
	op = b.Read(addr)
	b1 = b.Read(addr + 1)
	b2 = b.Read(addr + 2)
	return op, b1, b2
}

// Ram is a flat, unmapped 64 KiB address space. It's the simplest
// possible Bus implementation: every address aliases directly into a
// single backing array with no banking, no ROM protection, and no
// side effects. Useful for tests, for standalone tools like cmd/trace,
// and as a starting point for hosts that haven't built a real memory
// map yet.
type Ram struct {
	mem [0x10000]uint8
}

// NewRam returns a zeroed 64 KiB flat address space.
func NewRam() *Ram {
	return &Ram{}
}

// Read implements Bus.
func (r *Ram) Read(addr uint16) uint8 {
	return r.mem[addr]
}

// Write implements Bus.
func (r *Ram) Write(addr uint16, val uint8) {
	r.mem[addr] = val
}

// Load copies data into the address space starting at addr, truncating
// silently if data would run past 0xFFFF.
func (r *Ram) Load(addr uint16, data []uint8) {
	for i, b := range data {
		a := int(addr) + i
		if a > 0xFFFF {
			break
		}
		r.mem[a] = b
	}
}

// SetVector writes a little-endian 16-bit vector (RESET/NMI/IRQ) at addr.
func (r *Ram) SetVector(addr uint16, val uint16) {
	r.mem[addr] = uint8(val & 0xFF)
	r.mem[addr+1] = uint8(val >> 8)
}
