// Command trace is a minimal, non-interactive instruction tracer: it loads
// a flat binary into a 64 KiB RAM image, resets a core against it, and
// prints one line per retired instruction until the core halts or a
// caller-supplied instruction budget runs out. It exists to demonstrate
// embedding cpu.Chip against a bus.Bus, not as a debugger — there are no
// breakpoints, no memory editor, no interactive prompt.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/sixfiveohtwo/core/bus"
	"github.com/sixfiveohtwo/core/cpu"
)

func main() {
	path := flag.String("rom", "", "path to a flat binary to load at -load-addr")
	loadAddr := flag.Uint("load-addr", 0xC000, "address to load the binary at")
	startAddr := flag.Uint("start-addr", 0, "PC to start at; 0 means set the reset vector to -load-addr and reset")
	maxInstructions := flag.Uint64("max", 1_000_000, "stop after this many retired instructions")
	flag.Parse()

	if err := run(*path, uint16(*loadAddr), uint16(*startAddr), *maxInstructions); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, loadAddr, startAddr uint16, maxInstructions uint64) error {
	if path == "" {
		return errors.New("trace: -rom is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "trace: reading %s", path)
	}

	r := bus.NewRam()
	r.Load(loadAddr, data)

	c, err := cpu.New(&cpu.ChipDef{})
	if err != nil {
		return errors.Wrap(err, "trace: constructing core")
	}

	if startAddr != 0 {
		c.SetPC(startAddr)
	} else {
		r.SetVector(cpu.ResetVector, uint16(loadAddr))
		c.Reset(r)
	}

	for i := uint64(0); i < maxInstructions; i++ {
		fetchPC := c.PC
		op := r.Read(fetchPC)
		if err := c.Tick(r); err != nil {
			return errors.Wrapf(err, "trace: halted after %d instructions", i)
		}
		fmt.Printf("%04X  %02X  %-3s  A=%02X X=%02X Y=%02X S=%02X P=%02X  cyc=%d\n",
			fetchPC, op, cpu.Mnemonic(op), c.A, c.X, c.Y, c.S, c.Status(), c.LastCycles)
	}
	return nil
}
