// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"os"

	"github.com/ezrec/ebr64/cpu"
)

// Emulator owns the machine state for a single run: a CPU constructed
// from a loaded ROM image, and optionally the program listing used for
// source line diagnostics.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Machine state; valid after Reset.

	Program *cpu.Program // Listing of the loaded image, if assembled in-process.
	Output  io.Writer    // Sink for OUT values; defaults to os.Stdout.

	rom *cpu.Rom
}

// NewEmulator creates a new emulator with no image loaded.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Output: os.Stdout,
	}

	return
}

// LoadImage loads a compiled artifact.
func (emu *Emulator) LoadImage(image []byte) (err error) {
	emu.rom, err = cpu.LoadImage(image)

	return
}

// LoadProgram serializes and loads an assembled listing, keeping the
// listing for line-number diagnostics.
func (emu *Emulator) LoadProgram(prog *cpu.Program) (err error) {
	image, err := prog.Binary()
	if err != nil {
		return
	}

	err = emu.LoadImage(image)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Reset constructs fresh machine state for the loaded image. Each run
// gets its own exclusively-owned CPU, RAM and flags.
func (emu *Emulator) Reset() (err error) {
	if emu.rom == nil {
		err = ErrNoImage
		return
	}

	output := emu.Output
	if output == nil {
		output = os.Stdout
	}

	emu.Cpu = cpu.NewCpu(emu.rom, output)
	emu.Cpu.Verbose = emu.Verbose

	return
}

// LineNo returns the source line for the current program counter, or 0
// when no listing is attached or the counter is past the listing.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	op := emu.Program.Debug(emu.Cpu.Pc)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Tick executes a single instruction. done is set when the executed
// instruction was HLT.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()

	inst, err := emu.Cpu.Step()
	if err != nil {
		err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		return
	}

	done = inst == cpu.OP_HLT

	return
}

// Run drives the CPU until it halts or fails. A program that never
// reaches HLT runs forever; bounding is the caller's concern.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
