package cpu

import (
	"fmt"
	"io"
	"log"
)

// Cpu is the mutable execution context for one run. It owns the RAM,
// references an immutable ROM, and advances one instruction per Step.
type Cpu struct {
	Verbose bool      // Set to log each executed step.
	Output  io.Writer // Sink for OUT values, one decimal per line.

	Pc      uint8           // Program counter into the ROM.
	Ram     [RAM_SIZE]int64 // Data memory, zero on construction.
	Rom     *Rom            // Instruction memory.
	RegA    int64           // Accumulator.
	RegJump uint8           // Pending jump target.
	Flags   Flags           // CARRY, ZERO and JUMP flags.
}

// NewCpu creates a CPU for a loaded ROM, writing OUT values to output.
func NewCpu(rom *Rom, output io.Writer) (cpu *Cpu) {
	cpu = &Cpu{
		Rom:    rom,
		Output: output,
	}

	return
}

// Step executes the record at the program counter, then advances
// control: a pending jump consumes the JUMP flag and loads the jump
// register, anything else increments the counter modulo the ROM size.
// Returns the executed instruction; the caller stops on HLT.
func (cpu *Cpu) Step() (inst Instruction, err error) {
	rec := cpu.Rom[cpu.Pc]
	inst = rec.Instruction

	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Pc, rec)
	}

	var addr int
	switch inst {
	case OP_NOP:
	case OP_LDA:
		addr, err = cpu.ramIndex(rec.Value)
		if err != nil {
			return
		}
		cpu.RegA = cpu.Ram[addr]
	case OP_STA:
		addr, err = cpu.ramIndex(rec.Value)
		if err != nil {
			return
		}
		cpu.Ram[addr] = cpu.RegA
	case OP_ADD:
		addr, err = cpu.ramIndex(rec.Value)
		if err != nil {
			return
		}
		cpu.aluAdd(cpu.Ram[addr])
	case OP_SUB:
		addr, err = cpu.ramIndex(rec.Value)
		if err != nil {
			return
		}
		cpu.aluSub(cpu.Ram[addr])
	case OP_OUT:
		_, err = fmt.Fprintf(cpu.Output, "%d\n", cpu.RegA)
		if err != nil {
			return
		}
	case OP_JMP:
		err = cpu.jump(rec.Value)
	case OP_JC:
		if cpu.Flags.Has(FLAG_CARRY) {
			err = cpu.jump(rec.Value)
		}
	case OP_JZ:
		if cpu.Flags.Has(FLAG_ZERO) {
			err = cpu.jump(rec.Value)
		}
	case OP_HLT:
	case OP_LDI:
		cpu.RegA = rec.Value
	case OP_ADI:
		cpu.aluAdd(rec.Value)
	case OP_LDR:
		addr, err = cpu.romIndex(rec.Value)
		if err != nil {
			return
		}
		cpu.RegA = cpu.Rom[addr].Value
	case OP_ADR:
		addr, err = cpu.romIndex(rec.Value)
		if err != nil {
			return
		}
		cpu.aluAdd(cpu.Rom[addr].Value)
	default:
		err = ErrUnknownTag(uint8(inst))
	}
	if err != nil {
		return
	}

	cpu.count()

	return
}

// jump records a jump request; it is taken on the next control advance.
func (cpu *Cpu) jump(target int64) (err error) {
	addr, err := cpu.romIndex(target)
	if err != nil {
		return
	}

	cpu.Flags.Set(FLAG_JUMP)
	cpu.RegJump = uint8(addr)

	return
}

// ramIndex validates a RAM address operand.
func (cpu *Cpu) ramIndex(value int64) (addr int, err error) {
	if value < 0 || value >= RAM_SIZE {
		err = ErrAddressRange(value)
		return
	}

	addr = int(value)
	return
}

// romIndex validates a ROM address operand.
func (cpu *Cpu) romIndex(value int64) (addr int, err error) {
	if value < 0 || value >= ROM_SIZE {
		err = ErrAddressRange(value)
		return
	}

	addr = int(value)
	return
}

// aluAdd adds value to the accumulator with 64-bit two's-complement
// wraparound. CARRY is set on signed overflow and ZERO on a zero
// result; both are recomputed on every ALU operation.
func (cpu *Cpu) aluAdd(value int64) {
	sum := cpu.RegA + value
	carry := (value > 0 && sum < cpu.RegA) || (value < 0 && sum > cpu.RegA)
	cpu.Flags.SetTo(FLAG_CARRY, carry)
	cpu.Flags.SetTo(FLAG_ZERO, sum == 0)
	cpu.RegA = sum
}

// aluSub subtracts value from the accumulator, mirroring aluAdd's flag
// semantics.
func (cpu *Cpu) aluSub(value int64) {
	diff := cpu.RegA - value
	carry := (value < 0 && diff < cpu.RegA) || (value > 0 && diff > cpu.RegA)
	cpu.Flags.SetTo(FLAG_CARRY, carry)
	cpu.Flags.SetTo(FLAG_ZERO, diff == 0)
	cpu.RegA = diff
}

// count advances the program counter, consuming a pending jump. The
// counter is 8 bits wide and wraps naturally from 255 to 0.
func (cpu *Cpu) count() {
	if cpu.Flags.Has(FLAG_JUMP) {
		cpu.Pc = cpu.RegJump
		cpu.Flags.Clear(FLAG_JUMP)
	} else {
		cpu.Pc += 1
	}
}
