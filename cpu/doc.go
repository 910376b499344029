// Package cpu implements the processor, record codec, and assembler for
// the EBR-64 machine.
//
// The machine is a single-accumulator design: 256 records of fixed-width
// instruction ROM addressed by an 8-bit program counter, 256 cells of
// signed 64-bit data RAM in a separate address space, a jump register,
// and CARRY/ZERO/JUMP status flags. Each ROM record packs a one-byte
// opcode tag with a 56-bit signed big-endian operand into 8 bytes.
//
// The assembler translates one-instruction-per-line source text into a
// Program listing, with compile-time $() constant expression evaluation.
package cpu
