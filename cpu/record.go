package cpu

import (
	"fmt"
	"iter"
)

const (
	RECORD_SIZE = 8   // Packed record size in bytes.
	ROM_SIZE    = 256 // Records in a loaded ROM image.
	RAM_SIZE    = 256 // Cells of data memory.

	OPERAND_MAX = int64(1)<<55 - 1  // Largest encodable operand.
	OPERAND_MIN = -(int64(1) << 55) // Smallest encodable operand.
)

// operandMask covers the low 56 bits of the packed value field.
const operandMask = uint64(1)<<56 - 1

// Record is the in-memory form of one fixed-width ROM record: an opcode
// and its 56-bit signed operand, widened to 64 bits.
type Record struct {
	Instruction Instruction
	Value       int64
}

// Pack encodes the record into its 8-byte wire form: byte 0 is the
// opcode tag, bytes 1-7 are the operand as a big-endian two's-complement
// 56-bit integer. Fails if the operand does not fit in 56 signed bits.
func (rec Record) Pack() (buf [RECORD_SIZE]byte, err error) {
	if rec.Value > OPERAND_MAX || rec.Value < OPERAND_MIN {
		err = ErrOperandRange(rec.Value)
		return
	}

	buf[0] = byte(rec.Instruction)
	value := uint64(rec.Value) & operandMask
	for n := 1; n < RECORD_SIZE; n++ {
		buf[n] = byte(value >> (8 * (RECORD_SIZE - 1 - n)))
	}

	return
}

// UnpackRecord decodes an 8-byte record, sign-extending the operand
// from 56 to 64 bits. Fails on an out-of-range opcode tag.
func UnpackRecord(buf []byte) (rec Record, err error) {
	if len(buf) != RECORD_SIZE {
		err = ErrRecordSize(len(buf))
		return
	}

	rec.Instruction, err = InstructionOf(buf[0])
	if err != nil {
		return
	}

	var value uint64
	for _, b := range buf[1:] {
		value = (value << 8) | uint64(b)
	}
	rec.Value = int64(value<<8) >> 8

	return
}

// String returns the assembly language representation of the record.
func (rec Record) String() string {
	if rec.Instruction.HasOperand() {
		return fmt.Sprintf("%v %v", rec.Instruction, rec.Value)
	}

	return rec.Instruction.String()
}

// Rom is the instruction memory for one run, immutable during execution.
type Rom [ROM_SIZE]Record

// LoadImage splits an artifact into consecutive 8-byte records and pads
// the tail with HLT records to exactly ROM_SIZE entries. An image whose
// length is not a multiple of the record size, or that holds more than
// ROM_SIZE records, or that contains an undecodable record, is an error.
func LoadImage(image []byte) (rom *Rom, err error) {
	if len(image)%RECORD_SIZE != 0 {
		err = ErrImageSize(len(image))
		return
	}

	count := len(image) / RECORD_SIZE
	if count > ROM_SIZE {
		err = ErrImageSize(len(image))
		return
	}

	rom = &Rom{}
	for n := range count {
		rom[n], err = UnpackRecord(image[n*RECORD_SIZE : (n+1)*RECORD_SIZE])
		if err != nil {
			rom = nil
			return
		}
	}

	for n := count; n < ROM_SIZE; n++ {
		rom[n] = Record{Instruction: OP_HLT}
	}

	return
}

// Records iterates the ROM in address order.
func (rom *Rom) Records() iter.Seq2[uint8, Record] {
	return func(yield func(addr uint8, rec Record) bool) {
		for n := range ROM_SIZE {
			if !yield(uint8(n), rom[n]) {
				return
			}
		}
	}
}
