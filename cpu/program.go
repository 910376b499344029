package cpu

import (
	"iter"
)

// Opcode represents a line of assembled code with its source location
// and generated record.
type Opcode struct {
	LineNo int
	Ip     int
	Words  []string
	Record Record
}

// Program is an assembled listing, one ROM record per opcode.
type Program struct {
	Opcodes []Opcode
}

// Debug looks up the opcode covering a ROM address, or nil.
func (prog *Program) Debug(ip uint8) (op *Opcode) {
	for n := range prog.Opcodes {
		if prog.Opcodes[n].Ip == int(ip) {
			op = &prog.Opcodes[n]
			break
		}
	}

	return
}

// Binary serializes the listing into an artifact: the packed records in
// order, with no length padding. Padding to a full ROM happens at load.
func (prog *Program) Binary() (image []byte, err error) {
	for _, rec := range prog.Records() {
		var buf [RECORD_SIZE]byte
		buf, err = rec.Pack()
		if err != nil {
			image = nil
			return
		}
		image = append(image, buf[:]...)
	}

	return
}

// Records iterates the program's records in ROM order.
func (prog *Program) Records() iter.Seq2[uint8, Record] {
	return func(yield func(ip uint8, rec Record) bool) {
		for _, op := range prog.Opcodes {
			if !yield(uint8(op.Ip), op.Record) {
				return
			}
		}
	}
}
