package cpu

import (
	"fmt"
)

// Instruction is an EBR-64 opcode tag.
type Instruction int

const (
	OP_NOP = Instruction(0)  // NOP
	OP_LDA = Instruction(1)  // LDA
	OP_STA = Instruction(2)  // STA
	OP_ADD = Instruction(3)  // ADD
	OP_SUB = Instruction(4)  // SUB
	OP_OUT = Instruction(5)  // OUT
	OP_JMP = Instruction(6)  // JMP
	OP_JC  = Instruction(7)  // JC
	OP_JZ  = Instruction(8)  // JZ
	OP_HLT = Instruction(9)  // HLT
	OP_LDI = Instruction(10) // LDI
	OP_ADI = Instruction(11) // ADI
	OP_LDR = Instruction(12) // LDR
	OP_ADR = Instruction(13) // ADR
)

// mnemonicMap maps source mnemonics to instructions. Case-sensitive.
var mnemonicMap = map[string]Instruction{
	"NOP": OP_NOP,
	"LDA": OP_LDA,
	"STA": OP_STA,
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"OUT": OP_OUT,
	"JMP": OP_JMP,
	"JC":  OP_JC,
	"JZ":  OP_JZ,
	"HLT": OP_HLT,
	"LDI": OP_LDI,
	"ADI": OP_ADI,
	"LDR": OP_LDR,
	"ADR": OP_ADR,
}

// mnemonicOf maps instruction tags back to mnemonics, in tag order.
var mnemonicOf = [...]string{
	"NOP", "LDA", "STA", "ADD", "SUB", "OUT", "JMP",
	"JC", "JZ", "HLT", "LDI", "ADI", "LDR", "ADR",
}

// InstructionOf returns the instruction for a numeric tag.
func InstructionOf(tag uint8) (inst Instruction, err error) {
	if int(tag) >= len(mnemonicOf) {
		err = ErrUnknownTag(tag)
		return
	}

	inst = Instruction(tag)
	return
}

// HasOperand returns true if the instruction takes an operand token in
// assembly source. Operand-free instructions encode an operand of 0.
func (inst Instruction) HasOperand() bool {
	switch inst {
	case OP_NOP, OP_OUT, OP_HLT:
		return false
	}

	return true
}

// String returns the mnemonic for the instruction.
func (inst Instruction) String() string {
	if inst < 0 || int(inst) >= len(mnemonicOf) {
		return fmt.Sprintf("Instruction(%d)", int(inst))
	}

	return mnemonicOf[inst]
}
