package cpu

import (
	"errors"

	"github.com/ezrec/ebr64/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrExtraArgs      = errors.New(f("excessive arguments"))
)

type ErrUnknownMnemonic string

func (err ErrUnknownMnemonic) Error() string {
	return f("'%v' is not an instruction", string(err))
}

type ErrUnknownTag uint8

func (err ErrUnknownTag) Error() string {
	return f("opcode tag %v unknown", uint8(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrOperandRange int64

func (err ErrOperandRange) Error() string {
	return f("operand %v does not fit in 56 signed bits", int64(err))
}

type ErrRecordSize int

func (err ErrRecordSize) Error() string {
	return f("record is %v bytes, not %v", int(err), RECORD_SIZE)
}

type ErrImageSize int

func (err ErrImageSize) Error() string {
	return f("image of %v bytes does not fit %v records of %v bytes", int(err), ROM_SIZE, RECORD_SIZE)
}

type ErrAddressRange int64

func (err ErrAddressRange) Error() string {
	return f("address %v outside 0-%v", int64(err), ROM_SIZE-1)
}

// ErrSyntax indicates the location of an assembly error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
