package emulator

import (
	"errors"

	"github.com/ezrec/ebr64/translate"
)

var f = translate.From

var (
	ErrNoImage = errors.New(f("no image loaded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc     uint8
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo != 0 {
		return f("pc %d line %d %v", err.Pc, err.LineNo, err.Err)
	}

	return f("pc %d %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
