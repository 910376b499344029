// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler is a single pass assembler for EBR-64 source text. Each
// non-blank line is one instruction: a case-sensitive mnemonic followed
// by at most one base-10 operand. Any line that fails to parse fails
// the whole program.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, starlark.StringDict{})
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine expands $() evaluations and splits a line into words.
func (asm *Assembler) parseLine(line string) (words []string, err error) {
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	return
}

// parseWords assembles one line's words into a Record.
func (asm *Assembler) parseWords(words []string) (rec Record, err error) {
	inst, ok := mnemonicMap[words[0]]
	if !ok {
		err = ErrUnknownMnemonic(words[0])
		return
	}
	rec.Instruction = inst

	args := words[1:]
	if !inst.HasOperand() {
		if len(args) != 0 {
			err = ErrExtraArgs
		}
		return
	}

	if len(args) < 1 {
		err = ErrOperandMissing
		return
	}
	if len(args) > 1 {
		err = ErrExtraArgs
		return
	}

	value, perr := strconv.ParseInt(args[0], 10, 64)
	if perr != nil {
		err = ErrParseNumber(args[0])
		return
	}
	if value > OPERAND_MAX || value < OPERAND_MIN {
		err = ErrOperandRange(value)
		return
	}
	rec.Value = value

	return
}

// Parse parses an input stream into a Program containing opcodes.
// No partial result is produced on error.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	asm.Opcode = asm.Opcode[:0]

	for scanner.Scan() {
		line = strings.TrimSpace(scanner.Text())
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		var words []string
		words, err = asm.parseLine(line)
		if err != nil {
			return
		}

		if len(words) == 0 {
			continue
		}

		var rec Record
		rec, err = asm.parseWords(words)
		if err != nil {
			return
		}

		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo: lineno,
			Ip:     len(asm.Opcode),
			Words:  words,
			Record: rec,
		})
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}
