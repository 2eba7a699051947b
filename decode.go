package main

import "fmt"

type opCode uint8

const (
	opAdd opCode = iota + 1
	opMul
	opInput
	opOutput
	opJumpIfTrue
	opJumpIfFalse
	opLessThan
	opEquals
	opAdjustBase
	opHalt opCode = 99
)

var opNames = [...]string{
	opAdd:         "add",
	opMul:         "mul",
	opInput:       "input",
	opOutput:      "output",
	opJumpIfTrue:  "jump-true",
	opJumpIfFalse: "jump-false",
	opLessThan:    "less",
	opEquals:      "equals",
	opAdjustBase:  "base",
	opHalt:        "halt",
}

func (op opCode) valid() bool { return int(op) < len(opNames) && opNames[op] != "" }

func (op opCode) String() string {
	if op.valid() {
		return opNames[op]
	}
	return fmt.Sprintf("op%d", uint8(op))
}

type mode uint8

const (
	modePosition mode = iota
	modeImmediate
	modeRelative
)

var modeNames = [...]string{"position", "immediate", "relative"}

func (m mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode%d", uint8(m))
}

// modeDigits holds the addressing mode digits not yet consumed by an
// instruction's operands; the lowest digit belongs to the next operand.
type modeDigits int64

// instruction is a decoded instruction word.
type instruction struct {
	at    int64 // address of the instruction word
	word  int64
	code  opCode
	modes modeDigits
}

func (ins instruction) String() string {
	if ins.word/100 == 0 {
		return ins.code.String()
	}
	return fmt.Sprintf("%v/%d", ins.code, ins.word/100)
}

// decode splits the instruction word found at address at into its opcode
// and mode digits.
func decode(at, word int64) (instruction, error) {
	ins := instruction{at: at, word: word}
	if word < 0 {
		return ins, opcodeError{at, word}
	}
	ins.code = opCode(word % 100)
	if !ins.code.valid() {
		return ins, opcodeError{at, word}
	}
	ins.modes = modeDigits(word / 100)
	return ins, nil
}

// nextMode consumes the next mode digit; exhausted digits mean position mode.
func (ins *instruction) nextMode() (mode, error) {
	digit := int64(ins.modes % 10)
	ins.modes /= 10
	if digit > int64(modeRelative) {
		return 0, modeError{ins.at, ins.word, digit}
	}
	return mode(digit), nil
}
