package duetvm

import (
	"fmt"
	"iter"
)

type Instruction struct {
	Op OpCode
	X  Operand
	Y  Operand // unused by snd and rcv
}

func Snd(x Operand) Instruction {
	return Instruction{Op: OpSnd, X: x}
}

func Set(dst byte, y Operand) Instruction {
	return Instruction{Op: OpSet, X: Reg(dst), Y: y}
}

func Add(dst byte, y Operand) Instruction {
	return Instruction{Op: OpAdd, X: Reg(dst), Y: y}
}

func Mul(dst byte, y Operand) Instruction {
	return Instruction{Op: OpMul, X: Reg(dst), Y: y}
}

func Mod(dst byte, y Operand) Instruction {
	return Instruction{Op: OpMod, X: Reg(dst), Y: y}
}

func Rcv(dst byte) Instruction {
	return Instruction{Op: OpRcv, X: Reg(dst)}
}

func Jgz(x, y Operand) Instruction {
	return Instruction{Op: OpJgz, X: x, Y: y}
}

// WritesRegister reports whether X must name a register.
func (i Instruction) WritesRegister() bool {
	switch i.Op {
	case OpSet, OpAdd, OpMul, OpMod, OpRcv:
		return true
	}
	return false
}

// Validate checks the shape of a hand-built instruction.
func (i Instruction) Validate() error {
	switch i.Op {
	case OpSnd, OpSet, OpAdd, OpMul, OpMod, OpRcv, OpJgz:
	default:
		return fmt.Errorf("unknown op code %d", i.Op)
	}
	if i.WritesRegister() && !i.X.IsRegister() {
		return fmt.Errorf("%w: %s needs a register, got %s", ErrBadOperand, i.Op, i.X)
	}
	return nil
}

// Registers yields every register name the instruction refers to.
func (i Instruction) Registers() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		if i.X.IsRegister() {
			if !yield(i.X.Register) {
				return
			}
		}
		if i.Op.Arity() == 2 && i.Y.IsRegister() {
			if !yield(i.Y.Register) {
				return
			}
		}
	}
}

func (i Instruction) String() string {
	if i.Op.Arity() == 1 {
		return i.Op.String() + " " + i.X.String()
	}
	return i.Op.String() + " " + i.X.String() + " " + i.Y.String()
}
