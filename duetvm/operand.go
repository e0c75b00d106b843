package duetvm

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrBadOperand = errors.New("bad operand")

// Operand is either a literal or a register reference.
type Operand struct {
	Literal  int64
	Register byte // 'a'..'z', zero for literals
}

func Lit(v int64) Operand {
	return Operand{
		Literal: v,
	}
}

func Reg(name byte) Operand {
	if !IsRegisterName(name) {
		panic(fmt.Errorf("%w: register %q", ErrBadOperand, name))
	}
	return Operand{
		Register: name,
	}
}

func IsRegisterName(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func (o Operand) IsRegister() bool {
	return o.Register != 0
}

func (o Operand) String() string {
	if o.IsRegister() {
		return string(rune(o.Register))
	}
	return strconv.FormatInt(o.Literal, 10)
}

func ParseOperand(str string) (ret Operand, err error) {
	if len(str) == 1 && IsRegisterName(str[0]) {
		return Reg(str[0]), nil
	}
	v, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return ret, fmt.Errorf("%w: %q", ErrBadOperand, str)
	}
	return Lit(v), nil
}

func MustOperand(str string) Operand {
	o, err := ParseOperand(str)
	if err != nil {
		panic(err)
	}
	return o
}
