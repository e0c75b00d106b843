package duetasm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/duet/duetvm"
)

var ErrSyntax = errors.New("syntax error")

// Parse reads one instruction per line. Several instructions may share a
// line when separated by commas. Text after '#' is ignored.
func Parse(name string, r io.Reader) (program []duetvm.Instruction, err error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for part := range strings.SplitSeq(line, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			inst, err := parseInstruction(part)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, lineNum, err)
			}
			program = append(program, inst)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return program, nil
}

func ParseString(name string, src string) ([]duetvm.Instruction, error) {
	return Parse(name, strings.NewReader(src))
}

func MustParse(src string) []duetvm.Instruction {
	program, err := ParseString("program", src)
	if err != nil {
		panic(err)
	}
	return program
}

func parseInstruction(str string) (ret duetvm.Instruction, err error) {
	fields := strings.Fields(str)
	op, ok := duetvm.OpByName[fields[0]]
	if !ok {
		return ret, fmt.Errorf("%w: unknown instruction %q", ErrSyntax, fields[0])
	}
	args := fields[1:]
	if len(args) != op.Arity() {
		return ret, fmt.Errorf("%w: %s takes %d operands, got %d", ErrSyntax, op, op.Arity(), len(args))
	}

	ret.Op = op
	ret.X, err = duetvm.ParseOperand(args[0])
	if err != nil {
		return ret, err
	}
	if op.Arity() == 2 {
		ret.Y, err = duetvm.ParseOperand(args[1])
		if err != nil {
			return ret, err
		}
	}
	if err := ret.Validate(); err != nil {
		return ret, err
	}
	return ret, nil
}
