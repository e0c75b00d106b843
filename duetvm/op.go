package duetvm

type OpCode uint8

const (
	OpSnd OpCode = iota + 1
	OpSet
	OpAdd
	OpMul
	OpMod
	OpRcv
	OpJgz
)

var opNames = [...]string{
	OpSnd: "snd",
	OpSet: "set",
	OpAdd: "add",
	OpMul: "mul",
	OpMod: "mod",
	OpRcv: "rcv",
	OpJgz: "jgz",
}

func (o OpCode) String() string {
	if int(o) < len(opNames) && opNames[o] != "" {
		return opNames[o]
	}
	return "op?"
}

// Arity is the number of operands the instruction takes.
func (o OpCode) Arity() int {
	switch o {
	case OpSnd, OpRcv:
		return 1
	}
	return 2
}

// OpByName maps mnemonics to op codes.
var OpByName = map[string]OpCode{
	"snd": OpSnd,
	"set": OpSet,
	"add": OpAdd,
	"mul": OpMul,
	"mod": OpMod,
	"rcv": OpRcv,
	"jgz": OpJgz,
}
