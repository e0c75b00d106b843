package duetvm

import "strconv"

const NumRegisters = 26

// Registers holds one cell per lowercase letter. Unwritten cells read 0.
type Registers [NumRegisters]int64

func (r *Registers) Get(name byte) int64 {
	return r[name-'a']
}

func (r *Registers) Set(name byte, v int64) {
	r[name-'a'] = v
}

type Seed struct {
	Name  byte
	Value int64
}

func (s Seed) String() string {
	return string(rune(s.Name)) + "=" + strconv.FormatInt(s.Value, 10)
}

// RegisterSet is a bit set of register names.
type RegisterSet uint32

func (s RegisterSet) Has(name byte) bool {
	return s&(1<<(name-'a')) != 0
}

func (s *RegisterSet) Add(name byte) {
	*s |= 1 << (name - 'a')
}

func (s RegisterSet) Names() []byte {
	var ret []byte
	for i := range NumRegisters {
		if s&(1<<i) != 0 {
			ret = append(ret, byte('a'+i))
		}
	}
	return ret
}

func scanRegisters(program []Instruction) (ret RegisterSet) {
	for _, inst := range program {
		for name := range inst.Registers() {
			ret.Add(name)
		}
	}
	return
}
