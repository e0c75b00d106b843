package duetvm

import "fmt"

type Mode uint8

const (
	// ModeSingle plays sent values back to the machine itself.
	ModeSingle Mode = iota + 1
	// ModeDual exchanges values with a peer through Inbox and Outbox.
	ModeDual
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeDual:
		return "dual"
	}
	return "mode?"
}

type Machine struct {
	Program []Instruction
	Regs    Registers
	Seen    RegisterSet
	IP      uint
	Halted  bool
	Fault   Fault
	Mode    Mode

	// single actor
	Played    []int64
	Recovered []int64
	Receives  int

	// dual actor
	Inbox    []int64
	Outbox   []int64
	Sent     uint64
	Awaiting bool
}

func NewMachine(program []Instruction, mode Mode, seeds ...Seed) *Machine {
	m := &Machine{
		Program: program,
		Seen:    scanRegisters(program),
		Mode:    mode,
	}
	for _, seed := range seeds {
		if !IsRegisterName(seed.Name) {
			panic(fmt.Errorf("%w: seed register %q", ErrBadOperand, seed.Name))
		}
		m.Seen.Add(seed.Name)
		m.Regs.Set(seed.Name, seed.Value)
	}
	if len(program) == 0 {
		m.Halted = true
	}
	return m
}

func (m *Machine) Register(name byte) int64 {
	return m.Regs.Get(name)
}

// Stuck reports whether the machine cannot make progress without outside help.
func (m *Machine) Stuck() bool {
	return m.Halted || m.Awaiting
}

// Push delivers a value to the inbox. A machine awaiting input is released.
func (m *Machine) Push(v int64) {
	m.Inbox = append(m.Inbox, v)
	m.Awaiting = false
}

func (m *Machine) PopOutput() (int64, bool) {
	if len(m.Outbox) == 0 {
		return 0, false
	}
	v := m.Outbox[0]
	m.Outbox = m.Outbox[1:]
	return v, true
}

func (m *Machine) LastPlayed() (int64, bool) {
	if len(m.Played) == 0 {
		return 0, false
	}
	return m.Played[len(m.Played)-1], true
}

func (m *Machine) LastRecovered() (int64, bool) {
	if len(m.Recovered) == 0 {
		return 0, false
	}
	return m.Recovered[len(m.Recovered)-1], true
}

func (m *Machine) Clone() *Machine {
	ret := *m
	ret.Played = clone(m.Played)
	ret.Recovered = clone(m.Recovered)
	ret.Inbox = clone(m.Inbox)
	ret.Outbox = clone(m.Outbox)
	return &ret
}

func clone(s []int64) []int64 {
	if s == nil {
		return nil
	}
	return append(make([]int64, 0, len(s)), s...)
}
