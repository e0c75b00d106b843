package duetvm

type Status uint8

const (
	StatusExecuted Status = iota + 1
	StatusBlocked
	StatusHalted
)

func (s Status) String() string {
	switch s {
	case StatusExecuted:
		return "executed"
	case StatusBlocked:
		return "blocked"
	case StatusHalted:
		return "halted"
	}
	return "status?"
}

type StepResult struct {
	Status       Status
	Op           OpCode
	IP           uint // offset of the instruction looked at
	Sent         int64
	HasSent      bool
	Recovered    int64
	HasRecovered bool
}

func (m *Machine) Eval(o Operand) int64 {
	if o.IsRegister() {
		return m.Regs.Get(o.Register)
	}
	return o.Literal
}

// Step executes at most one instruction.
func (m *Machine) Step() (ret StepResult) {
	ret.IP = m.IP
	if m.Halted {
		ret.Status = StatusHalted
		return
	}
	if m.IP >= uint(len(m.Program)) {
		m.Halted = true
		ret.Status = StatusHalted
		return
	}

	inst := m.Program[m.IP]
	ret.Op = inst.Op
	ret.Status = StatusExecuted

	switch inst.Op {

	case OpSnd:
		v := m.Eval(inst.X)
		m.send(v)
		ret.Sent = v
		ret.HasSent = true
		m.IP++

	case OpSet:
		m.Regs.Set(inst.X.Register, m.Eval(inst.Y))
		m.IP++

	case OpAdd:
		m.Regs.Set(inst.X.Register, m.Regs.Get(inst.X.Register)+m.Eval(inst.Y))
		m.IP++

	case OpMul:
		m.Regs.Set(inst.X.Register, m.Regs.Get(inst.X.Register)*m.Eval(inst.Y))
		m.IP++

	case OpMod:
		d := m.Eval(inst.Y)
		if d == 0 {
			m.Halted = true
			m.Fault = FaultDivideByZero
			ret.Status = StatusHalted
			return
		}
		m.Regs.Set(inst.X.Register, euclideanMod(m.Regs.Get(inst.X.Register), d))
		m.IP++

	case OpRcv:
		if !m.receive(inst.X, &ret) {
			ret.Status = StatusBlocked
			return
		}
		m.IP++

	case OpJgz:
		if m.Eval(inst.X) <= 0 {
			m.IP++
			break
		}
		offset := m.Eval(inst.Y)
		if offset < 0 {
			// checked before subtracting; -MinInt64 wraps to itself and still compares larger
			back := uint64(-offset)
			if back > uint64(m.IP) {
				m.Halted = true
				ret.Status = StatusHalted
				return
			}
			m.IP -= uint(back)
		} else {
			m.IP += uint(offset)
		}

	}

	if m.IP >= uint(len(m.Program)) {
		m.Halted = true
	}
	return
}

func (m *Machine) send(v int64) {
	switch m.Mode {
	case ModeDual:
		m.Outbox = append(m.Outbox, v)
		m.Sent++
	default:
		m.Played = append(m.Played, v)
	}
}

// receive returns false when the instruction must be retried later.
func (m *Machine) receive(x Operand, ret *StepResult) bool {
	switch m.Mode {

	case ModeDual:
		if len(m.Inbox) == 0 {
			m.Awaiting = true
			return false
		}
		v := m.Inbox[0]
		m.Inbox = m.Inbox[1:]
		m.Regs.Set(x.Register, v)
		m.Awaiting = false

	default:
		if m.Eval(x) == 0 {
			return true
		}
		v, ok := m.LastPlayed()
		if !ok {
			return true
		}
		m.Recovered = append(m.Recovered, v)
		m.Receives++
		ret.Recovered = v
		ret.HasRecovered = true

	}
	return true
}

// euclideanMod returns a value in [0, |d|).
func euclideanMod(a, d int64) int64 {
	r := a % d
	if r < 0 {
		if d < 0 {
			r -= d
		} else {
			r += d
		}
	}
	return r
}
