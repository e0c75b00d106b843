package duetvm

// Run steps the machine until it halts. A successful single actor receive
// yields InterruptRecover. Blocking on an empty inbox yields InterruptSuspend
// and returns; push input and range again to resume.
func (m *Machine) Run(yield func(*Interrupt, error) bool) {
	for {
		res := m.Step()
		switch res.Status {

		case StatusHalted:
			if err := m.Fault.Err(); err != nil {
				yield(nil, err)
			}
			return

		case StatusBlocked:
			yield(InterruptSuspend, nil)
			return

		}
		if res.HasRecovered {
			if !yield(InterruptRecover, nil) {
				return
			}
		}
	}
}

// RecoverFirst runs until the first value is recovered.
// It returns false if the machine halted without recovering anything.
func (m *Machine) RecoverFirst() (int64, bool) {
	if m.Receives > 0 {
		return m.Recovered[0], true
	}
	for intr, err := range m.Run {
		if err != nil {
			return 0, false
		}
		if intr == InterruptRecover {
			return m.Recovered[0], true
		}
	}
	return 0, false
}
