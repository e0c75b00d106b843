package duet

import (
	"context"
	"errors"

	"github.com/reusee/duet/duetvm"
)

var ErrStepLimit = errors.New("step limit reached")

// Solo drives a single actor machine until its first recovered value.
type Solo struct {
	Machine *duetvm.Machine
	Steps   int

	Observe func(step int, result duetvm.StepResult) error
}

func NewSolo(program []duetvm.Instruction, seeds ...duetvm.Seed) *Solo {
	return &Solo{
		Machine: duetvm.NewMachine(program, duetvm.ModeSingle, seeds...),
	}
}

// Run returns the first recovered value, or false if the machine halted
// without recovering one. maxSteps <= 0 means no limit.
func (s *Solo) Run(ctx context.Context, maxSteps int) (int64, bool, error) {
	m := s.Machine
	for m.Receives == 0 {
		if maxSteps > 0 && s.Steps >= maxSteps {
			return 0, false, ErrStepLimit
		}
		if s.Steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, false, err
			}
		}
		res := m.Step()
		if res.Status == duetvm.StatusHalted {
			return 0, false, m.Fault.Err()
		}
		s.Steps++
		if s.Observe != nil {
			if err := s.Observe(s.Steps, res); err != nil {
				return 0, false, err
			}
		}
	}
	return m.Recovered[0], true, nil
}
