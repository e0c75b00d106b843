package duet

import (
	"context"
	"errors"

	"github.com/reusee/duet/duetvm"
)

var ErrRoundLimit = errors.New("round limit reached")

// how often Run looks at the context
const ctxCheckInterval = 1024

// Pair runs two copies of a program that talk through each other's queues.
// Machine i has register p seeded to i.
type Pair struct {
	Machines [2]*duetvm.Machine
	Rounds   int

	// Observe, when set, is called after every round. A non-nil error stops Run.
	Observe func(round int, results [2]duetvm.StepResult) error
}

// NewPair seeds p after the extra seeds, so p always tells the actors apart.
func NewPair(program []duetvm.Instruction, seeds ...duetvm.Seed) *Pair {
	var pair Pair
	for i := range pair.Machines {
		machineSeeds := append(seeds[:len(seeds):len(seeds)], duetvm.Seed{
			Name:  'p',
			Value: int64(i),
		})
		pair.Machines[i] = duetvm.NewMachine(program, duetvm.ModeDual, machineSeeds...)
	}
	return &pair
}

// Round steps machine 0, then machine 1. A value sent by one side is moved to
// the other's inbox before the other side steps.
func (p *Pair) Round() (results [2]duetvm.StepResult) {
	for i, m := range p.Machines {
		results[i] = m.Step()
		if results[i].HasSent {
			v, _ := m.PopOutput()
			p.Machines[1-i].Push(v)
		}
	}
	p.Rounds++
	return
}

// Stuck reports whether neither machine can progress: each one is halted or
// waiting for input.
func (p *Pair) Stuck() bool {
	return p.Machines[0].Stuck() && p.Machines[1].Stuck()
}

// Run plays rounds until the pair is stuck and returns how many values
// machine 1 sent. maxRounds <= 0 means no limit.
func (p *Pair) Run(ctx context.Context, maxRounds int) (uint64, error) {
	for !p.Stuck() {
		if maxRounds > 0 && p.Rounds >= maxRounds {
			return p.Machines[1].Sent, ErrRoundLimit
		}
		if p.Rounds%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return p.Machines[1].Sent, err
			}
		}
		results := p.Round()
		if p.Observe != nil {
			if err := p.Observe(p.Rounds, results); err != nil {
				return p.Machines[1].Sent, err
			}
		}
	}
	return p.Machines[1].Sent, nil
}
