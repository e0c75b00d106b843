package duet

import (
	"context"

	"github.com/reusee/duet/debugs"
	"github.com/reusee/duet/duetconfigs"
	"github.com/reusee/duet/duetvm"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/metrics"
)

// RunDuet plays a program against a copy of itself and returns how many
// values the actor with p=1 sent before both sides got stuck.
type RunDuet func(ctx context.Context, program []duetvm.Instruction) (uint64, error)

func (Module) RunDuet(
	logger logs.Logger,
	newRun logs.NewRun,
	maxRounds duetconfigs.MaxRounds,
	seeds duetconfigs.Seeds,
	breakOn duetconfigs.BreakOn,
	trace duetconfigs.Trace,
	compileBreak debugs.CompileBreak,
	tap debugs.Tap,
	stats *metrics.Machine,
) RunDuet {
	return func(ctx context.Context, program []duetvm.Instruction) (sent uint64, err error) {
		ctx, _ = newRun(ctx, "duet")
		defer func() {
			err = logs.WrapRun(ctx, err)
		}()

		cond, err := compileBreak(string(breakOn))
		if err != nil {
			return 0, err
		}

		pair := NewPair(program, seeds...)
		var halted [2]bool

		pair.Observe = func(round int, results [2]duetvm.StepResult) error {
			stats.Rounds.Inc()

			for i, res := range results {
				stats.ObserveStep(actors[i], res)
				if trace {
					logger.DebugContext(ctx, "step",
						"actor", i,
						"round", round,
						"ip", res.IP,
						"op", res.Op,
						"status", res.Status,
					)
				}
				if m := pair.Machines[i]; m.Halted && !halted[i] {
					halted[i] = true
					stats.ObserveHalt(actors[i])
					args := []any{
						"actor", i,
						"round", round,
						"ip", m.IP,
						"sent", m.Sent,
					}
					if err := m.Fault.Err(); err != nil {
						args = append(args, "fault", err)
					}
					logger.InfoContext(ctx, "machine halted", args...)
				}
			}

			if breakOn == "" {
				return nil
			}
			globals := map[string]any{
				"m0":    debugs.MachineValue(pair.Machines[0]),
				"m1":    debugs.MachineValue(pair.Machines[1]),
				"round": round,
			}
			hit, err := cond(globals)
			if err != nil {
				return err
			}
			if hit {
				tap(ctx, "break: "+string(breakOn), globals)
			}
			return nil
		}

		logger.InfoContext(ctx, "duet start",
			"instructions", len(program),
			"max_rounds", int(maxRounds),
		)
		sent, err = pair.Run(ctx, int(maxRounds))
		if err != nil {
			logger.WarnContext(ctx, "duet stopped",
				"rounds", pair.Rounds,
				"error", err,
			)
			return sent, err
		}
		logger.InfoContext(ctx, "duet finished",
			"rounds", pair.Rounds,
			"sent", sent,
			"halted0", pair.Machines[0].Halted,
			"halted1", pair.Machines[1].Halted,
		)
		return sent, nil
	}
}
