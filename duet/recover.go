package duet

import (
	"context"

	"github.com/reusee/duet/debugs"
	"github.com/reusee/duet/duetconfigs"
	"github.com/reusee/duet/duetvm"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/metrics"
)

// Recover runs a program as a single actor and returns the first value it
// recovers. ok is false if the program halted without recovering.
type Recover func(ctx context.Context, program []duetvm.Instruction) (value int64, ok bool, err error)

func (Module) Recover(
	logger logs.Logger,
	newRun logs.NewRun,
	maxSteps duetconfigs.MaxSteps,
	seeds duetconfigs.Seeds,
	breakOn duetconfigs.BreakOnRecover,
	trace duetconfigs.Trace,
	compileBreak debugs.CompileBreak,
	tap debugs.Tap,
	stats *metrics.Machine,
) Recover {
	const actor = "single"

	return func(ctx context.Context, program []duetvm.Instruction) (value int64, ok bool, err error) {
		ctx, _ = newRun(ctx, "recover")
		defer func() {
			err = logs.WrapRun(ctx, err)
		}()

		cond, err := compileBreak(string(breakOn))
		if err != nil {
			return 0, false, err
		}

		solo := NewSolo(program, seeds...)
		solo.Observe = func(step int, res duetvm.StepResult) error {
			stats.ObserveStep(actor, res)
			if trace {
				logger.DebugContext(ctx, "step",
					"step", step,
					"ip", res.IP,
					"op", res.Op,
					"status", res.Status,
				)
			}
			if breakOn == "" {
				return nil
			}
			globals := map[string]any{
				"m":    debugs.MachineValue(solo.Machine),
				"step": step,
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

		value, ok, err = solo.Run(ctx, int(maxSteps))
		if solo.Machine.Halted {
			stats.ObserveHalt(actor)
		}
		if err != nil {
			logger.WarnContext(ctx, "recover stopped",
				"steps", solo.Steps,
				"error", err,
			)
			return 0, false, err
		}
		logger.InfoContext(ctx, "recover finished",
			"steps", solo.Steps,
			"recovered", ok,
			"value", value,
		)
		return value, ok, nil
	}
}
