package logs

import (
	"context"
	"crypto/rand"
)

// Run identifies one execution, e.g. a single duet between two machines.
type Run string

type runKey struct{}

var RunKey runKey

func RunFromContext(ctx context.Context) (Run, bool) {
	run, ok := ctx.Value(RunKey).(Run)
	return run, ok
}

type NewRun func(ctx context.Context, what string) (context.Context, Run)

func (Module) NewRun(
	logger Logger,
) NewRun {
	return func(ctx context.Context, what string) (context.Context, Run) {
		parent, _ := RunFromContext(ctx)

		run := Run(rand.Text())
		ctx = context.WithValue(ctx, RunKey, run)

		args := []any{
			"what", what,
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new run", args...)

		return ctx, run
	}
}
