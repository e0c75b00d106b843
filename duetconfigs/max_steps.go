package duetconfigs

import (
	"github.com/reusee/duet/cmds"
	"github.com/reusee/duet/configs"
	"github.com/reusee/duet/vars"
)

// MaxSteps bounds the single actor driver. Zero means no bound.
type MaxSteps int

var maxStepsFlag = cmds.Var[int]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
	))
}
