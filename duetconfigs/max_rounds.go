package duetconfigs

import (
	"github.com/reusee/duet/cmds"
	"github.com/reusee/duet/configs"
	"github.com/reusee/duet/vars"
)

// MaxRounds bounds the duet loop. Zero means no bound.
type MaxRounds int

var maxRoundsFlag = cmds.Var[int]("-max-rounds")

func (Module) MaxRounds(
	loader configs.Loader,
) MaxRounds {
	return MaxRounds(vars.FirstNonZero(
		*maxRoundsFlag,
		configs.First[int](loader, "max_rounds"),
	))
}
