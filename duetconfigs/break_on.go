package duetconfigs

import (
	"github.com/reusee/duet/cmds"
	"github.com/reusee/duet/configs"
	"github.com/reusee/duet/vars"
)

// BreakOn is a starlark expression over m0, m1 and round, checked by the duet loop.
type BreakOn string

var breakOnFlag = cmds.Var[string]("-break")

func (Module) BreakOn(
	loader configs.Loader,
) BreakOn {
	return BreakOn(vars.FirstNonZero(
		*breakOnFlag,
		configs.First[string](loader, "break_on"),
	))
}

// BreakOnRecover is a starlark expression over m and step, checked by the single actor driver.
type BreakOnRecover string

var breakOnRecoverFlag = cmds.Var[string]("-break-recover")

func (Module) BreakOnRecover(
	loader configs.Loader,
) BreakOnRecover {
	return BreakOnRecover(vars.FirstNonZero(
		*breakOnRecoverFlag,
		configs.First[string](loader, "break_on_recover"),
	))
}
