package duetconfigs

import (
	"github.com/reusee/duet/cmds"
	"github.com/reusee/duet/configs"
	"github.com/reusee/duet/modes"
)

type Trace bool

var traceFlag = cmds.Switch("-trace")

func (Module) Trace(
	loader configs.Loader,
	mode modes.Mode,
) Trace {
	return Trace(*traceFlag ||
		configs.First[bool](loader, "trace") ||
		mode.Tracing())
}
