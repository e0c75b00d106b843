package duet

import (
	"github.com/reusee/dscope"
	"github.com/reusee/duet/debugs"
	"github.com/reusee/duet/duetconfigs"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/metrics"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs duetconfigs.Module
	Metrics metrics.Module
	Debugs  debugs.Module
}

var actors = [2]string{"0", "1"}
