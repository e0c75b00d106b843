package duetconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/duet/logs"
)

// Module expects a modes module (modes.ForProduction or modes.ForTest) in the same scope.
type Module struct {
	dscope.Module
	Logs logs.Module
}
