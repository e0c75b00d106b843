package debugs

import (
	"github.com/reusee/duet/duetvm"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// MachineValue exposes a machine to starlark as a read-only struct.
// Only registers the program refers to (or that were seeded) are listed.
func MachineValue(m *duetvm.Machine) *starlarkstruct.Struct {
	registers := starlark.NewDict(duetvm.NumRegisters)
	for _, name := range m.Seen.Names() {
		registers.SetKey(
			starlark.String(string(rune(name))),
			starlark.MakeInt64(m.Register(name)),
		)
	}
	registers.Freeze()

	var instruction starlark.Value = starlark.None
	if m.IP < uint(len(m.Program)) {
		instruction = starlark.String(m.Program[m.IP].String())
	}

	return starlarkstruct.FromStringDict(starlark.String("machine"), starlark.StringDict{
		"mode":        starlark.String(m.Mode.String()),
		"ip":          starlark.MakeUint(m.IP),
		"instruction": instruction,
		"halted":      starlark.Bool(m.Halted),
		"awaiting":    starlark.Bool(m.Awaiting),
		"sent":        starlark.MakeUint64(m.Sent),
		"receives":    starlark.MakeInt(m.Receives),
		"registers":   registers,
		"inbox":       toStarlarkValue(m.Inbox),
		"outbox":      toStarlarkValue(m.Outbox),
		"played":      toStarlarkValue(m.Played),
		"recovered":   toStarlarkValue(m.Recovered),
	})
}
