package duetconfigs

import (
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/duet/configs"
	"github.com/reusee/duet/duetvm"
)

// Seeds are extra register values applied to every machine.
type Seeds []duetvm.Seed

func (Module) Seeds(
	loader configs.Loader,
) Seeds {
	registers := make(map[string]int64)
	for m := range configs.All[map[string]int64](loader, "registers") {
		for name, value := range m {
			if _, ok := registers[name]; ok {
				continue
			}
			registers[name] = value
		}
	}

	var ret Seeds
	for _, name := range slices.Sorted(maps.Keys(registers)) {
		if len(name) != 1 || !duetvm.IsRegisterName(name[0]) {
			panic(fmt.Errorf("bad register name in config: %q", name))
		}
		ret = append(ret, duetvm.Seed{
			Name:  name[0],
			Value: registers[name],
		})
	}
	return ret
}
