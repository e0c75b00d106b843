package cmds

// Var defines a command setting a value, and name+"." resetting it.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines name to turn on and !name to turn off.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}))

	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}
