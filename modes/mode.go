package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "mode?"
}

// Tracing reports whether every machine step should be logged.
func (m Mode) Tracing() bool {
	return m == ModeDevelopment
}
