package duetvm

import "errors"

var ErrDivideByZero = errors.New("modulo by zero")

// Fault records why a machine halted abnormally. Kept as a plain value so that
// snapshots can carry it.
type Fault uint8

const (
	FaultNone Fault = iota
	FaultDivideByZero
)

func (f Fault) Err() error {
	switch f {
	case FaultDivideByZero:
		return ErrDivideByZero
	}
	return nil
}
