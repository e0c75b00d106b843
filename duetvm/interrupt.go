package duetvm

type Interrupt struct {
	Suspend bool
	Recover bool
}

var (
	InterruptSuspend = &Interrupt{
		Suspend: true,
	}
	InterruptRecover = &Interrupt{
		Recover: true,
	}
)
