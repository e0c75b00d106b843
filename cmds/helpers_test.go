package cmds

import (
	"testing"
)

func TestVar(t *testing.T) {
	rounds := Var[int]("TestVar-rounds")
	expr := Var[string]("TestVar-break")
	GlobalExecutor.MustExecute([]string{
		"TestVar-rounds", "42",
		"TestVar-break", "m1.sent > 2",
	})
	if *rounds != 42 {
		t.Fatalf("got %v", *rounds)
	}
	if *expr != "m1.sent > 2" {
		t.Fatalf("got %v", *expr)
	}
	GlobalExecutor.MustExecute([]string{
		"TestVar-rounds.",
	})
	if *rounds != 0 {
		t.Fatalf("got %v", *rounds)
	}
}

func TestSwitch(t *testing.T) {
	trace := Switch("TestSwitch")
	if err := Execute([]string{
		"TestSwitch",
	}); err != nil {
		t.Fatal(err)
	}
	if !*trace {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *trace {
		t.Fatal()
	}
}

func TestTypedVar(t *testing.T) {
	type Register byte
	v := Var[Register]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "112",
	})
	if *v != 'p' {
		t.Fatalf("got %v", *v)
	}
}
