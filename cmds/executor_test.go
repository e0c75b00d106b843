package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var seed int64
	executor.Define("+p", Func(func() {
		seed = 1
	}))
	executor.Define("p", Func(func(i int64) {
		seed = i
	}))

	if err := executor.Execute([]string{
		"+p",
	}); err != nil {
		t.Fatal(err)
	}
	if seed != 1 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"p", "-3",
	}); err != nil {
		t.Fatal(err)
	}
	if seed != -3 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"p", "x",
	})
	if err == nil || !strings.Contains(err.Error(), "p: convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"p",
	})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	errStop := errors.New("stop")
	executor.Define("stop", Func(func() error {
		return errStop
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"ok", "stop"}); !errors.Is(err, errStop) {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(i int, str *string) {
		n = i
		if str != nil {
			s = *str
		}
	}))

	if err := executor.Execute([]string{"foo", "42", "bar"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "bar" {
		t.Fatalf("got %v %v", n, s)
	}

	s = ""
	if err := executor.Execute([]string{"foo", "7"}); err != nil {
		t.Fatal(err)
	}
	if n != 7 || s != "" {
		t.Fatalf("got %v %q", n, s)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func() {}))
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("bar", Func(func() {}).Alias("foo"))
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-max-rounds", Func(func(int) {}).Desc("bound the duet loop"))
	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	out := buf.String()
	if !strings.Contains(out, "-max-rounds") || !strings.Contains(out, "bound the duet loop") {
		t.Fatalf("got %s", out)
	}
	if strings.Contains(out, "--help") {
		t.Fatalf("aliases should not be listed: %s", out)
	}
}
