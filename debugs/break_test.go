package debugs

import (
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/duet/duetvm"
)

func TestCompileBreak(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		compile CompileBreak,
	) {
		m := duetvm.NewMachine([]duetvm.Instruction{
			duetvm.Snd(duetvm.Reg('p')),
			duetvm.Set('a', duetvm.Lit(3)),
			duetvm.Rcv('b'),
		}, duetvm.ModeDual, duetvm.Seed{Name: 'p', Value: 1})

		cond, err := compile(`m.awaiting and m.registers["a"] == 3 and m.outbox == [1]`)
		if err != nil {
			t.Fatal(err)
		}

		for range 3 {
			hit, err := cond(map[string]any{
				"m": MachineValue(m),
			})
			if err != nil {
				t.Fatal(err)
			}
			if hit {
				t.Fatalf("hit too early at ip %d", m.IP)
			}
			m.Step()
		}

		hit, err := cond(map[string]any{
			"m": MachineValue(m),
		})
		if err != nil {
			t.Fatal(err)
		}
		if !hit {
			t.Fatal("expected hit")
		}

		round, err := compile("round >= 2")
		if err != nil {
			t.Fatal(err)
		}
		if hit, _ := round(map[string]any{"round": 1}); hit {
			t.Fatal()
		}
		if hit, _ := round(map[string]any{"round": 2}); !hit {
			t.Fatal()
		}

		never, err := compile("")
		if err != nil {
			t.Fatal(err)
		}
		if hit, _ := never(nil); hit {
			t.Fatal()
		}

		_, err = compile("m.ip >")
		if err == nil || !strings.Contains(err.Error(), "parse break condition") {
			t.Fatalf("got %v", err)
		}

		undefined, err := compile("nope > 1")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := undefined(nil); err == nil {
			t.Fatal("should error")
		}
	})
}

func TestMachineValue(t *testing.T) {
	m := duetvm.NewMachine([]duetvm.Instruction{
		duetvm.Jgz(duetvm.Lit(1), duetvm.Lit(-3)),
	}, duetvm.ModeSingle)
	v := MachineValue(m)
	ins, err := v.Attr("instruction")
	if err != nil {
		t.Fatal(err)
	}
	if ins.String() != `"jgz 1 -3"` {
		t.Fatalf("got %v", ins)
	}
	m.Step()
	v = MachineValue(m)
	halted, _ := v.Attr("halted")
	if halted.Truth() != true {
		t.Fatalf("got %v", halted)
	}
	mode, _ := v.Attr("mode")
	if mode.String() != `"single"` {
		t.Fatalf("got %v", mode)
	}
}
