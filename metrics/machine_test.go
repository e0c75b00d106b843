package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/reusee/dscope"
	"github.com/reusee/duet/duetvm"
)

func TestMachine(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		m *Machine,
		registry Registry,
	) {
		vm := duetvm.NewMachine([]duetvm.Instruction{
			duetvm.Snd(duetvm.Lit(1)),
			duetvm.Snd(duetvm.Lit(2)),
			duetvm.Rcv('a'),
		}, duetvm.ModeDual)
		for range 4 {
			m.ObserveStep("0", vm.Step())
		}

		if n := testutil.ToFloat64(m.Steps.WithLabelValues("0")); n != 2 {
			t.Fatalf("got %v", n)
		}
		if n := testutil.ToFloat64(m.Sends.WithLabelValues("0")); n != 2 {
			t.Fatalf("got %v", n)
		}
		if n := testutil.ToFloat64(m.Suspensions.WithLabelValues("0")); n != 2 {
			t.Fatalf("got %v", n)
		}

		m.ObserveHalt("1")
		if n := testutil.ToFloat64(m.Halts.WithLabelValues("1")); n != 1 {
			t.Fatalf("got %v", n)
		}

		m.ObserveStep("single", duetvm.StepResult{
			Status:       duetvm.StatusExecuted,
			HasRecovered: true,
		})
		if n := testutil.ToFloat64(m.Recovers); n != 1 {
			t.Fatalf("got %v", n)
		}

		n, err := testutil.GatherAndCount(registry, "duet_steps_total")
		if err != nil {
			t.Fatal(err)
		}
		if n != 2 {
			t.Fatalf("got %v series", n)
		}
	})
}
