package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/reusee/duet/duetvm"
)

const namespace = "duet"

// Machine counts register machine activity, labelled by actor.
type Machine struct {
	Steps       *prometheus.CounterVec
	Sends       *prometheus.CounterVec
	Suspensions *prometheus.CounterVec
	Halts       *prometheus.CounterVec
	Recovers    prometheus.Counter
	Rounds      prometheus.Counter
}

func (Module) Machine(
	registry Registry,
) *Machine {
	m := &Machine{
		Steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Instructions executed.",
		}, []string{"actor"}),
		Sends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sends_total",
			Help:      "Values sent by snd.",
		}, []string{"actor"}),
		Suspensions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suspensions_total",
			Help:      "Steps blocked on rcv with an empty inbox.",
		}, []string{"actor"}),
		Halts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "halts_total",
			Help:      "Machines halted.",
		}, []string{"actor"}),
		Recovers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recovers_total",
			Help:      "Values recovered in single actor mode.",
		}),
		Rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_total",
			Help:      "Coordination rounds between two machines.",
		}),
	}
	registry.MustRegister(
		m.Steps,
		m.Sends,
		m.Suspensions,
		m.Halts,
		m.Recovers,
		m.Rounds,
	)
	return m
}

func (m *Machine) ObserveStep(actor string, res duetvm.StepResult) {
	switch res.Status {
	case duetvm.StatusExecuted:
		m.Steps.WithLabelValues(actor).Inc()
	case duetvm.StatusBlocked:
		m.Suspensions.WithLabelValues(actor).Inc()
	}
	if res.HasSent {
		m.Sends.WithLabelValues(actor).Inc()
	}
	if res.HasRecovered {
		m.Recovers.Inc()
	}
}

func (m *Machine) ObserveHalt(actor string) {
	m.Halts.WithLabelValues(actor).Inc()
}
