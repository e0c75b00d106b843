package metrics

import "github.com/prometheus/client_golang/prometheus"

type Registry = *prometheus.Registry

func (Module) Registry() Registry {
	return prometheus.NewRegistry()
}
