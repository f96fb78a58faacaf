package handler

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "ashlog"

// Register exports the sink counters of s labelled with channel and sink level.
// On error nothing stays registered.
func (s *Set) Register(reg prometheus.Registerer, channel string) error {
	if reg == nil {
		return nil
	}

	var collectors []prometheus.Collector
	for _, sk := range s.sinks {
		counters := sk.counters
		labels := prometheus.Labels{"channel": channel, "sink": sk.level.Key()}

		collectors = append(collectors,
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Namespace:   metricsNamespace,
				Name:        "records_total",
				Help:        "Log records written to a sink.",
				ConstLabels: labels,
			}, func() float64 { return float64(counters.records.Load()) }),
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Namespace:   metricsNamespace,
				Name:        "write_errors_total",
				Help:        "Failed writes to a sink.",
				ConstLabels: labels,
			}, func() float64 { return float64(counters.writeErrors.Load()) }),
		)
	}

	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			for _, done := range collectors[:i] {
				reg.Unregister(done)
			}
			return err
		}
	}

	s.registerer = reg
	s.collectors = collectors
	return nil
}

func (s *Set) unregister() {
	if s.registerer == nil {
		return
	}
	for _, c := range s.collectors {
		s.registerer.Unregister(c)
	}
	s.collectors = nil
}
