package app

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "coinnet"

// GenesisMetrics tracks genesis construction.
type GenesisMetrics struct {
	BuildsTotal        *prometheus.CounterVec
	EndowedAccounts    prometheus.Gauge
	NominationTargets  prometheus.Histogram
	ChainSpecLoadFails *prometheus.CounterVec
}

// NewGenesisMetrics creates the genesis metrics and registers them on reg.
// A nil registerer leaves the collectors unregistered.
func NewGenesisMetrics(reg prometheus.Registerer) *GenesisMetrics {
	m := &GenesisMetrics{
		BuildsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "genesis",
			Name:      "builds_total",
			Help:      "Number of genesis configs assembled, by chain type.",
		}, []string{"chain_type"}),
		EndowedAccounts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "genesis",
			Name:      "endowed_accounts",
			Help:      "Number of accounts endowed by the last assembled genesis.",
		}),
		NominationTargets: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "genesis",
			Name:      "nomination_targets",
			Help:      "Number of validators backed per genesis nominator.",
			Buckets:   prometheus.LinearBuckets(0, 2, 8),
		}),
		ChainSpecLoadFails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "chain_spec",
			Name:      "load_failures_total",
			Help:      "Number of chain specs that failed to decode, by source.",
		}, []string{"source"}),
	}

	if reg != nil {
		reg.MustRegister(m.BuildsTotal, m.EndowedAccounts, m.NominationTargets, m.ChainSpecLoadFails)
	}
	return m
}

func (m *GenesisMetrics) observeBuild(chainType ChainType) {
	if m == nil {
		return
	}
	m.BuildsTotal.WithLabelValues(string(chainType)).Inc()
}

func (m *GenesisMetrics) observeLoadFailure(source string) {
	if m == nil {
		return
	}
	m.ChainSpecLoadFails.WithLabelValues(source).Inc()
}
