// Package metrics registers the indexer's Prometheus collectors. Metrics are
// global and low-cardinality; wallet addresses are never used as labels.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CyclesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sonar_scan_cycles_total",
		Help: "Completed scan cycles by outcome",
	}, []string{"status"})

	TransactionsCounted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sonar_transactions_counted_total",
		Help: "Qualifying transactions folded into wallet counters",
	})

	WalletsUpdated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sonar_wallets_updated_total",
		Help: "Wallet counter rows touched by cycle commits",
	})

	CycleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sonar_scan_cycle_duration_seconds",
		Help:    "Wall-clock duration of one scan cycle",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
	})
)

func init() {
	prometheus.MustRegister(CyclesTotal, TransactionsCounted, WalletsUpdated, CycleDuration)
}
