package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SegmentsRemoved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "aostore_segments_removed_total",
		Help: "Total number of segment files removed by unlink scans",
	})

	UnlinkFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "aostore_unlink_failures_total",
		Help: "Total number of segment files an unlink scan failed to remove",
	})

	UnlinkProbes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "aostore_unlink_probes_total",
		Help: "Total number of existence probes issued by unlink scans",
	})

	UnlinkOperations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "aostore_unlink_operations_total",
		Help: "Total number of relation unlink scans performed",
	})

	UnlinkDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "aostore_unlink_duration_seconds",
		Help:    "Histogram of full unlink scan duration per relation",
		Buckets: prometheus.DefBuckets,
	})
)

// PushUnlinkMetric updates Prometheus metrics after one unlink scan.
func PushUnlinkMetric(removed, failed, probes int, elapsedSeconds float64) {
	UnlinkOperations.Inc()
	SegmentsRemoved.Add(float64(removed))
	UnlinkFailures.Add(float64(failed))
	UnlinkProbes.Add(float64(probes))
	UnlinkDuration.Observe(elapsedSeconds)
}
