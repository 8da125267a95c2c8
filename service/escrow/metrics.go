package escrow

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "escrow_operations_total",
		Help: "Escrow operations by result, ok or the error code",
	}, []string{"operation", "result"})

	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "escrow_operation_duration_seconds",
		Help:    "Duration of escrow operations including the commit",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

const (
	resultOK    = "ok"
	resultError = "error"
)

func operationResult(err error) string {
	if err == nil {
		return resultOK
	}
	if code := ErrorCode(err); code != "" {
		return code
	}
	return resultError
}

func observeOperation(name string, d time.Duration, err error) {
	operationsTotal.WithLabelValues(name, operationResult(err)).Inc()
	operationDuration.WithLabelValues(name).Observe(d.Seconds())
}
