package metrics

import (
	"github.com/stratal/objstore/v1/observability"
)

// observer translates operation events into Prometheus metrics.
type observer struct {
	metrics *Metrics
}

// NewObserver returns an observability.Observer backed by the given Metrics
// instance. Every observed operation increments the operations counter with
// a success or error status, records the duration histogram, and adds the
// payload size to the bytes counter when one was reported.
func NewObserver(m *Metrics) observability.Observer {
	return &observer{metrics: m}
}

func (o *observer) ObserveOperation(opCtx observability.OperationContext) {
	status := "success"
	if opCtx.Error != nil {
		status = "error"
	}

	o.metrics.operationsTotal.WithLabelValues(
		opCtx.Component,
		opCtx.Operation,
		status,
	).Inc()

	o.metrics.operationDuration.WithLabelValues(
		opCtx.Component,
		opCtx.Operation,
	).Observe(opCtx.Duration.Seconds())

	if opCtx.Size > 0 {
		o.metrics.operationBytes.WithLabelValues(
			opCtx.Component,
			opCtx.Operation,
		).Add(float64(opCtx.Size))
	}
}
