package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "panel_api"

var (
	AuthRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Requests turned away by the API gate.",
	}, []string{"reason"})

	SuspendReconciliations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suspend_reconciliations_total",
		Help:      "Suspend reconciliations by outcome.",
	}, []string{"result"})
)
