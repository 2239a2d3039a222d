package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GraphQLOperationsTotal counts executed operations by outcome. The
// operation label is the root field name (events, users, createEvent,
// createUser); status is "ok" or "error".
var GraphQLOperationsTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graphql_operations_total",
		Help:      "Total number of GraphQL operations executed",
	},
	[]string{"operation", "status"},
)
