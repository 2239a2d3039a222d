// Package metrics holds the server's Prometheus collectors on a
// dedicated registry so tests never trip over double registration on
// the global default.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "eventbook"

var Registry = prometheus.NewRegistry()
