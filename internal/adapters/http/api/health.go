package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DaalbuCZ/Hermes/pkg/metrics"
)

// HandleHealth handles GET /healthz requests by serving the Prometheus
// exposition of the service registry.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
