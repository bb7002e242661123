package actuator

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zgz/product-service/internal/constants"
	inHttp "github.com/zgz/product-service/internal/http"
)

// Register attaches the operational endpoints. These bypass both the
// basic-auth challenge and the referer gate.
func Register(r *mux.Router) {
	actuator := r.PathPrefix("/actuator").Subrouter()

	actuator.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		inHttp.WriteJsonResponse(r.Context(), w, http.StatusOK, map[string]string{
			"status": "UP",
		})
	}).Methods(http.MethodGet)

	actuator.HandleFunc("/info", func(w http.ResponseWriter, r *http.Request) {
		inHttp.WriteJsonResponse(r.Context(), w, http.StatusOK, map[string]interface{}{
			"app": map[string]string{
				"name": constants.AppProductService,
			},
		})
	}).Methods(http.MethodGet)

	actuator.Handle("/prometheus", promhttp.HandlerFor(
		prometheus.DefaultGatherer,
		promhttp.HandlerOpts{},
	)).Methods(http.MethodGet)
}
