package actuator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/zgz/product-service/internal/actuator"
)

func TestActuatorRoutes(t *testing.T) {
	router := mux.NewRouter()
	actuator.Register(router)

	t.Run("should report health up", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/actuator/health", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := map[string]string{}
		err := json.NewDecoder(rec.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "UP", body["status"])
	})

	t.Run("should report app info", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/actuator/info", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "product-service")
	})

	t.Run("should expose prometheus metrics", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/actuator/prometheus", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
