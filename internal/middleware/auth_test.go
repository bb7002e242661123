package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/zgz/product-service/internal/config"
	inHttp "github.com/zgz/product-service/internal/http"
)

func securityConfig(t *testing.T, username, password string) config.Security {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed hashing password with error: %s", err)
	}
	return config.Security{Username: username, PasswordHash: string(hash)}
}

func TestSecurity(t *testing.T) {
	cfg := securityConfig(t, "admin", "admin")

	tests := []struct {
		name           string
		path           string
		username       string
		password       string
		withBasicAuth  bool
		referer        string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "given actuator path without credentials should pass",
			path:           "/actuator/health",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "given actuator prometheus path without credentials should pass",
			path:           "/actuator/prometheus",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "given no credentials should reject with 401",
			path:           "/products",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "given wrong password should reject with 401",
			path:           "/products",
			withBasicAuth:  true,
			username:       "admin",
			password:       "wrong",
			referer:        "http://localhost:8080/swagger-ui/index.html",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "given wrong username should reject with 401",
			path:           "/products",
			withBasicAuth:  true,
			username:       "root",
			password:       "admin",
			referer:        "http://localhost:8080/swagger-ui/index.html",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "given credentials without referer should reject with 403",
			path:           "/products",
			withBasicAuth:  true,
			username:       "admin",
			password:       "admin",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "given credentials with non swagger referer should reject with 403",
			path:           "/products",
			withBasicAuth:  true,
			username:       "admin",
			password:       "admin",
			referer:        "http://evil.example.com/admin",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "given credentials with swagger referer should pass",
			path:           "/products",
			withBasicAuth:  true,
			username:       "admin",
			password:       "admin",
			referer:        "http://localhost:8080/swagger-ui/index.html",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "given swagger ui path with credentials and no referer should pass",
			path:           "/swagger-ui",
			withBasicAuth:  true,
			username:       "admin",
			password:       "admin",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "given swagger ui html path with credentials and no referer should pass",
			path:           "/swagger-ui.html",
			withBasicAuth:  true,
			username:       "admin",
			password:       "admin",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "given api docs path with credentials and no referer should pass",
			path:           "/v3/api-docs",
			withBasicAuth:  true,
			username:       "admin",
			password:       "admin",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "given api docs path without credentials should reject with 401",
			path:           "/v3/api-docs",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, test.path, nil)
			if test.withBasicAuth {
				req.SetBasicAuth(test.username, test.password)
			}
			if test.referer != "" {
				req.Header.Set(inHttp.HeaderReferer, test.referer)
			}
			rec := httptest.NewRecorder()

			Security(cfg)(next).ServeHTTP(rec, req)

			assert.Equal(t, test.expectedStatus, rec.Code)
			assert.Equal(t, test.expectNext, nextCalled)

			if !test.expectNext {
				apiError := inHttp.ApiError{}
				err := json.NewDecoder(rec.Body).Decode(&apiError)
				assert.NoError(t, err)
				assert.Equal(t, test.expectedStatus, apiError.Status)
				assert.Equal(t, test.path, apiError.Path)
				assert.NotEmpty(t, apiError.Timestamp)
			}
			if test.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, rec.Header().Get(inHttp.HeaderWWWAuthenticate), "Basic")
			}
		})
	}
}

func TestFromSwagger(t *testing.T) {
	tests := []struct {
		name     string
		referer  string
		expected bool
	}{
		{
			name:     "given referer containing swagger-ui should allow",
			referer:  "http://localhost:8080/swagger-ui/index.html",
			expected: true,
		},
		{
			name:     "given referer with swagger-ui substring anywhere should allow",
			referer:  "https://forged.example.com/swagger-ui",
			expected: true,
		},
		{
			name:     "given empty referer should deny",
			referer:  "",
			expected: false,
		},
		{
			name:     "given referer without swagger-ui should deny",
			referer:  "http://localhost:8080/swagger",
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			if test.referer != "" {
				req.Header.Set(inHttp.HeaderReferer, test.referer)
			}
			assert.Equal(t, test.expected, FromSwagger(req))
		})
	}
}
