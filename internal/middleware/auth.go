package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/zgz/product-service/internal/config"
	inErrors "github.com/zgz/product-service/internal/errors"
	inHttp "github.com/zgz/product-service/internal/http"
	"github.com/zgz/product-service/internal/log"
)

const refererMarker = "/swagger-ui"

var docPathPrefixes = []string{
	"/swagger-ui.html",
	"/swagger-ui",
	"/v3/api-docs",
}

// FromSwagger decides whether a request may reach the controllers: the
// Referer header must be present and contain "/swagger-ui". The rule is
// trivially forgeable and is kept that way on purpose; it gates an
// internal demo, not real users.
func FromSwagger(r *http.Request) bool {
	referer := r.Header.Get(inHttp.HeaderReferer)
	return referer != "" && strings.Contains(referer, refererMarker)
}

func isActuatorPath(path string) bool {
	return strings.HasPrefix(path, "/actuator")
}

func isDocPath(path string) bool {
	for _, prefix := range docPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Security is the per-request authentication and authorization chain:
//
//   - /actuator/** is always allowed, no credentials needed
//   - the api documentation paths require basic credentials only
//   - every other path requires basic credentials and the swagger referer
//
// The allow/deny decision is taken before any controller runs.
func Security(cfg config.Security) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := zerolog.Ctx(r.Context()).
				With().
				Str(log.KeyTag, "middleware Security").
				Logger()
			c := logger.WithContext(r.Context())

			if isActuatorPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			username, password, ok := r.BasicAuth()
			if !ok {
				logger.Warn().
					Err(inErrors.ErrMissingCredentials).
					Msg(inErrors.ErrMissingCredentials.Error())
				w.Header().Set(inHttp.HeaderWWWAuthenticate, `Basic realm="product-service"`)
				inHttp.WriteJsonResponse(c, w, http.StatusUnauthorized,
					inHttp.NewApiError(http.StatusUnauthorized, "Unauthorized", r.URL.Path))
				return
			}
			err := bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(password))
			if username != cfg.Username || err != nil {
				logger.Warn().
					Err(inErrors.ErrInvalidCredentials).
					Msg(inErrors.ErrInvalidCredentials.Error())
				w.Header().Set(inHttp.HeaderWWWAuthenticate, `Basic realm="product-service"`)
				inHttp.WriteJsonResponse(c, w, http.StatusUnauthorized,
					inHttp.NewApiError(http.StatusUnauthorized, "Unauthorized", r.URL.Path))
				return
			}

			if isDocPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if !FromSwagger(r) {
				logger.Warn().
					Err(inErrors.ErrRefererForbidden).
					Str("referer", r.Header.Get(inHttp.HeaderReferer)).
					Msg(inErrors.ErrRefererForbidden.Error())
				inHttp.WriteJsonResponse(c, w, http.StatusForbidden,
					inHttp.NewApiError(http.StatusForbidden, "Access Denied", r.URL.Path))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
