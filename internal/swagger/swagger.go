package swagger

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zgz/product-service/docs"
)

const (
	// swaggerURL is the URL path where the Swagger UI is served
	swaggerURL = "/swagger-ui"

	// swaggerSpecURL is the URL path where the OpenAPI specification is served
	swaggerSpecURL = "/v3/api-docs"
)

// Register registers the swagger-ui page and the OpenAPI document on the
// given router. Both paths sit behind basic authentication only; the
// referer gate does not apply to them.
func Register(r *mux.Router) {
	template := getTemplate(swaggerSpecURL)
	templateBytes := []byte(template)

	serveUI := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(templateBytes)
	}
	r.HandleFunc(swaggerURL, serveUI).Methods(http.MethodGet)
	r.HandleFunc(swaggerURL+".html", serveUI).Methods(http.MethodGet)

	specBytes := docs.GetSpecBytes()
	r.HandleFunc(swaggerSpecURL, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(specBytes)
	}).Methods(http.MethodGet)
}

// getTemplate returns the HTML template for Swagger UI
func getTemplate(specPath string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <meta name="description" content="SwaggerUI" />
  <title>SwaggerUI</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.29.3/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.29.3/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '%s',
      dom_id: '#swagger-ui',
      deepLinking: true,
    });
  };
</script>
</body>
</html>
`, specPath)
}
