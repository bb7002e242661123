package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/zgz/product-service/internal/constants"
)

var Tracer = otel.Tracer(constants.AppProductService)
