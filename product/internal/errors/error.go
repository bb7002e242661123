package errors

import (
	"fmt"

	inErrors "github.com/zgz/product-service/internal/errors"
)

var ErrProductNotFound = fmt.Errorf("product not found: %w", inErrors.ErrNotFound)
