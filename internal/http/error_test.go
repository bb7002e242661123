package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	inErrors "github.com/zgz/product-service/internal/errors"
)

func TestWriteErrorResponse(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedError   string
		expectedMessage string
	}{
		{
			name:            "given not found error should render 404 envelope",
			err:             fmt.Errorf("product with id=999 %w", inErrors.ErrNotFound),
			expectedStatus:  http.StatusNotFound,
			expectedError:   "Not Found",
			expectedMessage: "The requested resource was not found",
		},
		{
			name:            "given unknown error should render generic 500 envelope",
			err:             errors.New("connection reset by peer"),
			expectedStatus:  http.StatusInternalServerError,
			expectedError:   "Internal Server Error",
			expectedMessage: "An unexpected error occurred",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/products/999", nil)
			rec := httptest.NewRecorder()

			WriteErrorResponse(context.Background(), rec, req, test.err)

			assert.Equal(t, test.expectedStatus, rec.Code)
			assert.Equal(t, HeaderValueJson, rec.Header().Get(HeaderContentType))

			apiError := ApiError{}
			err := json.NewDecoder(rec.Body).Decode(&apiError)
			assert.NoError(t, err)
			assert.Equal(t, test.expectedStatus, apiError.Status)
			assert.Equal(t, test.expectedError, apiError.Error)
			assert.Equal(t, test.expectedMessage, apiError.Message)
			assert.Equal(t, "/products/999", apiError.Path)

			// cause is never exposed to the caller
			assert.NotContains(t, apiError.Message, test.err.Error())

			_, err = time.Parse(TimestampFormat, apiError.Timestamp)
			assert.NoError(t, err)
		})
	}
}

func TestWriteValidationError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	rec := httptest.NewRecorder()

	WriteValidationError(context.Background(), rec, req, errors.New("Name is required"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	apiError := ApiError{}
	err := json.NewDecoder(rec.Body).Decode(&apiError)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, apiError.Status)
	assert.Equal(t, "Bad Request", apiError.Error)
	assert.Equal(t, "Name is required", apiError.Message)
	assert.Equal(t, "/products", apiError.Path)
}
