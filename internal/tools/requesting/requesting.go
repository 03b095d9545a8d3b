// Package requesting wraps outbound HTTP calls to external providers with
// a shared error taxonomy and composable transport middlewares.
package requesting

import (
	"fmt"
	"net/http"
	"os"
)

type ErrorCode string

const (
	UpstreamError   ErrorCode = "upstream_error"
	TimeoutError    ErrorCode = "timeout_error"
	ConnectionError ErrorCode = "connection_error"
)

type RequestError struct {
	Code    ErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

// RequestErrors classifies the outcome of client.Do into the taxonomy:
// timeout, connection failure, or a non-2xx upstream status.
func RequestErrors(response *http.Response, err error) (*http.Response, *RequestError) {
	if err != nil {
		if os.IsTimeout(err) {
			return nil, &RequestError{Code: TimeoutError, Message: err.Error()}
		}

		return nil, &RequestError{Code: ConnectionError, Message: err.Error()}
	}

	if !isValidResponse(response.StatusCode) {
		return nil, &RequestError{
			Code:    UpstreamError,
			Message: fmt.Sprintf("upstream returned status code %d", response.StatusCode),
		}
	}

	return response, nil
}
