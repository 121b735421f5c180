package rest

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("api credentials required")
	ErrMissingOrderID     = errors.New("order id or order link id required")
)

// APIError is a response whose ret_code is not zero.
type APIError struct {
	Code    int64
	Message string
	ExtCode string
	ExtInfo string
}

func (e *APIError) Error() string {
	if e.ExtCode != "" {
		return fmt.Sprintf("bybit api error %d (%s): %s", e.Code, e.ExtCode, e.Message)
	}
	return fmt.Sprintf("bybit api error %d: %s", e.Code, e.Message)
}

// StatusError is returned when a non 2xx response carries no API envelope.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
