// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogUnavailable is returned when the circuit breaker rejects a call.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrUnexpectedStatus matches every *StatusError.
	ErrUnexpectedStatus = errors.New("unexpected catalog status")

	// ErrUnsuccessful is returned when the catalog answers 200 with success=false.
	ErrUnsuccessful = errors.New("catalog reported failure")

	// ErrRateLimited is returned when HTTP 429 persists past the retry budget.
	ErrRateLimited = errors.New("catalog rate limit exceeded")
)

// StatusError is a non-200 catalog response. It matches ErrUnexpectedStatus
// under errors.Is.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %d: %s", ErrUnexpectedStatus, e.Code, e.Body)
}

// Is reports whether target is ErrUnexpectedStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
