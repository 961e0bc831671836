// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

// Package validation provides struct validation using go-playground/validator v10.
//
// Curator briefs and exhibition sections are validated here before a
// pipeline run starts. Once a brief passes, the pipeline never fails; this
// is the only place user input is rejected.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - A "timeperiod" tag accepting named period keys or "YYYY-YYYY"
//   - Field names reported by their JSON name ("sections[0].title")
//   - Error translation to human-readable messages
//   - APIError conversion matching the API's VALIDATION_ERROR format
//
// # Usage
//
//	if verr := validation.ValidateRequest(brief, sections); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Thread Safety
//
// GetValidator initializes the validator once with sync.Once. The returned
// instance caches struct metadata and is safe for concurrent use.
package validation
