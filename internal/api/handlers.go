// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vitrine/internal/logging"
	"github.com/tomtom215/vitrine/internal/middleware"
	"github.com/tomtom215/vitrine/internal/models"
	"github.com/tomtom215/vitrine/internal/validation"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// Extractor runs the discovery pipeline. *pipeline.Coordinator satisfies it.
type Extractor interface {
	Run(ctx context.Context, brief models.Brief, sections []models.Section) *models.ExtractionResult
	Plan(brief models.Brief, sections []models.Section) []models.CatalogQuery
}

// CatalogStatus exposes upstream health. *catalog.Client satisfies it.
type CatalogStatus interface {
	BreakerState() string
}

// ExtractRequest is the body accepted by the extract and plan endpoints.
type ExtractRequest struct {
	Brief    models.Brief     `json:"brief"`
	Sections []models.Section `json:"sections"`
}

// Handler serves the Vitrine HTTP API.
type Handler struct {
	extractor    Extractor
	catalog      CatalogStatus // optional
	perfMon      *middleware.PerformanceMonitor
	maxBodyBytes int64
	startTime    time.Time
	version      string
}

// HandlerOptions carries the optional collaborators of a Handler.
type HandlerOptions struct {
	Catalog      CatalogStatus
	PerfMon      *middleware.PerformanceMonitor
	MaxBodyBytes int64
	Version      string
}

// NewHandler creates a handler around extractor.
func NewHandler(extractor Extractor, opts HandlerOptions) *Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.PerfMon == nil {
		opts.PerfMon = middleware.NewPerformanceMonitor(1000, 0)
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Handler{
		extractor:    extractor,
		catalog:      opts.Catalog,
		perfMon:      opts.PerfMon,
		maxBodyBytes: opts.MaxBodyBytes,
		startTime:    time.Now(),
		version:      opts.Version,
	}
}

// Extract runs the full pipeline for a brief and its sections.
//
// POST /api/v1/extract
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, ok := h.decodeRequest(rw, w, r)
	if !ok {
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("sections", len(req.Sections)).
		Strs("movements", req.Brief.Movements).
		Strs("geography", req.Brief.Geography).
		Msg("Extraction requested")

	result := h.extractor.Run(r.Context(), req.Brief, req.Sections)
	rw.Success(result)
}

// Plan returns the catalog queries a brief would produce without running
// them.
//
// POST /api/v1/plan
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, ok := h.decodeRequest(rw, w, r)
	if !ok {
		return
	}

	queries := h.extractor.Plan(req.Brief, req.Sections)
	rw.SuccessWithCount(queries, len(queries))
}

// decodeRequest reads, decodes and validates an ExtractRequest. On failure
// it has already written the error response.
func (h *Handler) decodeRequest(rw *ResponseWriter, w http.ResponseWriter, r *http.Request) (*ExtractRequest, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rw.PayloadTooLarge(tooLarge.Limit)
			return nil, false
		}
		rw.BadRequest("Failed to read request body")
		return nil, false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		rw.BadRequest("Request body is required")
		return nil, false
	}

	var req ExtractRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Rejected malformed request body")
		rw.BadRequest("Invalid JSON request body")
		return nil, false
	}

	if verr := validation.ValidateRequest(req.Brief, req.Sections); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return nil, false
	}
	return &req, true
}
