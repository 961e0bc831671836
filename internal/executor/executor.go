// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package executor

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/vitrine/internal/catalog"
	"github.com/tomtom215/vitrine/internal/logging"
	"github.com/tomtom215/vitrine/internal/metrics"
	"github.com/tomtom215/vitrine/internal/models"
)

const (
	DefaultPageSize       = 100
	DefaultMaxConcurrent  = 8
	DefaultRequestTimeout = 30 * time.Second

	// lowYieldRatio is the minimum share of successful queries before the
	// run is flagged.
	lowYieldRatio = 2.0 / 3.0
)

// Executor fans planned queries out to a catalog.
type Executor struct {
	Searcher       catalog.Searcher
	PageSize       int
	MaxConcurrent  int
	RequestTimeout time.Duration
}

// New creates an Executor with default limits.
func New(searcher catalog.Searcher) *Executor {
	return &Executor{
		Searcher:       searcher,
		PageSize:       DefaultPageSize,
		MaxConcurrent:  DefaultMaxConcurrent,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// Execution is the settled result of one fan-out.
type Execution struct {
	// Records are unique by ID, in plan order of the query that first
	// returned them. Records without an ID are all kept.
	Records  []*models.Record
	Outcomes []models.QueryOutcome
	Stats    models.ExecutionStats
}

// querySlot is written by exactly one task.
type querySlot struct {
	records []*models.Record
	outcome models.QueryOutcome
}

// Execute runs every query and waits for all of them. It never fails; a
// cancelled context fails the queries still running.
func (e *Executor) Execute(ctx context.Context, queries []models.CatalogQuery) *Execution {
	start := time.Now()
	logger := logging.Ctx(ctx).With().Str("component", "executor").Logger()

	slots := make([]querySlot, len(queries))

	var g errgroup.Group
	g.SetLimit(e.maxConcurrent())
	for i := range queries {
		q := queries[i]
		g.Go(func() error {
			metrics.TrackQueryInFlight(true)
			defer metrics.TrackQueryInFlight(false)

			slots[i] = e.runQuery(ctx, q)
			if slots[i].outcome.Failed {
				logger.Warn().
					Str("section", q.SectionTitle).
					Strs("facets", q.FacetFilters).
					Str("error", slots[i].outcome.Error).
					Msg("Catalog query failed")
			}
			return nil
		})
	}
	_ = g.Wait()

	exec := settle(slots)
	exec.Stats.DurationMS = time.Since(start).Milliseconds()

	metrics.RecordExecution(exec.Stats.TotalQueries, exec.Stats.FailedQueries,
		exec.Stats.TotalRecords, exec.Stats.UniqueRecords)

	logger.Info().
		Int("queries", exec.Stats.TotalQueries).
		Int("failed", exec.Stats.FailedQueries).
		Int("records", exec.Stats.TotalRecords).
		Int("unique", exec.Stats.UniqueRecords).
		Float64("success_rate", exec.Stats.SuccessRate).
		Int64("duration_ms", exec.Stats.DurationMS).
		Msg("Query execution complete")

	return exec
}

// runQuery pages through one query.
func (e *Executor) runQuery(ctx context.Context, q models.CatalogQuery) querySlot {
	slot := querySlot{outcome: models.QueryOutcome{Query: q}}
	pageSize := e.pageSize()

	target := q.RowTarget
	if target < 1 {
		target = 1
	}
	pages := (target + pageSize - 1) / pageSize

	var records []*models.Record
	for page := 0; page < pages; page++ {
		remaining := target - len(records)
		req := catalog.SearchRequest{
			Query:  q.QueryString,
			Facets: q.FacetFilters,
			Rows:   min(pageSize, remaining),
			Start:  1 + len(records),
		}

		resp, err := e.fetchPage(ctx, req)
		slot.outcome.Pages++
		if err != nil {
			slot.outcome.Failed = true
			slot.outcome.Error = err.Error()
			return slot
		}
		if len(resp.Items) == 0 {
			break
		}

		items := resp.Items
		if len(items) > remaining {
			items = items[:remaining]
		}
		for j := range items {
			rec := items[j].ToRecord()
			rec.SectionID = q.SectionID
			rec.SectionTitle = q.SectionTitle
			records = append(records, rec)
		}

		if len(records) >= target {
			break
		}
		if resp.TotalResults > 0 && req.Start-1+len(resp.Items) >= resp.TotalResults {
			break
		}
	}

	slot.records = records
	slot.outcome.Fetched = len(records)
	return slot
}

func (e *Executor) fetchPage(ctx context.Context, req catalog.SearchRequest) (*catalog.SearchResponse, error) {
	pageCtx, cancel := context.WithTimeout(ctx, e.requestTimeout())
	defer cancel()

	resp, err := e.Searcher.Search(pageCtx, req)
	if err != nil {
		return nil, fmt.Errorf("page at %d: %w", req.Start, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("page at %d: empty response", req.Start)
	}
	return resp, nil
}

// settle deduplicates and summarizes after the barrier.
func settle(slots []querySlot) *Execution {
	exec := &Execution{
		Outcomes: make([]models.QueryOutcome, 0, len(slots)),
		Stats: models.ExecutionStats{
			TotalQueries:  len(slots),
			SectionCounts: make(map[string]int),
		},
	}

	seen := make(map[string]struct{})
	failedSeen := make(map[string]struct{})
	for _, slot := range slots {
		exec.Outcomes = append(exec.Outcomes, slot.outcome)

		if slot.outcome.Failed {
			exec.Stats.FailedQueries++
			title := slot.outcome.Query.SectionTitle
			if _, ok := failedSeen[title]; !ok {
				failedSeen[title] = struct{}{}
				exec.Stats.FailedSections = append(exec.Stats.FailedSections, title)
			}
			continue
		}

		exec.Stats.TotalRecords += len(slot.records)
		for _, rec := range slot.records {
			// A blank ID identifies nothing, so such records are never duplicates.
			if rec.ID != "" {
				if _, dup := seen[rec.ID]; dup {
					continue
				}
				seen[rec.ID] = struct{}{}
			}
			exec.Records = append(exec.Records, rec)
			exec.Stats.SectionCounts[rec.SectionTitle]++
		}
	}

	exec.Stats.UniqueRecords = len(exec.Records)
	if total := exec.Stats.TotalQueries; total > 0 {
		ok := total - exec.Stats.FailedQueries
		exec.Stats.SuccessRate = float64(ok) / float64(total) * 100
		exec.Stats.LowYield = float64(ok) < float64(total)*lowYieldRatio
	}
	return exec
}

func (e *Executor) pageSize() int {
	if e.PageSize < 1 {
		return DefaultPageSize
	}
	return e.PageSize
}

func (e *Executor) maxConcurrent() int {
	if e.MaxConcurrent < 1 {
		return DefaultMaxConcurrent
	}
	return e.MaxConcurrent
}

func (e *Executor) requestTimeout() time.Duration {
	if e.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return e.RequestTimeout
}
