// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/vitrine/internal/aggregate"
	"github.com/tomtom215/vitrine/internal/catalog"
	"github.com/tomtom215/vitrine/internal/config"
	"github.com/tomtom215/vitrine/internal/executor"
	"github.com/tomtom215/vitrine/internal/identity"
	"github.com/tomtom215/vitrine/internal/lexicon"
	"github.com/tomtom215/vitrine/internal/logging"
	"github.com/tomtom215/vitrine/internal/metrics"
	"github.com/tomtom215/vitrine/internal/models"
	"github.com/tomtom215/vitrine/internal/planner"
	"github.com/tomtom215/vitrine/internal/scoring"
)

// Run statuses reported to metrics.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusEmpty   = "empty"
)

// Filter stage labels.
const (
	StageMinWorks = "min_works"
	StageUnknown  = "unknown_ratio"
	StageTopLimit = "top_limit"
)

// Coordinator runs the extraction pipeline. It is safe for concurrent use;
// each Run builds its own state.
type Coordinator struct {
	executor *executor.Executor
	cfg      config.ExtractionConfig
}

// New creates a Coordinator backed by a catalog searcher.
func New(searcher catalog.Searcher, catalogCfg *config.CatalogConfig, cfg *config.ExtractionConfig) *Coordinator {
	exec := executor.New(searcher)
	exec.PageSize = catalogCfg.PageSize
	exec.RequestTimeout = catalogCfg.RequestTimeout
	exec.MaxConcurrent = cfg.MaxConcurrentQueries
	return NewWithExecutor(exec, *cfg)
}

// NewWithExecutor creates a Coordinator around an existing executor.
func NewWithExecutor(exec *executor.Executor, cfg config.ExtractionConfig) *Coordinator {
	return &Coordinator{executor: exec, cfg: cfg}
}

// Plan returns the queries a run would issue, without executing them.
func (c *Coordinator) Plan(brief models.Brief, sections []models.Section) []models.CatalogQuery {
	return planner.Plan(brief, sections, planner.Options{RowTarget: c.cfg.RowTarget})
}

// scored is an identity carried through filtering.
type scored struct {
	identity  *models.Identity
	profile   models.Profile
	quality   models.QualityScore
	relevance models.RelevanceScore
}

// Run executes one end-to-end extraction. The brief and sections are not
// modified.
func (c *Coordinator) Run(ctx context.Context, brief models.Brief, sections []models.Section) *models.ExtractionResult {
	runID := logging.NewRunID()
	ctx = logging.ContextWithRunID(ctx, runID)
	logger := logging.Ctx(ctx).With().Str("component", "pipeline").Logger()

	result := &models.ExtractionResult{
		RunID:     runID,
		StartedAt: time.Now().UTC(),
	}

	result.Queries = c.Plan(brief, sections)
	logger.Info().
		Int("sections", len(sections)).
		Int("queries", len(result.Queries)).
		Msg("Planned catalog queries")

	exec := c.executor.Execute(ctx, result.Queries)
	result.Stats = exec.Stats
	result.TotalArtworks = exec.Stats.TotalRecords
	result.UniqueArtworks = exec.Stats.UniqueRecords

	grouping := identity.Group(exec.Records)
	result.UnknownRecords = grouping.UnknownRecords
	result.IdentitiesFound = grouping.Len()
	logger.Info().
		Int("records", len(exec.Records)).
		Int("identities", grouping.Len()).
		Int("unknown_records", grouping.UnknownRecords).
		Msg("Grouped records into identities")

	survivors := c.filterIdentities(result, grouping.Identities)
	ranked := c.scoreAndRank(survivors, brief, sections)
	ranked = c.truncate(result, ranked)

	result.Candidates = make([]models.Candidate, len(ranked))
	for i, s := range ranked {
		result.Candidates[i] = candidate(i+1, s)
	}
	result.ArtistsFound = len(result.Candidates)

	c.addWarnings(result)
	result.CompletedAt = time.Now().UTC()

	status := StatusSuccess
	switch {
	case result.ArtistsFound == 0:
		status = StatusEmpty
	case len(result.Warnings) > 0:
		status = StatusPartial
	}
	metrics.RecordPipelineRun(status, result.CompletedAt.Sub(result.StartedAt), result.IdentitiesFound)

	logger.Info().
		Str("status", status).
		Int("identities", result.IdentitiesFound).
		Int("filtered_min_works", result.FilteredByMinWorks).
		Int("filtered_unknown", result.FilteredByUnknown).
		Int("filtered_top_limit", result.FilteredByTopLimit).
		Int("artists", result.ArtistsFound).
		Int("warnings", len(result.Warnings)).
		Dur("duration", result.CompletedAt.Sub(result.StartedAt)).
		Msg("Extraction run complete")

	return result
}

// filterIdentities applies the minimum-works and unknown-ratio stages.
func (c *Coordinator) filterIdentities(result *models.ExtractionResult, ids []*models.Identity) []*models.Identity {
	kept := make([]*models.Identity, 0, len(ids))
	for _, id := range ids {
		if id.WorkCount() < c.cfg.MinWorks {
			result.FilteredByMinWorks++
			continue
		}
		kept = append(kept, id)
	}

	out := kept[:0]
	for _, id := range kept {
		if id.UnknownRatio() > c.cfg.MaxUnknownRatio {
			result.FilteredByUnknown++
			continue
		}
		out = append(out, id)
	}

	metrics.RecordFiltered(StageMinWorks, result.FilteredByMinWorks)
	metrics.RecordFiltered(StageUnknown, result.FilteredByUnknown)
	return out
}

func (c *Coordinator) scoreAndRank(ids []*models.Identity, brief models.Brief, sections []models.Section) []scored {
	theme := scoring.NewTheme(brief, planner.ThemeKeywords(brief, sections))

	var period *lexicon.Period
	if p, ok := lexicon.LookupPeriod(brief.TimePeriod); ok {
		period = &p
	}

	opts := aggregate.Options{
		Movements:        brief.Movements,
		RecencyThreshold: c.cfg.RecencyThreshold,
	}
	out := make([]scored, len(ids))
	for i, id := range ids {
		profile := aggregate.Build(id, opts)
		out[i] = scored{
			identity:  id,
			profile:   profile,
			quality:   scoring.Quality(profile, period),
			relevance: scoring.Relevance(id.Works, theme),
		}
	}

	rank(out)
	return out
}

// truncate applies the top-N stage.
func (c *Coordinator) truncate(result *models.ExtractionResult, ranked []scored) []scored {
	if c.cfg.TopN > 0 && len(ranked) > c.cfg.TopN {
		result.FilteredByTopLimit = len(ranked) - c.cfg.TopN
		ranked = ranked[:c.cfg.TopN]
	}
	metrics.RecordFiltered(StageTopLimit, result.FilteredByTopLimit)
	return ranked
}

func (c *Coordinator) addWarnings(result *models.ExtractionResult) {
	warn := func(code, msg string) {
		result.Warnings = append(result.Warnings, models.Warning{Code: code, Message: msg})
		metrics.RecordWarning(code)
	}

	if result.Stats.LowYield {
		warn(models.WarningLowYield, fmt.Sprintf(
			"only %d of %d catalog queries succeeded (%.1f%%)",
			result.Stats.TotalQueries-result.Stats.FailedQueries,
			result.Stats.TotalQueries,
			result.Stats.SuccessRate))
	}

	switch {
	case result.ArtistsFound == 0:
		warn(models.WarningNoMatches, "no artists matched the brief")
	case result.ArtistsFound < c.cfg.MinArtistsTarget:
		warn(models.WarningLowIdentityYield, fmt.Sprintf(
			"found %d artists, fewer than the target of %d",
			result.ArtistsFound, c.cfg.MinArtistsTarget))
	}
}

func candidate(position int, s scored) models.Candidate {
	ids := make([]string, len(s.identity.Works))
	for i, w := range s.identity.Works {
		ids[i] = w.ID
	}
	return models.Candidate{
		Rank:         position,
		Name:         s.identity.Name,
		Variants:     s.identity.Variants,
		WorkCount:    s.identity.WorkCount(),
		UnknownWorks: s.identity.UnknownWorks,
		WorkIDs:      ids,
		Profile:      s.profile,
		Quality:      s.quality,
		Relevance:    s.relevance,
	}
}
