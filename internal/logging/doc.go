// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package logging provides the zerolog-based structured logger used across
Vitrine.

The package keeps one global zerolog.Logger configured from the logging
section of the application config. Pipeline stages derive child loggers
with a "component" field, and request handlers attach request and run IDs
to the context so that every line written during one extraction can be
correlated:

	logging.Init(logging.Config{Level: "info", Format: "json"})

	ctx = logging.ContextWithRunID(ctx, runID)
	logging.Ctx(ctx).Info().Int("queries", len(plan)).Msg("Executing plan")

Libraries that expect a *slog.Logger (sutureslog) are bridged through
NewSlogLogger, which writes to the same zerolog backend.

# Configuration

Environment Variables (mapped through internal/config):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

Always terminate event chains with Msg or Send; an unterminated event is
never written.
*/
package logging
