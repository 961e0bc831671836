// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package planner turns a curator brief and its exhibition sections into
catalog queries.

For each section the focus text is tokenized, stop-words and short tokens
are dropped, and up to two meaningful keywords are combined with up to two
movement names from the brief:

	(surrealism OR dreamlike OR digital) AND TYPE:IMAGE

A brief with a geographic focus yields one query per (section, country)
pair carrying a COUNTRY facet and an equal share of the row target.
Without one, each section gets a single query with the full target.

Planning is a pure function of its inputs: no I/O and no errors. A section
with no usable terms falls back to a generic query.
*/
package planner
