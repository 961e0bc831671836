// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package cli implements the vitrine command-line tool.

Commands:

	vitrine discover --brief brief.yaml   run the pipeline, print the shortlist
	vitrine plan --brief brief.yaml       print the planned catalog queries

Brief files are YAML:

	brief:
	  movements: [surrealism]
	  media_types: [digital]
	  time_period: contemporary
	  geography: [Netherlands]
	  description: Dreamlike digital landscapes
	sections:
	  - title: Dreams
	    focus: dreamlike digital landscapes

Configuration is loaded the same way as the server (defaults, optional
config file, environment). --config and --catalog-url override the file
path and catalog base URL.
*/
package cli
