// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package models

// Brief is the curator's thematic brief. It is owned by the caller and
// never modified by the pipeline.
type Brief struct {
	// Movements are art movement keys, e.g. "surrealism".
	Movements []string `json:"movements" yaml:"movements" validate:"max=10,dive,min=2,max=64"`

	// MediaTypes are media keys, e.g. "photography".
	MediaTypes []string `json:"media_types" yaml:"media_types" validate:"max=10,dive,min=2,max=64"`

	// TimePeriod is a named period key or a literal "YYYY-YYYY" range.
	TimePeriod string `json:"time_period,omitempty" yaml:"time_period" validate:"omitempty,max=64,timeperiod"`

	// Geography lists countries to focus on, as the catalog names them.
	Geography []string `json:"geography" yaml:"geography" validate:"max=20,dive,min=2,max=64"`

	// Description is the free-text theme description.
	Description string `json:"description,omitempty" yaml:"description" validate:"max=4000"`
}

// Section is one exhibition section produced by the theme-refinement step.
type Section struct {
	// ID identifies the section. When empty the planner assigns one from
	// the section position.
	ID string `json:"id,omitempty" yaml:"id" validate:"max=64"`

	Title string `json:"title" yaml:"title" validate:"required,min=1,max=200"`
	Focus string `json:"focus" yaml:"focus" validate:"max=4000"`
}
