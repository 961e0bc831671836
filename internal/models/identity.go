// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package models

// Identity is a normalized artist name together with the records attributed
// to it in one pipeline run. The Works slice belongs to the identity; the
// records it points at are shared and read-only.
type Identity struct {
	Name string `json:"name"`

	// Variants are the distinct raw spellings seen, sorted.
	Variants []string  `json:"variants"`
	Works    []*Record `json:"-"`

	// UnknownWorks counts attributed records whose primary creator field
	// held only invalid or placeholder names.
	UnknownWorks int `json:"unknown_works"`
}

// WorkCount returns the number of attributed records.
func (i *Identity) WorkCount() int {
	return len(i.Works)
}

// UnknownRatio returns UnknownWorks / WorkCount, or 0 for an identity with
// no works.
func (i *Identity) UnknownRatio() float64 {
	if len(i.Works) == 0 {
		return 0
	}
	return float64(i.UnknownWorks) / float64(len(i.Works))
}
