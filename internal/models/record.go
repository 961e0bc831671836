// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// StringList is a catalog field that arrives either as a scalar string or as
// an array. It always decodes to a slice so that no downstream code has to
// branch on the JSON shape. Blank entries are dropped; numbers are kept in
// their textual form.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}

	switch data[0] {
	case '"':
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return fmt.Errorf("decode string field: %w", err)
		}
		*s = appendNonBlank(nil, single)
		return nil
	case '[':
		var raw []interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode list field: %w", err)
		}
		out := make([]string, 0, len(raw))
		for _, v := range raw {
			out = appendNonBlank(out, scalarString(v))
		}
		*s = out
		return nil
	default:
		var v interface{}
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode scalar field: %w", err)
		}
		*s = appendNonBlank(nil, scalarString(v))
		return nil
	}
}

// First returns the first entry or "" when empty.
func (s StringList) First() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// Joined returns the entries joined by a single space.
func (s StringList) Joined() string {
	return strings.Join(s, " ")
}

func scalarString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func appendNonBlank(dst []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return dst
	}
	return append(dst, v)
}

// Record is one catalog item after ingestion. Records are created by the
// executor, tagged with the section whose query returned them, and then
// only read. A record listing several creators is shared by pointer among
// the identities it is attributed to.
type Record struct {
	ID          string     `json:"id"`
	Title       StringList `json:"title,omitempty"`
	Description StringList `json:"description,omitempty"`

	// Creators is the primary creator field.
	Creators StringList `json:"creators,omitempty"`

	// CreatorsLangAware is the language-tagged creator field used when the
	// primary field is absent or lists only invalid names.
	CreatorsLangAware map[string][]string `json:"creators_lang_aware,omitempty"`

	Years        StringList `json:"years,omitempty"`
	Types        StringList `json:"types,omitempty"`
	Subjects     StringList `json:"subjects,omitempty"`
	Countries    StringList `json:"countries,omitempty"`
	Institutions StringList `json:"institutions,omitempty"`

	// ManifestURLs point at high-resolution visual resources.
	ManifestURLs StringList `json:"manifest_urls,omitempty"`

	SectionID    string `json:"section_id"`
	SectionTitle string `json:"section_title"`
}

// HasManifest reports whether the record exposes a visual resource.
func (r *Record) HasManifest() bool {
	return len(r.ManifestURLs) > 0
}

// Text returns title and description combined for keyword matching.
func (r *Record) Text() string {
	return strings.TrimSpace(r.Title.Joined() + " " + r.Description.Joined())
}
