// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tomtom215/vitrine/internal/models"
	"github.com/tomtom215/vitrine/internal/validation"
)

// BriefFile is the on-disk form of a discovery request.
type BriefFile struct {
	Brief    models.Brief     `yaml:"brief"`
	Sections []models.Section `yaml:"sections"`
}

// LoadBriefFile reads and validates a YAML brief file.
func LoadBriefFile(path string) (*BriefFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read brief file: %w", err)
	}
	bf, err := ParseBrief(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bf, nil
}

// ParseBrief decodes YAML brief content. Unknown keys are rejected so that
// a misspelled "geograpy" does not silently widen the search.
func ParseBrief(data []byte) (*BriefFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var bf BriefFile
	if err := dec.Decode(&bf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("brief file is empty")
		}
		return nil, fmt.Errorf("parse brief: %w", err)
	}

	if verr := validation.ValidateRequest(bf.Brief, bf.Sections); verr != nil {
		return nil, fmt.Errorf("invalid brief: %w", verr)
	}
	return &bf, nil
}
