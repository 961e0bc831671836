// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package catalog

import (
	"github.com/tomtom215/vitrine/internal/models"
)

// SearchResponse is the decoded search envelope.
type SearchResponse struct {
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
	TotalResults int    `json:"totalResults"`
	ItemsCount   int    `json:"itemsCount"`
	Items        []Item `json:"items"`
}

// Item is one catalog item as it appears on the wire. Field names follow
// the catalog's JSON; the language-aware creator map is kept verbatim.
type Item struct {
	ID               string                       `json:"id"`
	Title            models.StringList            `json:"title"`
	Description      models.StringList            `json:"dcDescription"`
	Creator          models.StringList            `json:"dcCreator"`
	CreatorLangAware map[string]models.StringList `json:"dcCreatorLangAware"`
	Year             models.StringList            `json:"year"`
	Type             models.StringList            `json:"type"`
	DCType           models.StringList            `json:"dcType"`
	Subject          models.StringList            `json:"dcSubject"`
	Country          models.StringList            `json:"country"`
	DataProvider     models.StringList            `json:"dataProvider"`
	IsShownBy        models.StringList            `json:"edmIsShownBy"`
}

// ToRecord converts the wire item to a pipeline record. The section tag is
// left empty; the executor sets it.
func (it *Item) ToRecord() *models.Record {
	types := make(models.StringList, 0, len(it.Type)+len(it.DCType))
	types = append(types, it.Type...)
	types = append(types, it.DCType...)

	var langAware map[string][]string
	if len(it.CreatorLangAware) > 0 {
		langAware = make(map[string][]string, len(it.CreatorLangAware))
		for lang, names := range it.CreatorLangAware {
			if len(names) > 0 {
				langAware[lang] = append([]string(nil), names...)
			}
		}
	}

	return &models.Record{
		ID:                it.ID,
		Title:             it.Title,
		Description:       it.Description,
		Creators:          it.Creator,
		CreatorsLangAware: langAware,
		Years:             it.Year,
		Types:             types,
		Subjects:          it.Subject,
		Countries:         it.Country,
		Institutions:      it.DataProvider,
		ManifestURLs:      it.IsShownBy,
	}
}
