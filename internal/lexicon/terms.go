// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package lexicon

import (
	"sort"
	"strings"
)

// movementTerms maps a movement key to the spellings catalogs use for it in
// subject, type and description fields across languages.
var movementTerms = map[string][]string{
	"surrealism":     {"surrealism", "surrealist", "surreal", "surréalisme", "surrealismus", "surrealisme", "surrealismo"},
	"impressionism":  {"impressionism", "impressionist", "impressionnisme", "impressionismus", "impressionisme", "impresionismo"},
	"expressionism":  {"expressionism", "expressionist", "expressionismus", "expressionnisme", "expressionisme", "expresionismo"},
	"cubism":         {"cubism", "cubist", "cubisme", "kubismus", "kubisme", "cubismo"},
	"dada":           {"dada", "dadaism", "dadaist", "dadaïsme", "dadaismus"},
	"futurism":       {"futurism", "futurist", "futurismo", "futurisme", "futurismus"},
	"bauhaus":        {"bauhaus"},
	"art nouveau":    {"art nouveau", "jugendstil", "modernisme", "sezession", "liberty style"},
	"art deco":       {"art deco", "art déco"},
	"romanticism":    {"romanticism", "romantic", "romantik", "romantisme", "romanticismo"},
	"realism":        {"realism", "realist", "réalisme", "realismus", "realisme", "realismo"},
	"symbolism":      {"symbolism", "symbolist", "symbolisme", "symbolismus", "simbolismo"},
	"baroque":        {"baroque", "barock", "barok", "barocco", "barroco"},
	"renaissance":    {"renaissance", "rinascimento", "renacimiento"},
	"minimalism":     {"minimalism", "minimalist", "minimal art", "minimalismus"},
	"pop art":        {"pop art", "pop-art"},
	"conceptual art": {"conceptual art", "conceptual", "konzeptkunst", "art conceptuel"},
	"de stijl":       {"de stijl", "neoplasticism", "neo-plasticism"},
	"abstract":       {"abstract", "abstraction", "abstrakt", "abstrait", "abstractie"},
	"pictorialism":   {"pictorialism", "pictorialist", "piktorialismus"},
}

// mediaTerms maps a media key to the spellings found in catalog type fields.
var mediaTerms = map[string][]string{
	"photography":  {"photograph", "photography", "photo", "foto", "fotografie", "photographie", "fotografia", "daguerreotype", "albumen", "gelatin silver", "negative"},
	"painting":     {"painting", "paint", "schilderij", "gemälde", "peinture", "pintura", "dipinto", "oil on canvas"},
	"drawing":      {"drawing", "tekening", "zeichnung", "dessin", "dibujo", "disegno", "sketch"},
	"print":        {"print", "etching", "engraving", "lithograph", "woodcut", "prent", "druckgraphik", "gravure", "estampe"},
	"sculpture":    {"sculpture", "beeld", "skulptur", "plastik", "escultura", "scultura", "statue"},
	"textile":      {"textile", "textiel", "tapestry", "embroidery", "weaving"},
	"ceramics":     {"ceramic", "ceramics", "keramiek", "keramik", "porcelain", "pottery"},
	"video":        {"video", "film", "moving image"},
	"installation": {"installation"},
	"poster":       {"poster", "affiche", "plakat"},
}

// MovementTerms returns the term variants for a movement. Unknown movements
// resolve to the lower-cased movement itself so that free-form input still
// matches literally. The returned slice is a copy.
func MovementTerms(movement string) []string {
	key := normalizeKey(movement)
	if key == "" {
		return nil
	}
	if terms, ok := movementTerms[key]; ok {
		return append([]string(nil), terms...)
	}
	return []string{key}
}

// MediaTerms returns the term variants for a media type, with the same
// fallback rule as MovementTerms.
func MediaTerms(media string) []string {
	key := normalizeKey(media)
	if key == "" {
		return nil
	}
	if terms, ok := mediaTerms[key]; ok {
		return append([]string(nil), terms...)
	}
	return []string{key}
}

// Movements lists the movement keys known to the lexicon in sorted order.
func Movements() []string {
	keys := make([]string, 0, len(movementTerms))
	for k := range movementTerms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalizeKey lower-cases and replaces underscores and hyphens so that
// "pop_art", "Pop-Art" and "pop art" share a key.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
