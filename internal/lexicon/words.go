// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package lexicon

import "strings"

// stopWords are dropped while extracting keywords from free-text section
// descriptions. English plus the exhibition boilerplate that shows up in
// almost every brief.
var stopWords = toSet(
	"the", "and", "for", "with", "from", "into", "onto", "that", "this",
	"these", "those", "their", "there", "they", "them", "then", "than",
	"are", "was", "were", "been", "being", "have", "has", "had", "its",
	"our", "your", "his", "her", "who", "whom", "which", "what", "when",
	"where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "only", "own", "same", "very", "can",
	"will", "just", "not", "but", "also", "about", "over", "under", "between",
	"through", "during", "before", "after", "above", "below", "out", "off",
	"again", "further", "once", "here", "while", "upon", "across", "within",
	"without", "toward", "towards", "via", "per", "among", "around",
	"works", "work", "artworks", "artwork", "artists", "artist", "exhibition",
	"section", "pieces", "piece", "collection",
)

// genericVerbs are long enough to pass the meaningful-keyword length check
// but carry no thematic signal for a catalog search.
var genericVerbs = toSet(
	"explore", "explores", "exploring", "explored",
	"examine", "examines", "examining",
	"discover", "discovers", "discovering",
	"feature", "features", "featuring", "featured",
	"show", "shows", "showing", "showcase", "showcases", "showcasing",
	"present", "presents", "presenting",
	"highlight", "highlights", "highlighting",
	"include", "includes", "including",
	"reflect", "reflects", "reflecting",
	"investigate", "investigates", "investigating",
	"focus", "focuses", "focusing",
	"create", "creates", "creating",
	"depict", "depicts", "depicting",
	"reveal", "reveals", "revealing",
	"consider", "considers", "considering",
)

// IsStopWord reports whether the lower-case token is a stop-word.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

// IsGenericVerb reports whether the lower-case token is a generic verb that
// must not be used as a query keyword.
func IsGenericVerb(token string) bool {
	_, ok := genericVerbs[token]
	return ok
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
