package client

import "strings"

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// MatchesLanguage reports whether any of the supported language tags
// satisfies the query. Matching is case-insensitive. A query without a
// subtag ("tr") also matches more specific tags by primary subtag
// ("tr-TR"); a query with a subtag ("en-US") only ever matches exactly.
// A model which publishes no tags never matches.
func MatchesLanguage(tags []string, query string) bool {
	if len(tags) == 0 {
		return false
	}
	query = strings.ToLower(query)
	primary := !strings.ContainsRune(query, '-')
	for _, tag := range tags {
		tag = strings.ToLower(tag)
		if tag == query {
			return true
		}
		if primary && strings.HasPrefix(tag, query+"-") {
			return true
		}
	}
	return false
}
