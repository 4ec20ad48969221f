package chatbot

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Normalize lower-cases and trims a raw query. Intent matching and the chat
// log both use the normalized form.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Tokenize splits a normalized query into word runs.
func Tokenize(query string) []string {
	return wordRe.FindAllString(query, -1)
}

// ExpandTerm applies the naive plural/singular rule: a term ending in "s"
// longer than three characters also yields its singular, and a term not
// ending in "s" longer than two characters also yields its plural.
func ExpandTerm(term string) []string {
	out := []string{term}
	n := len([]rune(term))
	if strings.HasSuffix(term, "s") {
		if n > 3 {
			out = append(out, strings.TrimSuffix(term, "s"))
		}
	} else if n > 2 {
		out = append(out, term+"s")
	}
	return out
}

// SearchTerms turns a normalized query into the deduplicated keyword set used
// for catalog search, in first-seen order.
func SearchTerms(query string) []string {
	seen := map[string]struct{}{}
	var terms []string
	for _, token := range Tokenize(query) {
		if IsStopWord(token) {
			continue
		}
		for _, term := range ExpandTerm(token) {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}
	return terms
}
