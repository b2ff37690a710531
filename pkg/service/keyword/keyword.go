package keyword

import (
	"regexp"
	"sort"
	"unicode/utf8"
)

// DefaultLimit bounds the digest size.
const DefaultLimit = 30

// wordPattern matches runs of Unicode word characters. \w in Go's regexp
// is ASCII-only, so the classes are spelled out.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// stopWords holds common Korean particles and verb endings, plus the
// null artifacts that leak out of tabular exports as literal cells.
var stopWords = map[string]struct{}{
	"하는": {}, "있는": {}, "가장": {}, "통해": {}, "대한": {},
	"것이": {}, "내가": {}, "나의": {}, "함": {}, "음": {},
	"는": {}, "은": {}, "이": {}, "가": {}, "을": {}, "를": {},
	"nan": {}, "None": {},
}

// Entry is one token of the keyword digest.
type Entry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Extract tokenizes the pooled texts and returns the most frequent
// tokens, capped at limit (DefaultLimit when limit <= 0). Tokens shorter
// than two runes and stop words are dropped. Equal counts keep
// first-encounter order.
func Extract(texts []string, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	counts := map[string]int{}
	firstSeen := map[string]int{}

	for _, text := range texts {
		for _, token := range wordPattern.FindAllString(text, -1) {
			if utf8.RuneCountInString(token) < 2 {
				continue
			}
			if _, ok := stopWords[token]; ok {
				continue
			}
			if _, ok := counts[token]; !ok {
				firstSeen[token] = len(firstSeen)
			}
			counts[token]++
		}
	}

	entries := make([]Entry, 0, len(counts))
	for token, count := range counts {
		entries = append(entries, Entry{Token: token, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return firstSeen[entries[i].Token] < firstSeen[entries[j].Token]
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
