// Package relevance ranks sentence-like text units by lexical keyword
// overlap. It is the deterministic substitute for generative answers and
// summaries when the AI service is unavailable.
package relevance

import (
	"regexp"
	"sort"
	"strings"
)

const (
	maxKeywords  = 12
	maxSentences = 400
)

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"this": true, "that": true, "with": true, "have": true, "from": true,
	"they": true, "what": true, "your": true, "how": true, "who": true,
	"will": true, "would": true, "there": true, "their": true, "about": true,
	"which": true, "when": true, "does": true, "why": true, "where": true,
	"its": true, "into": true, "than": true, "then": true,
	"them": true, "these": true, "those": true, "some": true, "such": true,
	"very": true, "just": true, "also": true, "more": true, "most": true,
	"should": true, "could": true, "been": true, "being": true, "explain": true,
	"tell": true, "give": true, "please": true,
}

var (
	nonAlnum       = regexp.MustCompile(`[^a-z0-9\s]+`)
	sentenceBounds = regexp.MustCompile(`[.!?]\s+|\n`)
)

// Keywords extracts up to 12 distinct query keywords in first-seen order:
// lowercase, punctuation stripped, stopwords, repeats, and tokens shorter
// than 3 characters dropped.
func Keywords(text string) []string {
	normalized := nonAlnum.ReplaceAllString(strings.ToLower(text), " ")

	var keywords []string
	seen := make(map[string]bool)
	for _, token := range strings.Fields(normalized) {
		if len(token) < 3 || stopwords[token] || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// TopSentences splits text into sentence-like units and returns up to max
// of them ranked by how many distinct query keywords each contains.
// Zero-scoring units are dropped; ties preserve document order.
func TopSentences(text, query string, max int) []string {
	if max <= 0 {
		return nil
	}

	keywords := Keywords(query)
	if len(keywords) == 0 {
		return nil
	}

	units := sentenceBounds.Split(text, -1)
	if len(units) > maxSentences {
		units = units[:maxSentences]
	}

	type scored struct {
		sentence string
		score    int
	}
	var ranked []scored
	for _, unit := range units {
		sentence := strings.TrimSpace(unit)
		if sentence == "" {
			continue
		}
		lower := strings.ToLower(sentence)
		score := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{sentence, score})
		}
	}

	if len(ranked) == 0 {
		return nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	sentences := make([]string, len(ranked))
	for i, r := range ranked {
		sentences[i] = r.sentence
	}
	return sentences
}
