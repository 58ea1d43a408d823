package textsim

import (
	"math"
	"sort"
)

// Term is a token with its TF-IDF weight in a target document
type Term struct {
	Token string
	Score float64
}

// RankTFIDF ranks the terms of corpus[target] by TF-IDF against the whole
// corpus. tf(t) = count(t)/|doc|, idf(t) = ln(N/(1+otherDocsContaining(t)))
// where otherDocsContaining excludes the target document, so a term shared
// by both documents of a 2-document corpus has idf = ln(2/2) = 0.
// Output is sorted descending by score with alphabetical tie-breaking so
// identical inputs always produce identical output.
func RankTFIDF(corpus []string, target int) []Term {
	if target < 0 || target >= len(corpus) {
		return nil
	}

	docs := make([][]string, len(corpus))
	for i, text := range corpus {
		docs[i] = Tokenize(text)
	}

	doc := docs[target]
	if len(doc) == 0 {
		return []Term{}
	}

	counts := make(map[string]int, len(doc))
	for _, tok := range doc {
		counts[tok]++
	}

	// Document frequency over the other documents of the corpus
	docFreq := make(map[string]int, len(counts))
	for token := range counts {
		for i, other := range docs {
			if i == target {
				continue
			}
			for _, tok := range other {
				if tok == token {
					docFreq[token]++
					break
				}
			}
		}
	}

	n := float64(len(corpus))
	terms := make([]Term, 0, len(counts))
	for token, count := range counts {
		tf := float64(count) / float64(len(doc))
		idf := math.Log(n / (1 + float64(docFreq[token])))
		terms = append(terms, Term{Token: token, Score: tf * idf})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Score != terms[j].Score {
			return terms[i].Score > terms[j].Score
		}
		return terms[i].Token < terms[j].Token
	})

	return terms
}

// TopTerms returns up to n highest-ranked tokens of corpus[target]
func TopTerms(corpus []string, target, n int) []string {
	ranked := RankTFIDF(corpus, target)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	tokens := make([]string, len(ranked))
	for i, term := range ranked {
		tokens[i] = term.Token
	}
	return tokens
}
