package textsim

// Jaccard computes the Jaccard coefficient |A ∩ B| / |A ∪ B| over two
// token sets. Defined as 0 when both sets are empty (not NaN).
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}

// JaccardText tokenizes both texts and computes their Jaccard similarity
func JaccardText(a, b string) float64 {
	return Jaccard(TokenSet(a), TokenSet(b))
}
