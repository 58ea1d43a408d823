package textsim

// stopwords is a bilingual (English + Indonesian) stop-word set. Tokens in
// this set carry no signal for keyword matching or similarity scoring.
var stopwords = map[string]struct{}{
	// English
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "has": {}, "have": {}, "this": {},
	"that": {}, "with": {}, "from": {}, "they": {}, "will": {}, "would": {},
	"there": {}, "their": {}, "what": {}, "about": {}, "which": {},
	"when": {}, "your": {}, "them": {}, "than": {}, "then": {}, "were": {},
	"been": {}, "being": {}, "into": {}, "more": {}, "other": {}, "some": {},
	"such": {}, "only": {}, "also": {}, "must": {}, "should": {}, "could": {},
	"each": {}, "both": {}, "between": {}, "over": {}, "under": {},
	"after": {}, "before": {}, "while": {}, "where": {}, "most": {},
	"very": {}, "well": {}, "able": {}, "etc": {},

	// Indonesian
	"yang": {}, "dan": {}, "atau": {}, "dengan": {}, "untuk": {},
	"dari": {}, "pada": {}, "dalam": {}, "adalah": {}, "ini": {},
	"itu": {}, "juga": {}, "akan": {}, "oleh": {}, "sebagai": {},
	"kami": {}, "kita": {}, "anda": {}, "saya": {}, "tidak": {},
	"serta": {}, "agar": {}, "yaitu": {}, "secara": {}, "para": {},
	"dapat": {}, "harus": {}, "sudah": {}, "telah": {}, "lebih": {},
	"tahun": {}, "bagi": {},
}

// IsStopword reports whether the token is in the bilingual stop-word set
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
