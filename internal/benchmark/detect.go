package benchmark

import "strings"

// industryKeywords are the curated detection lists. Declaration order
// breaks ties: the first-declared industry with the highest match count
// wins.
var industryOrder = []string{"technology", "finance", "healthcare", "marketing"}

var industryKeywords = map[string][]string{
	"technology": {
		"software", "engineer", "developer", "programming", "backend",
		"frontend", "fullstack", "devops", "cloud", "database", "api",
		"javascript", "python", "java", "golang", "kubernetes", "docker",
		"machine learning", "data science", "agile",
	},
	"finance": {
		"finance", "financial", "banking", "investment", "accounting",
		"audit", "portfolio", "trading", "risk management", "compliance",
		"equity", "asset", "hedge", "capital", "treasury", "fintech",
	},
	"healthcare": {
		"healthcare", "medical", "clinical", "patient", "hospital",
		"nursing", "pharmacy", "physician", "diagnosis", "therapy",
		"health record", "hipaa", "biomedical", "laboratory",
	},
	"marketing": {
		"marketing", "brand", "campaign", "seo", "social media",
		"advertising", "content strategy", "engagement", "conversion",
		"analytics", "copywriting", "influencer", "email marketing",
	},
}

// DetectIndustry counts keyword matches per industry over the text and
// returns the winner, or the general profile name when nothing matches
func DetectIndustry(text string) string {
	lower := strings.ToLower(text)

	best := DefaultIndustry
	bestCount := 0
	for _, industry := range industryOrder {
		count := 0
		for _, keyword := range industryKeywords[industry] {
			if strings.Contains(lower, keyword) {
				count++
			}
		}
		if count > bestCount {
			best = industry
			bestCount = count
		}
	}
	return best
}
