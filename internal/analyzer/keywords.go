package analyzer

import (
	"fmt"
	"math"
	"strings"

	"atscore/internal/textsim"
	"atscore/internal/types"
)

// AnalyzeKeywords computes keyword relevance against the job description
// as a weighted blend of five signals. With no job information at all the
// score is forced to 0 (same policy as the impact analyzer). The status
// thresholds differ deliberately from the shared mapping.
func AnalyzeKeywords(doc *types.SegmentedDocument, jobDescription, jobTitle string, cfg Config) types.CategoryResult {
	kc := cfg.Keyword

	if strings.TrimSpace(jobTitle) == "" && strings.TrimSpace(jobDescription) == "" {
		return newResult(CategoryKeyword, 0, kc.Status,
			[]string{"No target job context was supplied; keyword relevance cannot be scored"},
			[]string{"Provide a job title or job description to measure keyword relevance"})
	}

	docLower := strings.ToLower(doc.RawText)
	docFlat := stripNonAlnum(docLower)
	jobText := jobDescription + " " + jobTitle
	jobTokens := distinct(textsim.TokenizeMinLength(jobText, kc.MinTokenLength))

	var issues, recommendations []string
	weighted := 0.0

	// Signal 1: exact keyword match rate
	exactMatched := 0
	for _, tok := range jobTokens {
		if strings.Contains(docLower, tok) {
			exactMatched++
		}
	}
	exactRate := rate(exactMatched, len(jobTokens))
	weighted += exactRate * kc.SignalWeights.ExactMatch
	if len(jobTokens) > 0 {
		issues = append(issues, fmt.Sprintf(
			"%d of %d job keywords matched exactly", exactMatched, len(jobTokens)))
		if exactRate < 0.5 {
			recommendations = append(recommendations, fmt.Sprintf(
				"Work %d more of the job posting's keywords into your resume",
				len(jobTokens)-exactMatched))
		}
	}

	// Signal 2: technical-term match rate, punctuation-insensitive
	techTotal, techMatched := 0, 0
	var missingTech []string
	for _, tok := range jobTokens {
		flat := stripNonAlnum(tok)
		if _, ok := technicalTerms[flat]; !ok {
			continue
		}
		techTotal++
		if strings.Contains(docFlat, flat) {
			techMatched++
		} else {
			missingTech = append(missingTech, tok)
		}
	}
	weighted += rate(techMatched, techTotal) * kc.SignalWeights.TechnicalTerm
	if techTotal > 0 {
		issues = append(issues, fmt.Sprintf(
			"%d of %d technical skills from the job found", techMatched, techTotal))
		if len(missingTech) > 0 {
			recommendations = append(recommendations, fmt.Sprintf(
				"Add the missing technical skills you actually have: %s",
				strings.Join(missingTech, ", ")))
		}
	}

	// Signal 3: action-verb match rate
	verbTotal, verbMatched := 0, 0
	for _, tok := range jobTokens {
		if _, ok := actionVerbs[tok]; !ok {
			continue
		}
		verbTotal++
		if strings.Contains(docLower, tok) {
			verbMatched++
		}
	}
	weighted += rate(verbMatched, verbTotal) * kc.SignalWeights.ActionVerb
	if verbTotal > 0 && verbMatched < verbTotal {
		recommendations = append(recommendations, fmt.Sprintf(
			"Use more of the job's action verbs (%d of %d present)", verbMatched, verbTotal))
	}

	// Signal 4: set similarity between the full texts
	semantic := textsim.JaccardText(doc.RawText, jobDescription)
	weighted += semantic * kc.SignalWeights.Semantic

	// Signal 5: overlap between top TF-IDF terms of both documents
	corpus := []string{doc.RawText, jobDescription}
	jobTop := textsim.TopTerms(corpus, 1, kc.TopTermCount)
	docTop := textsim.TopTerms(corpus, 0, kc.TopTermCount)
	overlapMatched := 0
	for _, jt := range jobTop {
		for _, dt := range docTop {
			if dt == jt || strings.Contains(dt, jt) || strings.Contains(jt, dt) {
				overlapMatched++
				break
			}
		}
	}
	weighted += rate(overlapMatched, len(jobTop)) * kc.SignalWeights.TFIDFOverlap
	if len(jobTop) > 0 {
		issues = append(issues, fmt.Sprintf(
			"%d of %d top job terms appear among the resume's top terms",
			overlapMatched, len(jobTop)))
	}

	score := int(math.Round(weighted * 100))

	// The role itself should be named somewhere in the document
	if first := firstTitleWord(jobTitle); first != "" && !strings.Contains(docLower, first) {
		score -= kc.TitleMissingPenalty
		issues = append(issues, fmt.Sprintf("Job title keyword %q not found in the resume", first))
		recommendations = append(recommendations,
			"Mention the target role title in your summary or experience")
	}

	return newResult(CategoryKeyword, score, kc.Status, issues, recommendations)
}

// rate is matched/total, or 1.0 when the job supplies nothing to match:
// a signal with no requirements is not counted against the candidate.
func rate(matched, total int) float64 {
	if total == 0 {
		return 1.0
	}
	return float64(matched) / float64(total)
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstTitleWord(jobTitle string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(jobTitle)))
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ".,;:()")
}
