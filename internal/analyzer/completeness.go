package analyzer

import (
	"fmt"
	"strings"

	"atscore/internal/segment"
	"atscore/internal/types"
)

// DocumentClass is the result of the certificate-vs-resume classifier
type DocumentClass string

const (
	ClassResume      DocumentClass = "resume"
	ClassCertificate DocumentClass = "certificate"
)

// ClassifyDocument decides whether the text is a certificate or a resume
// using a lexical indicator count. The classifier is a pure function of the
// text: re-running it always yields the same classification.
func ClassifyDocument(text string, cfg Config) DocumentClass {
	lower := strings.ToLower(text)

	certCount := 0
	for _, term := range certificateIndicators {
		if strings.Contains(lower, term) {
			certCount++
		}
	}
	resumeCount := 0
	for _, term := range resumeIndicators {
		if strings.Contains(lower, term) {
			resumeCount++
		}
	}

	cc := cfg.Completeness
	if certCount > resumeCount+cc.CertificateMargin && resumeCount <= cc.ResumeIndicatorMax {
		return ClassCertificate
	}
	return ClassResume
}

// AnalyzeCompleteness checks the document for the structural elements a
// resume needs. Certificates are the wrong document type for this analysis
// and take a heavy penalty instead of the per-element checks.
func AnalyzeCompleteness(doc *types.SegmentedDocument, cfg Config) types.CategoryResult {
	cc := cfg.Completeness

	if ClassifyDocument(doc.RawText, cfg) == ClassCertificate {
		return analyzeCertificate(doc, cfg)
	}

	score := cc.BaseScore
	var issues, recommendations []string

	// Contact info requires both email and phone
	if !doc.Metadata.HasEmail || !doc.Metadata.HasPhone {
		score -= cc.MissingContactPenalty
		var missing []string
		if !doc.Metadata.HasEmail {
			missing = append(missing, "email")
		}
		if !doc.Metadata.HasPhone {
			missing = append(missing, "phone")
		}
		issues = append(issues, fmt.Sprintf("Missing contact info: %s", strings.Join(missing, ", ")))
		recommendations = append(recommendations, "Add an email address and phone number near the top")
	}

	// Summary: explicit header, or inferred from the opening lines
	if !doc.HasSection(types.SectionSummary) {
		inferred, ok := inferSummary(doc.RawText, cfg)
		if !ok {
			score -= cc.MissingSummaryPenalty
			issues = append(issues, "No professional summary section found")
			recommendations = append(recommendations,
				"Open with a short professional summary stating your specialty and experience")
		} else if quality := summaryQuality(inferred); quality < cc.SummaryQualityThreshold {
			score -= cc.LowQualitySummaryPenalty
			issues = append(issues, fmt.Sprintf(
				"Opening summary is generic (quality %d of %d)", quality, cc.SummaryQualityThreshold))
			recommendations = append(recommendations,
				"Make the summary specific: quantify experience and name your core skills")
		}
	}

	if !doc.HasSection(types.SectionExperience) {
		score -= cc.MissingExperiencePenalty
		issues = append(issues, "No experience section found")
		recommendations = append(recommendations, "Add a work experience section with roles and dates")
	}
	if !doc.HasSection(types.SectionEducation) {
		score -= cc.MissingEducationPenalty
		issues = append(issues, "No education section found")
		recommendations = append(recommendations, "Add an education section")
	}
	if !doc.HasSection(types.SectionSkills) {
		score -= cc.MissingSkillsPenalty
		issues = append(issues, "No skills section found")
		recommendations = append(recommendations, "List your key skills in a dedicated section")
	}

	return newResult(CategoryCompleteness, score, cfg.Status, issues, recommendations)
}

// analyzeCertificate applies the wrong-document-type penalty. The summary
// requirement is skipped, but organizational/achievement vocabulary is
// still checked.
func analyzeCertificate(doc *types.SegmentedDocument, cfg Config) types.CategoryResult {
	cc := cfg.Completeness
	score := cc.BaseScore - cc.CertificatePenalty
	issues := []string{"Document appears to be a certificate, not a resume"}
	recommendations := []string{"Upload a resume for a meaningful completeness analysis"}

	lower := strings.ToLower(doc.RawText)
	hasOrgVocab := false
	for verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			hasOrgVocab = true
			break
		}
	}
	if !hasOrgVocab && !containsAny(lower, projectVocabulary) {
		score -= cc.MissingOrgVocabPenalty
		issues = append(issues, "No organizational or achievement vocabulary detected")
	}

	return newResult(CategoryCompleteness, score, cfg.Status, issues, recommendations)
}

// inferSummary scans the opening lines for summary-like prose when no
// explicit summary header was detected. Header lines and certificate
// vocabulary never qualify.
func inferSummary(rawText string, cfg Config) (string, bool) {
	lines := strings.Split(rawText, "\n")
	scanned := 0
	for _, rawLine := range lines {
		line := strings.TrimSpace(strings.TrimSuffix(rawLine, "\r"))
		if line == "" {
			continue
		}
		scanned++
		if scanned > cfg.Completeness.FallbackScanLines {
			break
		}

		if segment.IsHeaderLine(line) {
			continue
		}
		lower := strings.ToLower(line)
		if containsAny(lower, certificateIndicators) {
			continue
		}
		if containsAny(lower, summaryVocabulary) {
			return line, true
		}
	}
	return "", false
}

// summaryQuality is a heuristic point system over an inferred summary:
// specific, quantified, multi-sentence content scores high; generic stock
// phrases score negative.
func summaryQuality(summary string) int {
	lower := strings.ToLower(summary)
	points := 0

	if countQuantifiedMatches(summary) > 0 {
		points += 2
	}
	if strings.Count(summary, ".") >= 2 {
		points += 2
	}
	if len(strings.Fields(summary)) >= 20 {
		points += 1
	}

	specific := 0
	for term := range technicalTerms {
		if strings.Contains(lower, term) {
			specific++
		}
	}
	for verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			specific++
		}
	}
	if specific > 0 {
		points += 2
	}

	for _, phrase := range genericStockPhrases {
		if strings.Contains(lower, phrase) {
			points -= 2
		}
	}

	return points
}
