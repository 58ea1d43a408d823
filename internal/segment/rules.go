package segment

import (
	"regexp"
	"strings"

	"atscore/internal/types"
)

// headerRule binds a compiled header-recognition pattern to a section kind
type headerRule struct {
	pattern *regexp.Regexp
	kind    types.SectionKind
}

// headerRules is the ordered rule set for the line scanner. Patterns cover
// conventional English and Indonesian section headers and are tested in
// declaration order; the first match wins.
var headerRules = []headerRule{
	{regexp.MustCompile(`(?i)^\s*(contact|contact\s+(info|information|details)|kontak|informasi\s+kontak)\s*:?\s*$`), types.SectionContact},
	{regexp.MustCompile(`(?i)^\s*((professional\s+|career\s+)?summary|profile|objective|about\s+me|ringkasan|profil|tentang\s+saya)\s*:?\s*$`), types.SectionSummary},
	{regexp.MustCompile(`(?i)^\s*((work|professional|relevant)\s+experience|experience|employment(\s+history)?|work\s+history|pengalaman(\s+kerja)?|riwayat\s+pekerjaan)\s*:?\s*$`), types.SectionExperience},
	{regexp.MustCompile(`(?i)^\s*(education(al\s+background)?|academic(\s+background)?|pendidikan|riwayat\s+pendidikan)\s*:?\s*$`), types.SectionEducation},
	{regexp.MustCompile(`(?i)^\s*((technical\s+|key\s+)?skills|competencies|technologies|keahlian|keterampilan|kemampuan)\s*:?\s*$`), types.SectionSkills},
}

// IsHeaderLine reports whether the line matches any section header rule
func IsHeaderLine(line string) bool {
	_, ok := matchHeader(line)
	return ok
}

// matchHeader returns the section kind of the first matching header rule
func matchHeader(line string) (types.SectionKind, bool) {
	for _, rule := range headerRules {
		if rule.pattern.MatchString(line) {
			return rule.kind, true
		}
	}
	return "", false
}

// Metadata detection patterns. Phone matching tolerates several regional
// formats (international prefix, separators, parentheses).
var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[\s.\-]?)?(\(\d{2,4}\)[\s.\-]?)?\d{3,4}[\s.\-]?\d{3,4}([\s.\-]?\d{2,4})?`)
	digitRun        = regexp.MustCompile(`\d+`)
	yearRun         = regexp.MustCompile(`^(19|20)\d{2}$`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/|linkedin`)
)

// hasPhone reports whether the text contains a plausible phone number.
// Employment year ranges ("2015-2019") fit the digit-run shape of
// phonePattern but are not phone numbers, so a candidate whose digit runs
// are all year-like is skipped; anything else must carry a phone-specific
// anchor (international prefix, parenthesized area code) or at least seven
// digits.
func hasPhone(text string) bool {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		candidate = strings.TrimSpace(candidate)
		if strings.HasPrefix(candidate, "+") || strings.ContainsRune(candidate, '(') {
			return true
		}

		digits := 0
		allYears := true
		for _, run := range digitRun.FindAllString(candidate, -1) {
			digits += len(run)
			if !yearRun.MatchString(run) {
				allYears = false
			}
		}
		if allYears {
			continue
		}
		if digits >= 7 {
			return true
		}
	}
	return false
}
