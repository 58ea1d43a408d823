// Package segment splits raw resume text into named semantic sections and
// derives structural metadata. Segmentation never fails: a document with no
// recognizable structure yields an empty section map, which downstream
// analyzers treat as a valid, low-scoring input.
package segment

import (
	"strings"

	"atscore/internal/types"
)

// Segment runs the line scanner over rawText and returns the section-tagged
// document. The scanner keeps a single "current section" state; lines before
// the first recognized header (name line, address block) belong to no
// section and are discarded.
func Segment(rawText string) *types.SegmentedDocument {
	sections := make(map[types.SectionKind]string)

	var current types.SectionKind
	active := false
	var acc []string

	flush := func() {
		if !active || len(acc) == 0 {
			acc = acc[:0]
			return
		}
		text := strings.Join(acc, " ")
		if existing, ok := sections[current]; ok && existing != "" {
			text = existing + " " + text
		}
		sections[current] = text
		acc = acc[:0]
	}

	for _, rawLine := range strings.Split(rawText, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(rawLine, "\r"))
		if line == "" {
			continue
		}

		if kind, ok := matchHeader(line); ok {
			flush()
			current = kind
			active = true
			continue
		}

		if active {
			acc = append(acc, line)
		}
	}
	flush()

	// Headers with no body are treated as not detected
	for kind, text := range sections {
		if strings.TrimSpace(text) == "" {
			delete(sections, kind)
		}
	}

	return &types.SegmentedDocument{
		RawText:  rawText,
		Sections: sections,
		Metadata: deriveMetadata(rawText, sections),
	}
}

func deriveMetadata(rawText string, sections map[types.SectionKind]string) types.DocumentMetadata {
	return types.DocumentMetadata{
		WordCount:    len(strings.Fields(rawText)),
		HasEmail:     emailPattern.MatchString(rawText),
		HasPhone:     hasPhone(rawText),
		HasLinkedIn:  linkedinPattern.MatchString(rawText),
		SectionCount: len(sections),
	}
}
