package segment

import (
	"testing"

	"atscore/internal/types"
)

const sampleResume = `John Doe
john.doe@example.com | +62 812 3456 7890 | linkedin.com/in/johndoe

Summary
Experienced software engineer specializing in distributed systems.

Experience
Built payment services processing 2M transactions daily at Acme Corp.

Education
BSc Computer Science, University of Indonesia

Skills
Go, PostgreSQL, Kubernetes, Docker`

func TestSegmentSections(t *testing.T) {
	doc := Segment(sampleResume)

	expected := []types.SectionKind{
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
	}
	for _, kind := range expected {
		if _, ok := doc.Sections[kind]; !ok {
			t.Errorf("expected section %q to be detected", kind)
		}
	}
	if len(doc.Sections) != len(expected) {
		t.Errorf("expected %d sections, got %d: %v", len(expected), len(doc.Sections), doc.Sections)
	}

	if got := doc.Sections[types.SectionSkills]; got != "Go, PostgreSQL, Kubernetes, Docker" {
		t.Errorf("unexpected skills section content: %q", got)
	}
}

func TestSegmentLinesBeforeFirstHeaderDiscarded(t *testing.T) {
	doc := Segment(sampleResume)

	for kind, text := range doc.Sections {
		if text == "John Doe" {
			t.Errorf("preamble line leaked into section %q", kind)
		}
	}
}

func TestSegmentMergesDuplicateHeaders(t *testing.T) {
	text := `Experience
Worked at Alpha.

Experience
Worked at Beta.`

	doc := Segment(text)
	got := doc.Sections[types.SectionExperience]
	want := "Worked at Alpha. Worked at Beta."
	if got != want {
		t.Errorf("merged section = %q, want %q", got, want)
	}
}

func TestSegmentHeaderWithoutBodyDropped(t *testing.T) {
	text := `Experience
Worked at Alpha.

Skills`

	doc := Segment(text)
	if _, ok := doc.Sections[types.SectionSkills]; ok {
		t.Error("empty skills section should not be reported")
	}
	if _, ok := doc.Sections[types.SectionExperience]; !ok {
		t.Error("experience section should survive")
	}
}

func TestSegmentIndonesianHeaders(t *testing.T) {
	text := `Ringkasan
Insinyur perangkat lunak berpengalaman.

Pengalaman Kerja
Membangun sistem pembayaran.

Pendidikan
Universitas Indonesia

Keahlian
Go, Kubernetes`

	doc := Segment(text)
	for _, kind := range []types.SectionKind{
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
	} {
		if _, ok := doc.Sections[kind]; !ok {
			t.Errorf("expected Indonesian header for %q to be detected", kind)
		}
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	doc := Segment("")
	if len(doc.Sections) != 0 {
		t.Errorf("expected no sections, got %v", doc.Sections)
	}
	if doc.Metadata.WordCount != 0 {
		t.Errorf("expected zero word count, got %d", doc.Metadata.WordCount)
	}
	if doc.Metadata.HasEmail || doc.Metadata.HasPhone || doc.Metadata.HasLinkedIn {
		t.Error("empty document should have no contact metadata")
	}
}

func TestSegmentMetadata(t *testing.T) {
	doc := Segment(sampleResume)
	md := doc.Metadata

	if !md.HasEmail {
		t.Error("expected email to be detected")
	}
	if !md.HasPhone {
		t.Error("expected phone to be detected")
	}
	if !md.HasLinkedIn {
		t.Error("expected LinkedIn to be detected")
	}
	if md.SectionCount != 4 {
		t.Errorf("SectionCount = %d, want 4", md.SectionCount)
	}
	if md.WordCount == 0 {
		t.Error("expected non-zero word count")
	}
}

func TestSegmentNoContactMetadata(t *testing.T) {
	doc := Segment(`Summary
A quiet profile with no reachable contact details at all.`)

	if doc.Metadata.HasEmail {
		t.Error("no email should be detected")
	}
	if doc.Metadata.HasPhone {
		t.Error("no phone should be detected")
	}
	if doc.Metadata.HasLinkedIn {
		t.Error("no LinkedIn should be detected")
	}
}

func TestSegmentYearRangesAreNotPhoneNumbers(t *testing.T) {
	doc := Segment(`Jane Roe

Experience
Senior Analyst, Acme Corp, 2015-2019
Lead Analyst, Globex, 2019-2023

Education
BSc Economics, 2011-2015`)

	if doc.Metadata.HasPhone {
		t.Error("employment year ranges should not be detected as a phone number")
	}
}

func TestSegmentPhoneFormats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"international prefix", "Call +62 812 3456 7890 anytime", true},
		{"parenthesized area code", "Reach me at (021) 555-0199", true},
		{"plain separated runs", "Phone: 0812-3456-7890", true},
		{"single year range", "Worked there 2015-2019", false},
		{"adjacent year ranges", "2015-2019 2019-2023", false},
		{"no digits at all", "No contact details here", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Segment(tt.text).Metadata.HasPhone; got != tt.want {
				t.Errorf("HasPhone = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsHeaderLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Experience", true},
		{"Work Experience", true},
		{"EXPERIENCE:", true},
		{"Professional Summary", true},
		{"Technical Skills", true},
		{"Pendidikan", true},
		{"Riwayat Pekerjaan", true},
		{"Informasi Kontak", true},
		{"Built three services in two years", false},
		{"Experience with Kubernetes in production", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsHeaderLine(tt.line); got != tt.want {
			t.Errorf("IsHeaderLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
