package types

// SectionKind identifies a semantic section of a resume
type SectionKind string

const (
	SectionContact    SectionKind = "contact"
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
)

// DocumentMetadata holds structural metadata derived from the raw text
type DocumentMetadata struct {
	WordCount    int  `json:"wordCount"`
	HasEmail     bool `json:"hasEmail"`
	HasPhone     bool `json:"hasPhone"`
	HasLinkedIn  bool `json:"hasLinkedIn"`
	SectionCount int  `json:"sectionCount"`
}

// SegmentedDocument is the section-tagged form of a raw resume text.
// Absent sections mean "not detected"; a document with zero sections is
// still a valid, scoreable input.
type SegmentedDocument struct {
	RawText  string                 `json:"rawText"`
	Sections map[SectionKind]string `json:"sections"`
	Metadata DocumentMetadata       `json:"metadata"`
}

// Section returns the text of the given section and whether it was detected
func (d *SegmentedDocument) Section(kind SectionKind) (string, bool) {
	text, ok := d.Sections[kind]
	return text, ok
}

// HasSection reports whether the given section was detected
func (d *SegmentedDocument) HasSection(kind SectionKind) bool {
	_, ok := d.Sections[kind]
	return ok
}

// CategoryStatus is the qualitative tier derived from a category score
type CategoryStatus string

const (
	StatusExcellent        CategoryStatus = "excellent"
	StatusGood             CategoryStatus = "good"
	StatusNeedsImprovement CategoryStatus = "needs-improvement"
	StatusPoor             CategoryStatus = "poor"
)

// CategoryResult is the uniform output of a single category analyzer
type CategoryResult struct {
	Category        string         `json:"category"`
	Score           int            `json:"score"`
	Status          CategoryStatus `json:"status"`
	Issues          []string       `json:"issues"`
	Recommendations []string       `json:"recommendations"`
}

// IndustryBenchmark is a named reference profile used to contextualize
// raw scores. Weights must sum to 1.0; this is validated fatally at
// construction time, never per request.
type IndustryBenchmark struct {
	Name               string             `json:"name"`
	AverageScore       float64            `json:"averageScore"`
	TopPercentileScore float64            `json:"topPercentileScore"`
	Weights            map[string]float64 `json:"weights"`
	KeyFocusAreas      []string           `json:"keyFocusAreas"`
}

// CategoryBreakdown is one row of the composite score breakdown
type CategoryBreakdown struct {
	Category      string  `json:"category"`
	RawScore      int     `json:"rawScore"`
	WeightedScore float64 `json:"weightedScore"`
	Weight        float64 `json:"weight"`
	Percentile    float64 `json:"percentile"`
	Grade         string  `json:"grade"`
}

// CompetitiveAnalysis positions a score against the benchmark anchors
type CompetitiveAnalysis struct {
	VsAverageCandidate float64 `json:"vsAverageCandidate"`
	VsTopPercentile    float64 `json:"vsTopPercentile"`
	MarketPosition     string  `json:"marketPosition"`
}

// CompositeScore is the industry-benchmarked aggregate of the four
// category scores
type CompositeScore struct {
	OverallScore         int                 `json:"overallScore"`
	WeightedScore        int                 `json:"weightedScore"`
	IndustryPercentile   float64             `json:"industryPercentile"`
	OverallGrade         string              `json:"overallGrade"`
	Breakdown            []CategoryBreakdown `json:"breakdown"`
	CompetitiveAnalysis  CompetitiveAnalysis `json:"competitiveAnalysis"`
	ImprovementPotential float64             `json:"improvementPotential"`
}

// AnalyzeInput is the input contract consumed by the engine. Industry,
// when set, pins the benchmark profile instead of detecting it from the
// resume text.
type AnalyzeInput struct {
	ResumeText     string `json:"resumeText"`
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"`
	Industry       string `json:"industry,omitempty"`
}

// Report is the full output of a single analysis call. All fields are
// created fresh per call and hold no cross-call state.
type Report struct {
	Metadata     DocumentMetadata `json:"metadata"`
	Categories   []CategoryResult `json:"categories"`
	OverallScore int              `json:"overallScore"`
	Industry     string           `json:"industry,omitempty"`
	Composite    *CompositeScore  `json:"composite,omitempty"`
}

// KeywordInsight is the response shape of the optional external keyword
// collaborator. The engine validates it before trusting it.
type KeywordInsight struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// CompletenessInsight is the response shape of the optional external
// completeness collaborator
type CompletenessInsight struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	SpellingScore   int      `json:"spellingScore"`
	GrammarScore    int      `json:"grammarScore"`
	MissingElements []string `json:"missingElements"`
	HighUrgency     bool     `json:"highUrgency,omitempty"`
}
