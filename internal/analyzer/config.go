package analyzer

import (
	"fmt"
	"math"
)

// Config lifts every penalty constant, band boundary, and signal weight of
// the four analyzers into one explicit structure so the tuning can change
// without touching control flow. Zero values are never valid; always start
// from DefaultConfig.
type Config struct {
	Status       StatusThresholds   `mapstructure:"status"`
	Impact       ImpactConfig       `mapstructure:"impact"`
	Length       LengthConfig       `mapstructure:"length"`
	Completeness CompletenessConfig `mapstructure:"completeness"`
	Keyword      KeywordConfig      `mapstructure:"keyword"`
}

// StatusThresholds maps a 0-100 score to a qualitative status tier.
// Scores at or above Excellent are "excellent", at or above Good are
// "good", at or above NeedsImprovement are "needs-improvement", anything
// lower is "poor".
type StatusThresholds struct {
	Excellent        int `mapstructure:"excellent"`
	Good             int `mapstructure:"good"`
	NeedsImprovement int `mapstructure:"needsImprovement"`
}

// ImpactConfig tunes the quantitative-impact analyzer
type ImpactConfig struct {
	BaseScore             int     `mapstructure:"baseScore"`
	MinQuantified         int     `mapstructure:"minQuantified"`
	FewQuantifiedPenalty  int     `mapstructure:"fewQuantifiedPenalty"`
	MinRelevance          float64 `mapstructure:"minRelevance"`
	LowRelevancePenalty   int     `mapstructure:"lowRelevancePenalty"`
	MissingProjectPenalty int     `mapstructure:"missingProjectPenalty"`
}

// LengthConfig tunes the length analyzer. The optimal band scores 100;
// shortfall is penalized harder than verbosity.
type LengthConfig struct {
	OptimalMin          int `mapstructure:"optimalMin"`
	OptimalMax          int `mapstructure:"optimalMax"`
	ShortMaxPenalty     int `mapstructure:"shortMaxPenalty"`
	OverPenaltyPer100   int `mapstructure:"overPenaltyPer100"`
	OverMaxPenalty      int `mapstructure:"overMaxPenalty"`
}

// CompletenessConfig tunes the completeness analyzer and its
// certificate-vs-resume classifier
type CompletenessConfig struct {
	BaseScore            int `mapstructure:"baseScore"`
	CertificateMargin    int `mapstructure:"certificateMargin"`
	ResumeIndicatorMax   int `mapstructure:"resumeIndicatorMax"`
	CertificatePenalty   int `mapstructure:"certificatePenalty"`
	MissingOrgVocabPenalty int `mapstructure:"missingOrgVocabPenalty"`

	MissingExperiencePenalty int `mapstructure:"missingExperiencePenalty"`
	MissingContactPenalty    int `mapstructure:"missingContactPenalty"`
	MissingEducationPenalty  int `mapstructure:"missingEducationPenalty"`
	MissingSkillsPenalty     int `mapstructure:"missingSkillsPenalty"`
	MissingSummaryPenalty    int `mapstructure:"missingSummaryPenalty"`

	FallbackScanLines        int `mapstructure:"fallbackScanLines"`
	SummaryQualityThreshold  int `mapstructure:"summaryQualityThreshold"`
	LowQualitySummaryPenalty int `mapstructure:"lowQualitySummaryPenalty"`
}

// KeywordConfig tunes the keyword-relevance analyzer. SignalWeights must
// sum to 1.0. The status thresholds here deliberately differ from the
// shared mapping; the discrepancy is observed product behavior and is not
// unified without confirmation.
type KeywordConfig struct {
	SignalWeights       KeywordSignalWeights `mapstructure:"signalWeights"`
	MinTokenLength      int                  `mapstructure:"minTokenLength"`
	TopTermCount        int                  `mapstructure:"topTermCount"`
	TitleMissingPenalty int                  `mapstructure:"titleMissingPenalty"`
	Status              StatusThresholds     `mapstructure:"status"`
}

// KeywordSignalWeights is the share each signal contributes to the final
// 0-100 keyword score
type KeywordSignalWeights struct {
	ExactMatch    float64 `mapstructure:"exactMatch"`
	TechnicalTerm float64 `mapstructure:"technicalTerm"`
	ActionVerb    float64 `mapstructure:"actionVerb"`
	Semantic      float64 `mapstructure:"semantic"`
	TFIDFOverlap  float64 `mapstructure:"tfidfOverlap"`
}

// DefaultConfig returns the production tuning
func DefaultConfig() Config {
	return Config{
		Status: StatusThresholds{
			Excellent:        85,
			Good:             70,
			NeedsImprovement: 50,
		},
		Impact: ImpactConfig{
			BaseScore:             100,
			MinQuantified:         3,
			FewQuantifiedPenalty:  30,
			MinRelevance:          0.30,
			LowRelevancePenalty:   25,
			MissingProjectPenalty: 15,
		},
		Length: LengthConfig{
			OptimalMin:        200,
			OptimalMax:        600,
			ShortMaxPenalty:   60,
			OverPenaltyPer100: 5,
			OverMaxPenalty:    30,
		},
		Completeness: CompletenessConfig{
			BaseScore:              100,
			CertificateMargin:      1,
			ResumeIndicatorMax:     2,
			CertificatePenalty:     45,
			MissingOrgVocabPenalty: 10,

			MissingExperiencePenalty: 25,
			MissingContactPenalty:    15,
			MissingEducationPenalty:  12,
			MissingSkillsPenalty:     12,
			MissingSummaryPenalty:    10,

			FallbackScanLines:        15,
			SummaryQualityThreshold:  4,
			LowQualitySummaryPenalty: 5,
		},
		Keyword: KeywordConfig{
			SignalWeights: KeywordSignalWeights{
				ExactMatch:    0.30,
				TechnicalTerm: 0.25,
				ActionVerb:    0.15,
				Semantic:      0.20,
				TFIDFOverlap:  0.10,
			},
			MinTokenLength:      4,
			TopTermCount:        20,
			TitleMissingPenalty: 5,
			Status: StatusThresholds{
				Excellent:        80,
				Good:             60,
				NeedsImprovement: 30,
			},
		},
	}
}

// Validate checks the structural invariants of the tuning. A violation is
// a fatal configuration error at startup, never a per-request error.
func (c Config) Validate() error {
	w := c.Keyword.SignalWeights
	sum := w.ExactMatch + w.TechnicalTerm + w.ActionVerb + w.Semantic + w.TFIDFOverlap
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("keyword signal weights must sum to 1.0, got %g", sum)
	}

	if c.Length.OptimalMin <= 0 || c.Length.OptimalMax <= c.Length.OptimalMin {
		return fmt.Errorf("invalid length band: [%d, %d]", c.Length.OptimalMin, c.Length.OptimalMax)
	}

	if c.Status.Excellent <= c.Status.Good || c.Status.Good <= c.Status.NeedsImprovement {
		return fmt.Errorf("status thresholds must be strictly decreasing")
	}
	if c.Keyword.Status.Excellent <= c.Keyword.Status.Good || c.Keyword.Status.Good <= c.Keyword.Status.NeedsImprovement {
		return fmt.Errorf("keyword status thresholds must be strictly decreasing")
	}

	if c.Keyword.TopTermCount <= 0 {
		return fmt.Errorf("keyword topTermCount must be positive")
	}

	return nil
}
