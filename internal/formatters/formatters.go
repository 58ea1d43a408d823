package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"atscore/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "Report", &ReportTextFormatter{})
	registry.RegisterFormatter("markdown", "Report", &ReportMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case *types.Report:
		return "Report"
	case types.Report:
		return "Report"
	default:
		return "any"
	}
}

func asReport(data any) (*types.Report, bool) {
	switch v := data.(type) {
	case *types.Report:
		return v, true
	case types.Report:
		return &v, true
	default:
		return nil, false
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ReportTextFormatter handles text formatting for analysis reports
type ReportTextFormatter struct{}

func (rtf *ReportTextFormatter) Format(data any) (string, error) {
	report, ok := asReport(data)
	if !ok {
		return "", fmt.Errorf("expected Report, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n", report.OverallScore))
	if report.Industry != "" {
		output.WriteString(fmt.Sprintf("Industry: %s\n", report.Industry))
	}
	output.WriteString(fmt.Sprintf("Words: %d | Sections: %d\n\n",
		report.Metadata.WordCount, report.Metadata.SectionCount))

	for _, cat := range report.Categories {
		output.WriteString(fmt.Sprintf("=== %s ===\n", strings.ToUpper(cat.Category)))
		output.WriteString(fmt.Sprintf("Score: %d/100 (%s)\n", cat.Score, cat.Status))
		if len(cat.Issues) > 0 {
			output.WriteString("Issues:\n")
			for _, issue := range cat.Issues {
				output.WriteString(fmt.Sprintf("- %s\n", issue))
			}
		}
		if len(cat.Recommendations) > 0 {
			output.WriteString("Recommendations:\n")
			for _, rec := range cat.Recommendations {
				output.WriteString(fmt.Sprintf("- %s\n", rec))
			}
		}
		output.WriteString("\n")
	}

	if composite := report.Composite; composite != nil {
		output.WriteString("=== INDUSTRY BENCHMARK ===\n")
		output.WriteString(fmt.Sprintf("Weighted Score: %d/100\n", composite.WeightedScore))
		output.WriteString(fmt.Sprintf("Grade: %s\n", composite.OverallGrade))
		output.WriteString(fmt.Sprintf("Industry Percentile: %.1f\n", composite.IndustryPercentile))
		output.WriteString(fmt.Sprintf("Market Position: %s\n", composite.CompetitiveAnalysis.MarketPosition))
		output.WriteString(fmt.Sprintf("Improvement Potential: %.1f points\n\n", composite.ImprovementPotential))

		if len(composite.Breakdown) > 0 {
			output.WriteString("Breakdown:\n")
			for _, row := range composite.Breakdown {
				output.WriteString(fmt.Sprintf("- %s: %d/100 (weight %.2f, grade %s)\n",
					row.Category, row.RawScore, row.Weight, row.Grade))
			}
		}
	}

	return output.String(), nil
}

func (rtf *ReportTextFormatter) SupportedType() string {
	return "Report"
}

// ReportMarkdownFormatter handles markdown formatting for analysis reports
type ReportMarkdownFormatter struct{}

func (rmf *ReportMarkdownFormatter) Format(data any) (string, error) {
	report, ok := asReport(data)
	if !ok {
		return "", fmt.Errorf("expected Report, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility Report\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", report.OverallScore))
	if report.Industry != "" {
		output.WriteString(fmt.Sprintf("**Industry:** %s\n\n", report.Industry))
	}
	output.WriteString(fmt.Sprintf("**Words:** %d | **Sections:** %d\n\n",
		report.Metadata.WordCount, report.Metadata.SectionCount))

	for _, cat := range report.Categories {
		output.WriteString(fmt.Sprintf("## %s\n\n", cat.Category))
		output.WriteString(fmt.Sprintf("**Score:** %d/100 (%s)\n\n", cat.Score, cat.Status))
		if len(cat.Issues) > 0 {
			output.WriteString("### Issues\n")
			for _, issue := range cat.Issues {
				output.WriteString(fmt.Sprintf("- %s\n", issue))
			}
			output.WriteString("\n")
		}
		if len(cat.Recommendations) > 0 {
			output.WriteString("### Recommendations\n")
			for _, rec := range cat.Recommendations {
				output.WriteString(fmt.Sprintf("- %s\n", rec))
			}
			output.WriteString("\n")
		}
	}

	if composite := report.Composite; composite != nil {
		output.WriteString("## Industry Benchmark\n\n")
		output.WriteString(fmt.Sprintf("**Weighted Score:** %d/100\n\n", composite.WeightedScore))
		output.WriteString(fmt.Sprintf("**Grade:** %s\n\n", composite.OverallGrade))
		output.WriteString(fmt.Sprintf("**Industry Percentile:** %.1f\n\n", composite.IndustryPercentile))
		output.WriteString(fmt.Sprintf("**Market Position:** %s\n\n", composite.CompetitiveAnalysis.MarketPosition))
		output.WriteString(fmt.Sprintf("**Improvement Potential:** %.1f points\n\n", composite.ImprovementPotential))

		if len(composite.Breakdown) > 0 {
			output.WriteString("| Category | Score | Weight | Percentile | Grade |\n")
			output.WriteString("|----------|-------|--------|------------|-------|\n")
			for _, row := range composite.Breakdown {
				output.WriteString(fmt.Sprintf("| %s | %d | %.2f | %.1f | %s |\n",
					row.Category, row.RawScore, row.Weight, row.Percentile, row.Grade))
			}
		}
	}

	return output.String(), nil
}

func (rmf *ReportMarkdownFormatter) SupportedType() string {
	return "Report"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
