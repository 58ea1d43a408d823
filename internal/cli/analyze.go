package cli

import (
	"atscore/internal/common"
	"atscore/internal/errors"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Analyze a resume for ATS compatibility",
	Long: `Analyze a resume document and produce a compatibility report.

The resume is segmented into sections and scored across quantitative
impact, length, completeness, and keyword relevance. Supplying a job
title or job description sharpens the keyword analysis; without job
context the keyword category scores zero. When AI is configured, the
keyword and completeness categories are refined by the AI provider,
falling back to heuristics on any failure.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = cfg.App.DefaultFormat
			_ = cmd.Flags().Set("format", format)
		}
		return common.ValidateOutputFormat(format, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	jobTitle, _ := cmd.Flags().GetString("job-title")
	jobDescription, _ := cmd.Flags().GetString("job-description")
	jobFile, _ := cmd.Flags().GetString("job-file")
	industry, _ := cmd.Flags().GetString("industry")
	outputFile, _ := cmd.Flags().GetString("output")
	outputFormat, _ := cmd.Flags().GetString("format")
	noAI, _ := cmd.Flags().GetBool("no-ai")

	eng, cleanup, err := buildEngine(cfg, logger, !noAI, nil)
	defer cleanup()
	if err != nil {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig, "failed to initialize analysis engine", err)
	}

	return common.RunAnalysisCommand(ctx, logger, eng, common.AnalysisRequest{
		ResumeFile:     args[0],
		JobTitle:       jobTitle,
		JobDescription: jobDescription,
		JobFile:        jobFile,
		Industry:       industry,
		MaxFileSize:    cfg.App.MaxFileSize,
	}, common.CommandConfig{
		OutputFile:   outputFile,
		OutputFormat: outputFormat,
	})
}

func init() {
	analyzeCmd.Flags().StringP("job-title", "t", "", "Target job title for keyword analysis")
	analyzeCmd.Flags().StringP("job-description", "d", "", "Job description text for keyword analysis")
	analyzeCmd.Flags().String("job-file", "", "Path to a file containing the job description")
	analyzeCmd.Flags().String("industry", "", "Benchmark industry profile (overrides detection)")
	analyzeCmd.Flags().StringP("output", "o", "", "Output file (prints to stdout when omitted)")
	analyzeCmd.Flags().StringP("format", "f", "", "Output format (json, text, markdown)")
	analyzeCmd.Flags().Bool("no-ai", false, "Disable AI insights and use heuristics only")

	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}
