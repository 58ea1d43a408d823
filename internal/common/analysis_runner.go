package common

import (
	"context"

	"atscore/internal/engine"
	"atscore/internal/errors"
	"atscore/internal/types"
)

// AnalysisRequest carries everything an analysis command needs beyond the
// resume file itself
type AnalysisRequest struct {
	ResumeFile     string
	JobTitle       string
	JobDescription string
	JobFile        string // Optional file holding the job description
	Industry       string // Optional benchmark profile override
	MaxFileSize    int64
}

// RunAnalysisCommand encapsulates the common logic for file-based analysis
// commands: read and validate inputs, run the engine, format and write the
// report.
func RunAnalysisCommand(
	ctx context.Context,
	logger *errors.Logger,
	eng *engine.Engine,
	req AnalysisRequest,
	cmdConfig CommandConfig,
) error {
	fileProcessor := NewFileProcessor(req.MaxFileSize, logger)
	outputHandler := NewOutputHandler(logger)

	contents, err := fileProcessor.ValidateAndReadFiles(req.ResumeFile)
	if err != nil {
		return err
	}

	jobDescription := req.JobDescription
	if req.JobFile != "" {
		jobContents, err := fileProcessor.ValidateAndReadFiles(req.JobFile)
		if err != nil {
			return err
		}
		jobDescription = jobContents[0]
	}

	input := types.AnalyzeInput{
		ResumeText:     contents[0],
		JobTitle:       req.JobTitle,
		JobDescription: jobDescription,
		Industry:       req.Industry,
	}

	logger.Info("Starting resume analysis",
		"resume_file", req.ResumeFile,
		"resume_length", len(input.ResumeText),
		"job_title", input.JobTitle,
		"has_job_description", input.JobDescription != "",
		"format", cmdConfig.OutputFormat)

	report := eng.Analyze(ctx, input)

	return outputHandler.HandleOutput(report, cmdConfig)
}
