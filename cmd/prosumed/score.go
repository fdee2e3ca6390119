package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/ats"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/keywords"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/schemas"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreOutputFile string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume for ATS compatibility",
	Long: `Compute an ATS compatibility report for a resume JSON file. An optional job
posting (plain text, or HTML if the file ends in .html/.htm) adds keyword
match analysis. The report is printed as JSON.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job posting file (text or HTML)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Write the report to a file instead of stdout")
	_ = scoreCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(scoreResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	if err := schemas.ValidateResume(data); err != nil {
		return err
	}
	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	var jobDescription string
	if scoreJobFile != "" {
		job, err := os.ReadFile(scoreJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		jobDescription = string(job)
		ext := strings.ToLower(scoreJobFile)
		if strings.HasSuffix(ext, ".html") || strings.HasSuffix(ext, ".htm") {
			jobDescription, err = keywords.FromHTML(jobDescription)
			if err != nil {
				return fmt.Errorf("failed to extract job text: %w", err)
			}
		}
	}

	report := ats.NewScorer(ats.Options{}).Score(&resume, jobDescription)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	out = append(out, '\n')

	if scoreOutputFile != "" {
		if err := os.WriteFile(scoreOutputFile, out, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Wrote %s (score %d)\n", scoreOutputFile, report.Score)
		return nil
	}
	fmt.Print(string(out))
	return nil
}
