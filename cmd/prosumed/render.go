package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/schemas"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/template"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

var (
	renderResumeFile   string
	renderLetterFile   string
	renderTemplateID   string
	renderFormats      string
	renderOutputDir    string
	renderTemplatesDir string
	renderPageSize     string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume or cover letter from a JSON file",
	Long: `Render a resume (or cover letter) JSON document into one or more output
formats without a database or server. Output files are written to the output
directory as <basename>.<ext>.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderResumeFile, "resume", "r", "", "Path to resume JSON file")
	renderCmd.Flags().StringVarP(&renderLetterFile, "letter", "l", "", "Path to cover letter JSON file")
	renderCmd.Flags().StringVarP(&renderTemplateID, "template", "t", "", "Template ID (default: classic)")
	renderCmd.Flags().StringVarP(&renderFormats, "formats", "f", "html", "Comma-separated output formats (pdf, docx, latex, html)")
	renderCmd.Flags().StringVarP(&renderOutputDir, "out", "o", ".", "Output directory")
	renderCmd.Flags().StringVar(&renderTemplatesDir, "templates-dir", "", "Directory of custom template bundles")
	renderCmd.Flags().StringVar(&renderPageSize, "page-size", "", "PDF page size (A4 or Letter)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	if (renderResumeFile == "") == (renderLetterFile == "") {
		return fmt.Errorf("exactly one of --resume or --letter is required")
	}

	formats, err := parseFormats(renderFormats)
	if err != nil {
		return err
	}

	pdf := template.PDFSettings{PageSize: renderPageSize}
	ctx := cmd.Context()

	if renderLetterFile != "" {
		return renderLetterFiles(ctx, pdf, formats)
	}
	return renderResumeFiles(ctx, pdf, formats)
}

func renderResumeFiles(ctx context.Context, pdf template.PDFSettings, formats []types.Format) error {
	data, err := os.ReadFile(renderResumeFile)
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

	registry, err := template.NewRegistry(pdf)
	if err != nil {
		return err
	}
	if renderTemplatesDir != "" {
		factories, err := template.LoadDir(renderTemplatesDir, pdf)
		if err != nil {
			return err
		}
		if err := registry.ReplaceCustom(factories); err != nil {
			return err
		}
	}

	renderer, err := registry.New(renderTemplateID)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(renderResumeFile), filepath.Ext(renderResumeFile))
	for _, format := range formats {
		doc, err := renderer.Render(ctx, &resume, format)
		if err != nil {
			return err
		}
		if err := writeOutput(base, format, doc); err != nil {
			return err
		}
	}
	return nil
}

func renderLetterFiles(ctx context.Context, pdf template.PDFSettings, formats []types.Format) error {
	data, err := os.ReadFile(renderLetterFile)
	if err != nil {
		return fmt.Errorf("failed to read letter file: %w", err)
	}
	if err := schemas.ValidateCoverLetter(data); err != nil {
		return err
	}
	var letter types.CoverLetter
	if err := json.Unmarshal(data, &letter); err != nil {
		return fmt.Errorf("failed to parse letter: %w", err)
	}

	renderer, err := template.NewLetterRenderer(pdf)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(renderLetterFile), filepath.Ext(renderLetterFile))
	for _, format := range formats {
		doc, err := renderer.Render(ctx, &letter, format)
		if err != nil {
			return err
		}
		if err := writeOutput(base, format, doc); err != nil {
			return err
		}
	}
	return nil
}

func parseFormats(s string) ([]types.Format, error) {
	var formats []types.Format
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		format, err := types.ParseFormat(part)
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("no output formats specified")
	}
	return formats, nil
}

func writeOutput(base string, format types.Format, doc []byte) error {
	if err := os.MkdirAll(renderOutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(renderOutputDir, base+"."+format.Extension())
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", path, len(doc))
	return nil
}
