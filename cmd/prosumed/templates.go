package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/template"
)

var templatesDirFlag string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	Long:  "List the built-in templates, plus any custom template bundles found in the templates directory.",
	RunE:  runTemplates,
}

func init() {
	templatesCmd.Flags().StringVar(&templatesDirFlag, "templates-dir", "", "Directory of custom template bundles")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, _ []string) error {
	registry, err := template.NewRegistry(template.PDFSettings{})
	if err != nil {
		return err
	}
	if templatesDirFlag != "" {
		factories, err := template.LoadDir(templatesDirFlag, template.PDFSettings{})
		if err != nil {
			return err
		}
		if err := registry.ReplaceCustom(factories); err != nil {
			return err
		}
	}

	defaultID := registry.DefaultID()
	for _, info := range registry.List() {
		kind := "custom"
		if info.Builtin {
			kind = "builtin"
		}
		marker := " "
		if info.ID == defaultID {
			marker = "*"
		}
		formats := make([]string, len(info.Formats))
		for i, f := range info.Formats {
			formats[i] = string(f)
		}
		fmt.Printf("%s %-12s %-8s %-28s %s\n", marker, info.ID, kind, info.Name, strings.Join(formats, ","))
	}
	return nil
}
