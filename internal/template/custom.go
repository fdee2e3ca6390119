package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// manifestName is the file that marks a directory as a template bundle.
const manifestName = "template.yaml"

// manifest is the on-disk description of a custom template bundle.
type manifest struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	HTML        string `yaml:"html"`  // path relative to the bundle dir
	LaTeX       string `yaml:"latex"` // path relative to the bundle dir
}

// LoadDir scans dir for template bundles: subdirectories containing a
// template.yaml manifest. Subdirectories without a manifest are ignored so
// the templates dir can hold unrelated assets. Any invalid bundle fails the
// whole load; the caller decides whether to keep the previous set.
func LoadDir(dir string, pdf PDFSettings) ([]Factory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &ManifestError{Path: dir, Message: "failed to read templates directory", Cause: err}
	}

	var factories []Factory
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		bundle := filepath.Join(dir, e.Name())
		manifestPath := filepath.Join(bundle, manifestName)
		if _, err := os.Stat(manifestPath); err != nil {
			continue
		}
		layout, err := loadBundle(bundle, manifestPath)
		if err != nil {
			return nil, err
		}
		factories = append(factories, layoutFactory(layout, pdf))
	}
	return factories, nil
}

// bundleDirs lists the subdirectories of dir. Used by the watcher to place
// per-bundle watches; errors are treated as "no bundles".
func bundleDirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(dir, e.Name()))
		}
	}
	return dirs
}

func loadBundle(bundle, manifestPath string) (Layout, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return Layout{}, &ManifestError{Path: bundle, Message: "failed to read manifest", Cause: err}
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Layout{}, &ManifestError{Path: bundle, Message: "invalid manifest", Cause: err}
	}
	if m.ID == "" {
		return Layout{}, &ManifestError{Path: bundle, Message: "manifest is missing required field: id"}
	}
	if m.Name == "" {
		return Layout{}, &ManifestError{Path: bundle, Message: "manifest is missing required field: name"}
	}
	if m.HTML == "" && m.LaTeX == "" {
		return Layout{}, &ManifestError{Path: bundle, Message: "manifest must reference an html or latex layout"}
	}

	layout := Layout{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
	if m.HTML != "" {
		src, err := readBundleFile(bundle, m.HTML)
		if err != nil {
			return Layout{}, err
		}
		layout.HTML = src
	}
	if m.LaTeX != "" {
		src, err := readBundleFile(bundle, m.LaTeX)
		if err != nil {
			return Layout{}, err
		}
		layout.LaTeX = src
	}
	return layout, nil
}

// readBundleFile reads a manifest-referenced layout file. References must
// stay inside the bundle directory.
func readBundleFile(bundle, name string) (string, error) {
	if filepath.IsAbs(name) || strings.Contains(name, "..") {
		return "", &ManifestError{Path: bundle, Message: fmt.Sprintf("layout reference escapes bundle: %q", name)}
	}
	data, err := os.ReadFile(filepath.Join(bundle, name))
	if err != nil {
		return "", &ManifestError{Path: bundle, Message: fmt.Sprintf("failed to read layout %q", name), Cause: err}
	}
	return string(data), nil
}
