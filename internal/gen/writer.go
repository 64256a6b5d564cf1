package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Output file names.
const (
	ReportJSONFile = "mapping_result.json"
	ReportYAMLFile = "mapping_result.yaml"
	ExpressionFile = "transformation.jsonata"
)

// GeneratedFile is one file of the output directory.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "transformation.jsonata").
	Filename string
	Content  []byte
}

// Files returns the report (JSON, or YAML when asked) and the expression.
func (o *Output) Files(yamlReport bool) ([]GeneratedFile, error) {
	name, render := ReportJSONFile, o.Report.JSON
	if yamlReport {
		name, render = ReportYAMLFile, o.Report.YAML
	}

	report, err := render()
	if err != nil {
		return nil, err
	}

	return []GeneratedFile{
		{Filename: name, Content: report},
		{Filename: ExpressionFile, Content: []byte(o.Expression)},
	}, nil
}

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
