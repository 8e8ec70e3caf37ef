// Package export saves analysis results as JSON files.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/careersync/internal/model"
)

// FileName is the name every saved analysis is written under.
const FileName = "resume-analysis.json"

// Marshal encodes result as JSON indented with two spaces. A result decoded
// from the service is written exactly as the service sent it, including
// fields careersync does not model and the original key order.
func Marshal(result *model.AnalysisResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("no analysis to export")
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}
	return data, nil
}

// Save writes result to dir/resume-analysis.json, replacing any previous
// export, and returns the written path. An empty dir means the working
// directory.
func Save(dir string, result *model.AnalysisResult) (string, error) {
	data, err := Marshal(result)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", FileName, err)
	}

	return path, nil
}
