package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	charterrors "github.com/mnhtng/shadcn-chart/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDocument loads a chart document from disk, validates it, and
// returns the resulting model.
func ParseDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, charterrors.NewParseError(path, 0, err)
	}
	return ParseDocumentBytes(path, data)
}

// ParseDocumentBytes parses and validates an in-memory document. The path
// only labels errors.
func ParseDocumentBytes(path string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, charterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
