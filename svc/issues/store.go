package issues

import (
	"encoding/json"
	"errors"
	"os"
)

// LoadFile reads the issue list from the JSON file at path.
func LoadFile(path string) ([]Issue, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadIssues, err)
	}

	var issues []Issue
	if err := json.Unmarshal(content, &issues); err != nil {
		return nil, errors.Join(ErrFailedToParseIssues, err)
	}
	return issues, nil
}

// SaveFile persists the issue list into the JSON file at path.
func SaveFile(path string, issues []Issue) error {
	content, err := json.MarshalIndent(issues, "", "  ")
	if err != nil {
		return errors.Join(ErrFailedToWriteIssues, err)
	}
	if err := os.WriteFile(path, append(content, '\n'), 0o644); err != nil {
		return errors.Join(ErrFailedToWriteIssues, err)
	}
	return nil
}

// CloseAndSaveImplemented loads the issue file, closes the issues that are
// already implemented and persists the result.
func CloseAndSaveImplemented(path string) ([]Issue, error) {
	issues, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	closed := CloseImplemented(issues)
	if err := SaveFile(path, closed); err != nil {
		return nil, err
	}
	return closed, nil
}
