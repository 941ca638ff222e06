package issues

import "errors"

var (
	ErrIssueNotFound       = errors.New("issue not found")
	ErrFailedToReadIssues  = errors.New("failed to read issues file")
	ErrFailedToParseIssues = errors.New("failed to parse issues file")
	ErrFailedToWriteIssues = errors.New("failed to write issues file")
)
