package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Source is where the catalog data comes from.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]string, error)
}

// MapSource is a simple in-memory source, mainly for tests.
type MapSource struct {
	Data map[string]map[string]string
}

// Load implements the Source interface
func (s *MapSource) Load(_ context.Context) (map[string]map[string]string, error) {
	if s.Data == nil {
		return make(map[string]map[string]string), nil
	}
	return s.Data, nil
}

// FileSource loads the catalog from a single data file, picking a parser by
// file extension. JSON and YAML are supported.
type FileSource struct {
	path    string
	parsers []Parser
}

// NewFileSource creates a FileSource for the given path.
// Returns nil if path is empty.
func NewFileSource(path string) *FileSource {
	if path == "" {
		return nil
	}
	return &FileSource{
		path:    path,
		parsers: []Parser{NewJSONParser(), NewYAMLParser()},
	}
}

// Load implements the Source interface
func (s *FileSource) Load(ctx context.Context) (map[string]map[string]string, error) {
	parser, err := s.parserFor(filepath.Ext(s.path))
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(s.path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("%w: file %q is empty", ErrFailedToParseFile, s.path)
	}

	data, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}

	return data, nil
}

func (s *FileSource) parserFor(ext string) (Parser, error) {
	for _, p := range s.parsers {
		if p.SupportsFileExtension(ext) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
