package catalog

import "errors"

var (
	// ErrLocaleNotFound indicates the requested locale is absent from the catalog.
	ErrLocaleNotFound = errors.New("locale not found")
	// ErrKeyNotFound indicates the locale exists but the requested key does not.
	ErrKeyNotFound = errors.New("translation key not found")

	// Load-time failures. All of them are fatal: the service must not start
	// serving with an unloaded or partially loaded catalog.
	ErrFailedToReadFile     = errors.New("failed to read translations file")
	ErrFailedToParseFile    = errors.New("failed to parse translations file")
	ErrLoadingFileCancelled = errors.New("loading translations file cancelled")
	ErrUnsupportedFormat    = errors.New("unsupported translations file format")
	ErrInvalidCatalog       = errors.New("invalid catalog data")

	// JSON/YAML parser failures.
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrParsingCancelled  = errors.New("parsing cancelled")
)
