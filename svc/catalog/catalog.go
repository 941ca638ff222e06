package catalog

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Catalog is an immutable snapshot of locale → (key → translated text) data.
// It is built once at startup and never mutated afterwards, so it is safe for
// concurrent readers without locking.
//
// Locale matching is case-insensitive: codes are canonicalized with
// golang.org/x/text/language both at load time and per lookup, so "EN", "en"
// and "en-us"/"en-US" resolve to the same table. Locales() reports the source
// file's spelling.
type Catalog struct {
	locales []string
	tables  map[string]localeTable
}

type localeTable struct {
	locale  string // spelling as it appears in the data file
	entries map[string]string
}

// Load builds a Catalog from the given source. Any failure here means the
// service must not start.
func Load(ctx context.Context, source Source) (*Catalog, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidCatalog)
	}

	data, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	return New(data)
}

// New builds a Catalog from an in-memory mapping, validating and indexing it.
func New(data map[string]map[string]string) (*Catalog, error) {
	c := &Catalog{
		locales: make([]string, 0, len(data)),
		tables:  make(map[string]localeTable, len(data)),
	}

	for locale, entries := range data {
		if strings.TrimSpace(locale) == "" {
			return nil, fmt.Errorf("%w: empty locale code", ErrInvalidCatalog)
		}
		if entries == nil {
			return nil, fmt.Errorf("%w: nil translations for locale %q", ErrInvalidCatalog, locale)
		}

		canonical := normalizeLocale(locale)
		if existing, ok := c.tables[canonical]; ok {
			return nil, fmt.Errorf("%w: locales %q and %q collide after normalization", ErrInvalidCatalog, existing.locale, locale)
		}

		c.tables[canonical] = localeTable{
			locale:  locale,
			entries: maps.Clone(entries),
		}
		c.locales = append(c.locales, locale)
	}

	sort.Strings(c.locales)
	return c, nil
}

// Locales returns the locale codes present in the catalog, sorted ascending.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.locales))
	copy(out, c.locales)
	return out
}

// Len returns the number of locales in the catalog.
func (c *Catalog) Len() int {
	return len(c.locales)
}

// Has reports whether the locale is present in the catalog.
func (c *Catalog) Has(locale string) bool {
	_, ok := c.tables[normalizeLocale(locale)]
	return ok
}

// Translations returns the full key → text mapping for the locale.
// The returned map is a copy; callers may modify it freely.
func (c *Catalog) Translations(locale string) (map[string]string, error) {
	table, ok := c.tables[normalizeLocale(locale)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
	}
	return maps.Clone(table.entries), nil
}

// Translation returns the translated text for a single (locale, key) pair.
func (c *Catalog) Translation(locale, key string) (string, error) {
	table, ok := c.tables[normalizeLocale(locale)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
	}

	value, ok := table.entries[key]
	if !ok {
		return "", fmt.Errorf("%w: %q in locale %q", ErrKeyNotFound, key, locale)
	}
	return value, nil
}

// normalizeLocale maps a locale code to its canonical lookup form. BCP 47
// tags go through x/text canonicalization; anything unparseable falls back
// to trimmed lowercase so lookups stay case-insensitive either way.
func normalizeLocale(code string) string {
	code = strings.TrimSpace(code)
	if tag, err := language.Parse(code); err == nil {
		return strings.ToLower(tag.String())
	}
	return strings.ToLower(code)
}
