// Package companydb backs the autocomplete and validation endpoints with a
// curated company list. The list loads once at startup from a JSON file and
// is immutable afterwards, so lookups need no locking.
package companydb

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/prospect-intel/backend/pkg/logger"
	"github.com/prospect-intel/backend/pkg/namekey"
)

const maxSuggestions = 10

// Entry is one known company in the curated list.
type Entry struct {
	Name     string `json:"name"`
	Domain   string `json:"domain,omitempty"`
	Industry string `json:"industry,omitempty"`
	Ticker   string `json:"ticker,omitempty"`
}

// DB holds the loaded list plus a normalized-name index.
type DB struct {
	entries []Entry
	byKey   map[string]Entry
}

// Load reads entries from path, falling back to the built-in list when the
// file is absent or unreadable. A bad file is logged, not fatal.
func Load(path string) *DB {
	entries := defaultEntries
	if path != "" {
		if fromFile, err := readFile(path); err != nil {
			logger.Warn("company list unreadable, using built-in defaults",
				zap.String("path", path), zap.Error(err))
		} else if len(fromFile) > 0 {
			entries = fromFile
		}
	}

	db := &DB{
		entries: entries,
		byKey:   make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		db.byKey[namekey.Normalize(e.Name)] = e
	}

	logger.Info("company database loaded", zap.Int("entries", len(entries)))
	return db
}

func readFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Suggest returns up to limit entries matching the prefix. Word-prefix
// matches rank ahead of substring matches; both tiers keep alphabetical
// order. An empty prefix returns nothing.
func (db *DB) Suggest(prefix string, limit int) []Entry {
	q := strings.ToLower(strings.TrimSpace(prefix))
	if q == "" {
		return nil
	}
	if limit <= 0 || limit > maxSuggestions {
		limit = maxSuggestions
	}

	var prefixMatches, substringMatches []Entry
	for _, e := range db.entries {
		lower := strings.ToLower(e.Name)
		switch {
		case wordPrefixMatch(lower, q):
			prefixMatches = append(prefixMatches, e)
		case strings.Contains(lower, q):
			substringMatches = append(substringMatches, e)
		}
	}

	byName := func(s []Entry) {
		sort.Slice(s, func(i, j int) bool { return s[i].Name < s[j].Name })
	}
	byName(prefixMatches)
	byName(substringMatches)

	out := append(prefixMatches, substringMatches...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func wordPrefixMatch(name, q string) bool {
	if strings.HasPrefix(name, q) {
		return true
	}
	for _, word := range strings.Fields(name) {
		if strings.HasPrefix(word, q) {
			return true
		}
	}
	return false
}

// Validate reports whether the name is in the curated list, returning the
// canonical entry when it is.
func (db *DB) Validate(name string) (Entry, bool) {
	e, ok := db.byKey[namekey.Normalize(name)]
	return e, ok
}

// Len reports the number of loaded entries.
func (db *DB) Len() int { return len(db.entries) }
