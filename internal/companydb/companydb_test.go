package companydb

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToDefaults(t *testing.T) {
	db := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, len(defaultEntries), db.Len())
}

func TestLoadFromFile(t *testing.T) {
	entries := []Entry{
		{Name: "Acme Robotics", Domain: "acme.example", Industry: "Technology"},
		{Name: "Northwind Traders", Industry: "Logistics"},
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "companies.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	db := Load(path)
	assert.Equal(t, 2, db.Len())

	e, ok := db.Validate("acme robotics, inc.")
	require.True(t, ok)
	assert.Equal(t, "Acme Robotics", e.Name)
}

func TestSuggestRanksWordPrefixFirst(t *testing.T) {
	db := Load("")

	got := db.Suggest("morgan", 10)
	require.NotEmpty(t, got)

	// "Morgan Stanley" starts a word with the query; "JPMorgan Chase" only
	// contains it mid-word and must rank after.
	names := make([]string, len(got))
	for i, e := range got {
		names[i] = e.Name
	}
	assert.Contains(t, names, "Morgan Stanley")
	assert.Contains(t, names, "JPMorgan Chase")
	assert.Less(t,
		indexOf(names, "Morgan Stanley"),
		indexOf(names, "JPMorgan Chase"))
}

func TestSuggestLimit(t *testing.T) {
	db := Load("")

	assert.LessOrEqual(t, len(db.Suggest("a", 0)), maxSuggestions)
	assert.LessOrEqual(t, len(db.Suggest("a", 50)), maxSuggestions)
	assert.LessOrEqual(t, len(db.Suggest("a", 3)), 3)
}

func TestSuggestEmptyPrefix(t *testing.T) {
	db := Load("")

	assert.Nil(t, db.Suggest("", 10))
	assert.Nil(t, db.Suggest("   ", 10))
}

func TestValidateUnknown(t *testing.T) {
	db := Load("")

	_, ok := db.Validate("Completely Unknown Company")
	assert.False(t, ok)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
