package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		User: "sam",
		Store: StoreConfig{
			Backend: "file",
			Path:    "ooo_entries.json",
		},
		Holidays: []HolidayConfig{
			{Name: "Christmas", RRule: "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"},
		},
		CalendarID: "team@example.com",
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MinimalConfig(t *testing.T) {
	cfg := &Config{
		User:  "sam",
		Store: StoreConfig{Backend: "file"},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingUser(t *testing.T) {
	cfg := &Config{
		Store: StoreConfig{Backend: "file"},
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := &Config{
		User:  "sam",
		Store: StoreConfig{Backend: "mongodb"},
	}

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestValidate_PostgresRequiresURL(t *testing.T) {
	cfg := &Config{
		User:  "sam",
		Store: StoreConfig{Backend: "postgres"},
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgresURL")

	cfg.Store.PostgresURL = "postgres://localhost/awayboard"
	assert.NoError(t, Validate(cfg))
}

func TestValidate_InvalidHolidayRRule(t *testing.T) {
	cfg := &Config{
		User:  "sam",
		Store: StoreConfig{Backend: "file"},
		Holidays: []HolidayConfig{
			{Name: "Broken", RRule: "not an rrule"},
		},
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "awayboard.yaml")
	data := []byte(`
user: sam
store:
  backend: file
  path: /tmp/entries.json
board:
  includeElapsed: true
holidays:
  - name: New Year
    rrule: FREQ=YEARLY;BYMONTH=1;BYMONTHDAY=1
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "sam", cfg.User)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "/tmp/entries.json", cfg.Store.Path)
	assert.True(t, cfg.Board.IncludeElapsed)
	require.Len(t, cfg.Holidays, 1)
	assert.Equal(t, "New Year", cfg.Holidays[0].Name)
}

func TestLoadFromPath_DefaultsStorePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "awayboard.yaml")
	data := []byte("user: sam\nstore:\n  backend: file\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, defaultEntriesFile, cfg.Store.Path)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "awayboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user: [unclosed"), 0644))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}
