package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("04/12/2022")
	require.NoError(t, err)
	assert.Equal(t, "04/12/2022", d.String())
	assert.Equal(t, "220412", d.Code())
}

func TestParseDateEmptyDefaultsToToday(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.False(t, d.IsZero())
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("2022-04-12")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.yml")
	payload := "date: \"07/22/2022\"\nterm: 22b\ncourse_blacklist:\n  - PHYS 10111\n"
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	var cfg struct {
		Date            string   `yaml:"date"`
		Term            string   `yaml:"term"`
		CourseBlacklist []string `yaml:"course_blacklist"`
	}
	require.NoError(t, Load(path, &cfg))
	assert.Equal(t, "22b", cfg.Term)
	assert.Equal(t, []string{"PHYS 10111"}, cfg.CourseBlacklist)
}

func TestLoadMissingFile(t *testing.T) {
	var cfg struct{}
	assert.Error(t, Load(filepath.Join(t.TempDir(), "absent.yml"), &cfg))
}
