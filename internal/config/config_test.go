package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAllKeys(t *testing.T) {
	t.Helper()
	t.Setenv("ARL_KEY", "key-uk")
	t.Setenv("ARNL_KEY", "key-nl")
	t.Setenv("ARF_KEY", "key-fr")
	t.Setenv("ARIB_KEY", "key-ib")
}

func TestLoad(t *testing.T) {
	setAllKeys(t)
	t.Setenv("CIN7_API_BASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.cin7.com/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 250, cfg.RowsPerPage)
	require.Len(t, cfg.Accounts, 4)
	assert.Equal(t, "AlbertRogerUK", cfg.Accounts[0].Username)
	assert.Equal(t, "key-uk", cfg.Accounts[0].APIKey)
	assert.Equal(t, "ARL", cfg.Accounts[0].Abbreviation)
}

func TestLoadFailsWhenAccountKeyMissing(t *testing.T) {
	setAllKeys(t)
	t.Setenv("ARF_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ARF_KEY")
}

func TestAbbreviations(t *testing.T) {
	setAllKeys(t)

	cfg, err := Load()
	require.NoError(t, err)

	abbrevs := cfg.Abbreviations()
	assert.Equal(t, "ARL", abbrevs["AlbertRogerUK"])
	assert.Equal(t, "ARNL", abbrevs["AlbertRogerNetheEU"])
	assert.Equal(t, "ARF", abbrevs["AlbertRogerFrancEU"])
	assert.Equal(t, "ARIB", abbrevs["AlbertRogerIberiEU"])
}

func TestBaseURLOverride(t *testing.T) {
	setAllKeys(t)
	t.Setenv("CIN7_API_BASE_URL", "https://api.example.test/v1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test/v1", cfg.APIBaseURL)
}
