package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.MinCommits)
	assert.Equal(t, 100, cfg.MaxRepoSize)
	assert.Equal(t, 5, cfg.TopRepos)
	assert.Equal(t, 0, cfg.MaxList)
	assert.Equal(t, 10, cfg.CommitMaxRepos)
	assert.Equal(t, 30, cfg.CommitPerRepo)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("COLLABORATOR_MIN_COMMITS", "3")
	t.Setenv("COLLABORATOR_TOP_REPOS", "2")
	t.Setenv("API_TIMEOUT", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MinCommits)
	assert.Equal(t, 2, cfg.TopRepos)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"non-numeric min commits", "COLLABORATOR_MIN_COMMITS", "ten"},
		{"negative repo size", "COLLABORATOR_MAX_REPO_SIZE", "-1"},
		{"non-numeric timeout", "API_TIMEOUT", "5s"},
		{"zero timeout", "API_TIMEOUT", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			_, err := Load()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.env, cfgErr.Name)
		})
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 1.0, w.Commits+w.Repos+w.Collaboration+w.Recency, 1e-9)
}
