// Package config holds the environment-derived settings for a single
// generation run. All thresholds are resolved and validated up front so the
// aggregator never reads the environment mid-computation.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Defaults for every tunable. Overridable through the environment.
const (
	DefaultMinCommits     = 10
	DefaultMaxRepoSize    = 100
	DefaultTopRepos       = 5
	DefaultMaxList        = 0 // 0 = no truncation
	DefaultCommitMaxRepos = 10
	DefaultCommitPerRepo  = 30
	DefaultTimeoutSeconds = 5
)

// GradeWeights are the relative weights of each grade component. They are
// configuration, not contract: the scoring formula is a placeholder policy.
type GradeWeights struct {
	Commits       float64
	Repos         float64
	Collaboration float64
	Recency       float64
}

// Config carries every knob the pipeline needs.
type Config struct {
	Token string

	// Collaborator detection.
	MinCommits  int
	MaxRepoSize int
	TopRepos    int
	MaxList     int

	// Commit/timeline fetching.
	CommitMaxRepos int
	CommitPerRepo  int

	// Per-call API timeout.
	Timeout time.Duration

	Weights GradeWeights
}

// ConfigError reports a bad configuration value. It is always fatal and is
// raised before any network I/O happens.
type ConfigError struct {
	Name  string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: invalid %s=%q: %v", e.Name, e.Value, e.Err)
	}
	return fmt.Sprintf("config: invalid %s=%q", e.Name, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MinCommits:     DefaultMinCommits,
		MaxRepoSize:    DefaultMaxRepoSize,
		TopRepos:       DefaultTopRepos,
		MaxList:        DefaultMaxList,
		CommitMaxRepos: DefaultCommitMaxRepos,
		CommitPerRepo:  DefaultCommitPerRepo,
		Timeout:        DefaultTimeoutSeconds * time.Second,
		Weights:        DefaultWeights(),
	}
}

// DefaultWeights returns the default grade component weights.
func DefaultWeights() GradeWeights {
	return GradeWeights{
		Commits:       0.35,
		Repos:         0.20,
		Collaboration: 0.20,
		Recency:       0.25,
	}
}

// Load resolves the configuration from the environment. Malformed or negative
// numeric values fail fast with a *ConfigError.
func Load() (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetDefault("github_token", "")
	v.SetDefault("collaborator_min_commits", cfg.MinCommits)
	v.SetDefault("collaborator_max_repo_size", cfg.MaxRepoSize)
	v.SetDefault("collaborator_top_repos", cfg.TopRepos)
	v.SetDefault("collaborator_max_list", cfg.MaxList)
	v.SetDefault("commit_max_repos", cfg.CommitMaxRepos)
	v.SetDefault("commit_per_repo", cfg.CommitPerRepo)
	v.SetDefault("api_timeout", DefaultTimeoutSeconds)

	bindings := map[string]string{
		"github_token":               "GITHUB_TOKEN",
		"collaborator_min_commits":   "COLLABORATOR_MIN_COMMITS",
		"collaborator_max_repo_size": "COLLABORATOR_MAX_REPO_SIZE",
		"collaborator_top_repos":     "COLLABORATOR_TOP_REPOS",
		"collaborator_max_list":      "COLLABORATOR_MAX_LIST",
		"commit_max_repos":           "COMMIT_MAX_REPOS",
		"commit_per_repo":            "COMMIT_PER_REPO",
		"api_timeout":                "API_TIMEOUT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	cfg.Token = v.GetString("github_token")

	var err error
	if cfg.MinCommits, err = intSetting(v, "collaborator_min_commits", "COLLABORATOR_MIN_COMMITS"); err != nil {
		return Config{}, err
	}
	if cfg.MaxRepoSize, err = intSetting(v, "collaborator_max_repo_size", "COLLABORATOR_MAX_REPO_SIZE"); err != nil {
		return Config{}, err
	}
	if cfg.TopRepos, err = intSetting(v, "collaborator_top_repos", "COLLABORATOR_TOP_REPOS"); err != nil {
		return Config{}, err
	}
	if cfg.MaxList, err = intSetting(v, "collaborator_max_list", "COLLABORATOR_MAX_LIST"); err != nil {
		return Config{}, err
	}
	if cfg.CommitMaxRepos, err = intSetting(v, "commit_max_repos", "COMMIT_MAX_REPOS"); err != nil {
		return Config{}, err
	}
	if cfg.CommitPerRepo, err = intSetting(v, "commit_per_repo", "COMMIT_PER_REPO"); err != nil {
		return Config{}, err
	}

	timeoutSecs, err := intSetting(v, "api_timeout", "API_TIMEOUT")
	if err != nil {
		return Config{}, err
	}
	if timeoutSecs == 0 {
		return Config{}, &ConfigError{Name: "API_TIMEOUT", Value: "0", Err: fmt.Errorf("timeout must be positive")}
	}
	cfg.Timeout = time.Duration(timeoutSecs) * time.Second

	return cfg, nil
}

// intSetting reads a numeric setting strictly: a value that does not parse as
// a non-negative integer is a ConfigError, never a silent zero.
func intSetting(v *viper.Viper, key, env string) (int, error) {
	raw := v.GetString(key)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ConfigError{Name: env, Value: raw, Err: fmt.Errorf("not an integer")}
	}
	if n < 0 {
		return 0, &ConfigError{Name: env, Value: raw, Err: fmt.Errorf("must not be negative")}
	}
	return n, nil
}
