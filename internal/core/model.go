// Package core owns the aggregated widget model and the pure derivations
// that build it from raw API data.
package core

import (
	"context"
	"time"
)

// Profile is the immutable account snapshot fetched once per run.
type Profile struct {
	Username    string
	Name        string
	AvatarURL   string
	CreatedAt   time.Time
	PublicRepos int
	Followers   int
}

// Repository describes one repository owned by the target user. Size is in
// bytes. UserCommits is the commit count attributed to the target user and is
// filled in during commit aggregation; repositories outside the commit-fetch
// window keep zero.
type Repository struct {
	Name        string
	FullName    string
	Owner       string
	Size        int64
	Language    string
	Topics      []string
	Stars       int
	Forks       int
	PushedAt    time.Time
	UserCommits int
}

// Contributor is one entry of a repository's contributor list. Used only
// transiently during collaborator detection.
type Contributor struct {
	Username  string
	AvatarURL string
	Commits   int
}

// Collaborator is a contributor who shares enough commit history with the
// target user across their top repositories.
type Collaborator struct {
	Username  string
	AvatarURL string
	Commits   int
	Repos     []string
}

// CommitEvent is a single commit attributed to the target user.
type CommitEvent struct {
	Repo      string
	Timestamp time.Time
	Count     int
}

// ImpactWeek is one calendar-week bucket of the impact timeline.
type ImpactWeek struct {
	WeekStart time.Time
	Commits   int
}

// LanguageStat is the byte share of one language across all repositories.
type LanguageStat struct {
	Name       string
	Bytes      int64
	Percentage float64
}

// FocusArea is a commit-weighted activity category derived from repository
// languages.
type FocusArea struct {
	Category   string
	Percentage float64
	Commits    int
}

// Tag is an inferred developer specialization with a confidence in [0, 1].
type Tag struct {
	Name       string
	Confidence float64
}

// GradeStats are the headline numbers shown alongside the grade.
type GradeStats struct {
	Commits       int
	Repos         int
	Stars         int
	Followers     int
	Collaborators int
}

// Grade is the derived developer grade. Deterministic for identical inputs.
type Grade struct {
	Letter    string
	Score     float64
	Breakdown map[string]float64
	Stats     GradeStats
}

// Achievement is a manually supplied accolade rendered in the achievements
// widget.
type Achievement struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Date     string `yaml:"date"`
	Icon     string `yaml:"icon"`
}

// Facet wraps one independently computed slice of the model. A degraded facet
// carries an empty value plus the cause, so partial-failure handling is
// visible in the type instead of inferred from call sites.
type Facet[T any] struct {
	Value    T
	Degraded bool
	Err      error
}

// OK wraps a successfully computed facet value.
func OK[T any](v T) Facet[T] {
	return Facet[T]{Value: v}
}

// DegradedFacet marks a facet as failed; renderers fall back to an
// empty state.
func DegradedFacet[T any](err error) Facet[T] {
	var zero T
	return Facet[T]{Value: zero, Degraded: true, Err: err}
}

// WidgetModel is the aggregate consumed by every renderer. Built once per
// run, read-only afterward.
type WidgetModel struct {
	Profile      Profile
	AvatarData   string
	Repositories []Repository // ranked by UserCommits desc, Size asc

	Collaborators Facet[[]Collaborator]
	Timeline      Facet[[]ImpactWeek]
	Languages     Facet[[]LanguageStat]
	Focus         Facet[[]FocusArea]

	Tags         []Tag
	Grade        Grade
	Achievements []Achievement
}

// Fetcher is the read-only data source the aggregator consumes. The GitHub
// client implements it; tests substitute a fake.
type Fetcher interface {
	FetchProfile(ctx context.Context, username string) (Profile, error)
	FetchRepositories(ctx context.Context, username string) ([]Repository, error)
	FetchCommits(ctx context.Context, owner, repo, author string, limit int) ([]CommitEvent, error)
	FetchContributors(ctx context.Context, owner, repo string) ([]Contributor, error)
}
