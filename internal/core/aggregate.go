package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vukan322/devwidgets/internal/config"
)

// contributorWorkers bounds the parallel contributor fetches across the
// top-ranked repositories.
const contributorWorkers = 4

// Aggregator turns raw fetcher output into a WidgetModel. The profile fetch
// is fatal; every other facet degrades independently to an empty state.
type Aggregator struct {
	fetcher Fetcher
	cfg     config.Config
	log     *logrus.Logger
	now     func() time.Time
}

// NewAggregator wires the aggregation pipeline. The logger only ever sees
// facet-level degradations and progress, never fatal errors.
func NewAggregator(fetcher Fetcher, cfg config.Config, log *logrus.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// Build runs the full pipeline: fetch, rank, detect collaborators, derive
// timeline, languages, focus, tags and grade.
func (a *Aggregator) Build(ctx context.Context, username string) (*WidgetModel, error) {
	profile, err := a.fetcher.FetchProfile(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	repos, reposErr := a.fetcher.FetchRepositories(ctx, username)
	if reposErr != nil {
		a.log.WithError(reposErr).Warn("repository fetch failed, downstream facets degrade to empty")
	}
	a.log.WithFields(logrus.Fields{"user": username, "repos": len(repos)}).Debug("repositories fetched")

	events, commitErr := a.fetchCommitActivity(ctx, username, repos)
	applyCommitCounts(repos, events)

	ranked := RankRepositories(repos)

	model := &WidgetModel{
		Profile:      profile,
		Repositories: ranked,
	}

	if reposErr != nil {
		model.Languages = DegradedFacet[[]LanguageStat](reposErr)
		model.Focus = DegradedFacet[[]FocusArea](reposErr)
	} else {
		model.Languages = OK(ComputeLanguages(ranked))
		model.Focus = OK(ComputeFocus(ranked, events))
		model.Tags = InferTags(ranked)
	}

	if commitErr != nil && len(events) == 0 {
		model.Timeline = DegradedFacet[[]ImpactWeek](commitErr)
	} else {
		model.Timeline = OK(BuildTimeline(events, a.now()))
	}

	model.Collaborators = a.collaboratorFacet(ctx, username, TopN(ranked, a.cfg.TopRepos))

	model.Grade = ComputeGrade(GradeInputs{
		Commits:       totalCommits(events),
		Repos:         len(repos),
		Collaborators: len(model.Collaborators.Value),
		LastActivity:  lastActivity(events),
		Now:           a.now(),
		Stars:         totalStars(repos),
		Followers:     profile.Followers,
	}, a.cfg.Weights)

	return model, nil
}

// fetchCommitActivity collects the user's recent commits from up to
// CommitMaxRepos repositories, CommitPerRepo each. A single repository's
// failure degrades only that repository.
func (a *Aggregator) fetchCommitActivity(ctx context.Context, username string, repos []Repository) ([]CommitEvent, error) {
	limit := a.cfg.CommitMaxRepos
	if limit > len(repos) {
		limit = len(repos)
	}

	var (
		events  []CommitEvent
		lastErr error
	)
	for _, repo := range repos[:limit] {
		evs, err := a.fetcher.FetchCommits(ctx, repo.Owner, repo.Name, username, a.cfg.CommitPerRepo)
		if err != nil {
			lastErr = err
			a.log.WithError(err).WithField("repo", repo.FullName).Warn("commit fetch failed, skipping repo")
			continue
		}
		events = append(events, evs...)
	}
	return events, lastErr
}

// collaboratorFacet fans contributor fetches out across the top repositories
// and aggregates deterministically afterward.
func (a *Aggregator) collaboratorFacet(ctx context.Context, username string, top []Repository) Facet[[]Collaborator] {
	if len(top) == 0 {
		return OK[[]Collaborator](nil)
	}

	var (
		mu             sync.Mutex
		contribsByRepo = make(map[string][]Contributor, len(top))
		failures       int
		lastErr        error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(contributorWorkers)
	for _, repo := range top {
		g.Go(func() error {
			contribs, err := a.fetcher.FetchContributors(gctx, repo.Owner, repo.Name)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				lastErr = err
				a.log.WithError(err).WithField("repo", repo.FullName).Warn("contributor fetch failed, skipping repo")
				return nil
			}
			contribsByRepo[repo.Name] = contribs
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures degrade per repo

	if failures == len(top) {
		return DegradedFacet[[]Collaborator](lastErr)
	}

	return OK(DetectCollaborators(username, contribsByRepo, CollaboratorParams{
		MinCommits:  a.cfg.MinCommits,
		MaxRepoSize: a.cfg.MaxRepoSize,
		MaxList:     a.cfg.MaxList,
	}))
}

// applyCommitCounts writes per-repo user commit counts back onto the
// repository records ahead of ranking.
func applyCommitCounts(repos []Repository, events []CommitEvent) {
	counts := make(map[string]int)
	for _, ev := range events {
		n := ev.Count
		if n == 0 {
			n = 1
		}
		counts[ev.Repo] += n
	}
	for i := range repos {
		repos[i].UserCommits = counts[repos[i].FullName]
	}
}

func totalCommits(events []CommitEvent) int {
	var total int
	for _, ev := range events {
		n := ev.Count
		if n == 0 {
			n = 1
		}
		total += n
	}
	return total
}

func totalStars(repos []Repository) int {
	var total int
	for _, r := range repos {
		total += r.Stars
	}
	return total
}

func lastActivity(events []CommitEvent) time.Time {
	var last time.Time
	for _, ev := range events {
		if ev.Timestamp.After(last) {
			last = ev.Timestamp
		}
	}
	return last
}
