package core

import (
	"sort"
	"strings"
)

// CollaboratorParams are the detection thresholds, passed explicitly so tests
// parameterize directly instead of mutating the environment.
type CollaboratorParams struct {
	MinCommits  int
	MaxRepoSize int
	MaxList     int // 0 = no truncation
}

// DetectCollaborators finds contributors who share commit history with the
// target user. contribsByRepo maps a repository name to its contributor list,
// covering only the top-ranked repositories.
//
// Repositories whose contributor count reaches MaxRepoSize are skipped
// entirely: in a large OSS project the "collaborator" signal is noise.
// Contributors below MinCommits accumulated commits are dropped. The result
// is ordered by commits descending, username ascending, so identical inputs
// always yield identical output.
func DetectCollaborators(self string, contribsByRepo map[string][]Contributor, p CollaboratorParams) []Collaborator {
	repoNames := make([]string, 0, len(contribsByRepo))
	for name := range contribsByRepo {
		repoNames = append(repoNames, name)
	}
	sort.Strings(repoNames)

	type bucket struct {
		commits   int
		avatarURL string
		repos     map[string]struct{}
	}
	byUser := make(map[string]*bucket)

	for _, repo := range repoNames {
		contribs := contribsByRepo[repo]
		if p.MaxRepoSize > 0 && len(contribs) >= p.MaxRepoSize {
			continue
		}
		for _, c := range contribs {
			if c.Username == "" || strings.EqualFold(c.Username, self) {
				continue
			}
			b, ok := byUser[c.Username]
			if !ok {
				b = &bucket{repos: make(map[string]struct{})}
				byUser[c.Username] = b
			}
			b.commits += c.Commits
			b.repos[repo] = struct{}{}
			if b.avatarURL == "" {
				b.avatarURL = c.AvatarURL
			}
		}
	}

	collabs := make([]Collaborator, 0, len(byUser))
	for username, b := range byUser {
		if b.commits < p.MinCommits {
			continue
		}
		repos := make([]string, 0, len(b.repos))
		for r := range b.repos {
			repos = append(repos, r)
		}
		sort.Strings(repos)
		collabs = append(collabs, Collaborator{
			Username:  username,
			AvatarURL: b.avatarURL,
			Commits:   b.commits,
			Repos:     repos,
		})
	}

	sort.Slice(collabs, func(i, j int) bool {
		if collabs[i].Commits != collabs[j].Commits {
			return collabs[i].Commits > collabs[j].Commits
		}
		return collabs[i].Username < collabs[j].Username
	})

	if p.MaxList > 0 && len(collabs) > p.MaxList {
		collabs = collabs[:p.MaxList]
	}

	return collabs
}
