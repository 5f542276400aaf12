package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manyContributors(n int) []Contributor {
	out := make([]Contributor, n)
	for i := range out {
		out[i] = Contributor{Username: string(rune('a'+i%26)) + string(rune('0'+i/26)), Commits: 20}
	}
	return out
}

func TestDetectCollaboratorsThresholds(t *testing.T) {
	params := CollaboratorParams{MinCommits: 10, MaxRepoSize: 100}

	contribs := map[string][]Contributor{
		"alpha": {
			{Username: "me", Commits: 50},
			{Username: "ada", Commits: 8},
			{Username: "bob", Commits: 12},
		},
		"beta": {
			{Username: "me", Commits: 30},
			{Username: "ada", Commits: 3},
			{Username: "bob", Commits: 4},
		},
	}

	got := DetectCollaborators("me", contribs, params)

	// ada accumulates 11 across both repos, bob 16; both pass the threshold.
	require.Len(t, got, 2)
	assert.Equal(t, "bob", got[0].Username)
	assert.Equal(t, 16, got[0].Commits)
	assert.Equal(t, []string{"alpha", "beta"}, got[0].Repos)
	assert.Equal(t, "ada", got[1].Username)
	assert.Equal(t, 11, got[1].Commits)
}

func TestDetectCollaboratorsDropsBelowMinCommits(t *testing.T) {
	contribs := map[string][]Contributor{
		"alpha": {{Username: "ada", Commits: 8}},
	}

	got := DetectCollaborators("me", contribs, CollaboratorParams{MinCommits: 10, MaxRepoSize: 100})
	assert.Empty(t, got, "a contributor with 8 accumulated commits must not pass the default threshold")
}

func TestDetectCollaboratorsSkipsLargeRepos(t *testing.T) {
	large := append(manyContributors(150), Contributor{Username: "ada", Commits: 500})
	contribs := map[string][]Contributor{
		"huge-oss": large,
		"small":    {{Username: "eva", Commits: 25}},
	}

	got := DetectCollaborators("me", contribs, CollaboratorParams{MinCommits: 10, MaxRepoSize: 100})

	require.Len(t, got, 1)
	assert.Equal(t, "eva", got[0].Username, "contributors from repos at or above the size cap are ignored")
}

func TestDetectCollaboratorsExcludesSelf(t *testing.T) {
	contribs := map[string][]Contributor{
		"alpha": {
			{Username: "Me", Commits: 99},
			{Username: "ada", Commits: 15},
		},
	}

	got := DetectCollaborators("me", contribs, CollaboratorParams{MinCommits: 10, MaxRepoSize: 100})

	require.Len(t, got, 1)
	assert.Equal(t, "ada", got[0].Username)
}

func TestDetectCollaboratorsDeterministicTieBreak(t *testing.T) {
	contribs := map[string][]Contributor{
		"alpha": {
			{Username: "zoe", Commits: 15},
			{Username: "ada", Commits: 15},
			{Username: "mia", Commits: 15},
		},
	}
	params := CollaboratorParams{MinCommits: 10, MaxRepoSize: 100}

	first := DetectCollaborators("me", contribs, params)
	second := DetectCollaborators("me", contribs, params)

	require.Len(t, first, 3)
	assert.Equal(t, "ada", first[0].Username)
	assert.Equal(t, "mia", first[1].Username)
	assert.Equal(t, "zoe", first[2].Username)
	assert.Equal(t, first, second)
}

func TestDetectCollaboratorsTruncation(t *testing.T) {
	contribs := map[string][]Contributor{
		"alpha": {
			{Username: "ada", Commits: 40},
			{Username: "bob", Commits: 30},
			{Username: "cyd", Commits: 20},
		},
	}

	got := DetectCollaborators("me", contribs, CollaboratorParams{MinCommits: 10, MaxRepoSize: 100, MaxList: 2})

	require.Len(t, got, 2)
	assert.Equal(t, "ada", got[0].Username)
	assert.Equal(t, "bob", got[1].Username)
}
