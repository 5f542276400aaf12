package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankRepositoriesByCommitsThenSize(t *testing.T) {
	repos := []Repository{
		{FullName: "me/big", UserCommits: 30, Size: 9000},
		{FullName: "me/tiny", UserCommits: 30, Size: 100},
		{FullName: "me/main", UserCommits: 50, Size: 5000},
		{FullName: "me/old", UserCommits: 10, Size: 400},
	}

	ranked := RankRepositories(repos)

	want := []string{"me/main", "me/tiny", "me/big", "me/old"}
	got := make([]string, len(ranked))
	for i, r := range ranked {
		got[i] = r.FullName
	}
	assert.Equal(t, want, got)

	// Input order must survive untouched.
	assert.Equal(t, "me/big", repos[0].FullName)
}

func TestRankRepositoriesStable(t *testing.T) {
	repos := []Repository{
		{FullName: "me/a", UserCommits: 5, Size: 10},
		{FullName: "me/b", UserCommits: 5, Size: 10},
	}

	first := RankRepositories(repos)
	second := RankRepositories(repos)
	assert.Equal(t, first, second, "equal inputs must rank identically on every run")
	assert.Equal(t, "me/a", first[0].FullName)
}

func TestTopNBoundsFanOut(t *testing.T) {
	repos := []Repository{
		{FullName: "me/a", UserCommits: 50},
		{FullName: "me/b", UserCommits: 30},
		{FullName: "me/c", UserCommits: 10},
	}
	ranked := RankRepositories(repos)

	top := TopN(ranked, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "me/a", top[0].FullName)
	assert.Equal(t, "me/b", top[1].FullName)

	assert.Len(t, TopN(ranked, 0), 3, "zero means no bound")
	assert.Len(t, TopN(ranked, 10), 3)
}
