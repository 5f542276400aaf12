package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/devwidgets/internal/config"
)

var gradeNow = time.Date(2026, time.August, 21, 12, 0, 0, 0, time.UTC)

func TestComputeGradePure(t *testing.T) {
	in := GradeInputs{
		Commits:       180,
		Repos:         12,
		Collaborators: 3,
		LastActivity:  gradeNow.AddDate(0, 0, -9),
		Now:           gradeNow,
		Stars:         42,
		Followers:     17,
	}
	w := config.DefaultWeights()

	first := ComputeGrade(in, w)
	second := ComputeGrade(in, w)

	assert.Equal(t, first, second, "identical inputs must yield the identical grade")
	assert.Equal(t, first.Letter, letterFor(first.Score))
}

func TestComputeGradeSaturatedInputs(t *testing.T) {
	in := GradeInputs{
		Commits:       10000,
		Repos:         500,
		Collaborators: 50,
		LastActivity:  gradeNow,
		Now:           gradeNow,
	}

	g := ComputeGrade(in, config.DefaultWeights())

	assert.InDelta(t, 100.0, g.Score, 1e-9)
	assert.Equal(t, "S++", g.Letter)
	for name, v := range g.Breakdown {
		assert.InDelta(t, 100.0, v, 1e-9, name)
	}
}

func TestComputeGradeInactiveAccount(t *testing.T) {
	g := ComputeGrade(GradeInputs{Now: gradeNow}, config.DefaultWeights())

	assert.InDelta(t, 0.0, g.Score, 1e-9)
	assert.Equal(t, "F", g.Letter)
}

func TestComputeGradeWeightsShiftScore(t *testing.T) {
	in := GradeInputs{
		Commits:      300, // saturated
		Repos:        0,
		LastActivity: gradeNow.AddDate(0, 0, -200), // stale
		Now:          gradeNow,
	}

	commitHeavy := ComputeGrade(in, config.GradeWeights{Commits: 1})
	recencyHeavy := ComputeGrade(in, config.GradeWeights{Recency: 1})

	assert.InDelta(t, 100.0, commitHeavy.Score, 1e-9)
	assert.InDelta(t, 0.0, recencyHeavy.Score, 1e-9)
}

func TestLetterScaleBoundaries(t *testing.T) {
	tests := []struct {
		score  float64
		letter string
	}{
		{100, "S++"},
		{97, "S++"},
		{96.9, "S+"},
		{89, "S"},
		{86, "A++"},
		{78, "A"},
		{50, "B-"},
		{35, "C"},
		{12, "D"},
		{4.9, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.letter, letterFor(tt.score), "score %.1f", tt.score)
	}
}

func TestRecencyScoreDecay(t *testing.T) {
	require.InDelta(t, 1.0, recencyScore(gradeNow, gradeNow), 1e-9)
	assert.InDelta(t, 0.5, recencyScore(gradeNow.AddDate(0, 0, -45), gradeNow), 1e-9)
	assert.InDelta(t, 0.0, recencyScore(gradeNow.AddDate(0, 0, -90), gradeNow), 1e-9)
	assert.InDelta(t, 0.0, recencyScore(time.Time{}, gradeNow), 1e-9)
}
