package core

import (
	"time"

	"github.com/vukan322/devwidgets/internal/config"
)

// Normalization targets: a component saturates at 100% once the input reaches
// its target. Placeholder policy, like the weights themselves.
const (
	gradeCommitTarget  = 300.0
	gradeRepoTarget    = 30.0
	gradeCollabTarget  = 8.0
	gradeRecencyWindow = 90.0 // days
)

// GradeInputs are the aggregated signals the grade is computed from. Now is
// passed explicitly so the computation stays a pure function.
type GradeInputs struct {
	Commits       int
	Repos         int
	Collaborators int
	LastActivity  time.Time
	Now           time.Time

	// Headline numbers carried through for display only.
	Stars     int
	Followers int
}

// ComputeGrade maps weighted activity signals onto the discrete grade scale.
// Identical inputs always produce the identical grade.
func ComputeGrade(in GradeInputs, w config.GradeWeights) Grade {
	components := map[string]float64{
		"commits":       saturate(float64(in.Commits) / gradeCommitTarget),
		"repos":         saturate(float64(in.Repos) / gradeRepoTarget),
		"collaboration": saturate(float64(in.Collaborators) / gradeCollabTarget),
		"recency":       recencyScore(in.LastActivity, in.Now),
	}

	weightSum := w.Commits + w.Repos + w.Collaboration + w.Recency
	if weightSum == 0 {
		weightSum = 1
	}
	score := (w.Commits*components["commits"] +
		w.Repos*components["repos"] +
		w.Collaboration*components["collaboration"] +
		w.Recency*components["recency"]) / weightSum * 100

	breakdown := make(map[string]float64, len(components))
	for name, v := range components {
		breakdown[name] = v * 100
	}

	return Grade{
		Letter:    letterFor(score),
		Score:     score,
		Breakdown: breakdown,
		Stats: GradeStats{
			Commits:       in.Commits,
			Repos:         in.Repos,
			Stars:         in.Stars,
			Followers:     in.Followers,
			Collaborators: in.Collaborators,
		},
	}
}

func saturate(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// recencyScore decays linearly from 1 (active today) to 0 (no activity within
// the recency window).
func recencyScore(last, now time.Time) float64 {
	if last.IsZero() {
		return 0
	}
	days := now.Sub(last).Hours() / 24
	return saturate(1 - days/gradeRecencyWindow)
}

// gradeScale maps minimum scores to letters, highest first.
var gradeScale = []struct {
	min    float64
	letter string
}{
	{97, "S++"},
	{93, "S+"},
	{89, "S"},
	{86, "A++"},
	{82, "A+"},
	{78, "A"},
	{72, "A-"},
	{68, "B++"},
	{64, "B+"},
	{58, "B"},
	{50, "B-"},
	{42, "C+"},
	{35, "C"},
	{28, "C-"},
	{20, "D+"},
	{12, "D"},
	{5, "D-"},
}

func letterFor(score float64) string {
	for _, step := range gradeScale {
		if score >= step.min {
			return step.letter
		}
	}
	return "F"
}
