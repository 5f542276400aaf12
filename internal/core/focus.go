package core

import "sort"

// focusByLanguage maps a repository's primary language to an activity
// category shown in the focus widget.
var focusByLanguage = map[string]string{
	"Python":           "Python",
	"JavaScript":       "Frontend",
	"TypeScript":       "Frontend",
	"HTML":             "Frontend",
	"CSS":              "Frontend",
	"Go":               "Backend",
	"Java":             "Backend",
	"Ruby":             "Backend",
	"PHP":              "Backend",
	"Rust":             "Systems",
	"C++":              "Systems",
	"C":                "Systems",
	"Shell":            "DevOps",
	"Dockerfile":       "DevOps",
	"Jupyter Notebook": "ML",
}

// ComputeFocus classifies the user's commits into focus categories via the
// language of the repository each commit landed in. When no commits were
// fetched it falls back to counting one per repository with a language.
func ComputeFocus(repos []Repository, events []CommitEvent) []FocusArea {
	langByRepo := make(map[string]string, len(repos))
	for _, r := range repos {
		if r.Language != "" {
			langByRepo[r.FullName] = r.Language
		}
	}

	counts := make(map[string]int)
	for _, ev := range events {
		lang, ok := langByRepo[ev.Repo]
		if !ok {
			continue
		}
		category, ok := focusByLanguage[lang]
		if !ok {
			category = "Other"
		}
		n := ev.Count
		if n == 0 {
			n = 1
		}
		counts[category] += n
	}

	if len(counts) == 0 {
		for _, r := range repos {
			if r.Language == "" {
				continue
			}
			category, ok := focusByLanguage[r.Language]
			if !ok {
				category = "Other"
			}
			counts[category]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	var total int
	for _, n := range counts {
		total += n
	}

	areas := make([]FocusArea, 0, len(counts))
	for category, n := range counts {
		areas = append(areas, FocusArea{
			Category:   category,
			Percentage: float64(n) / float64(total) * 100,
			Commits:    n,
		})
	}

	sort.Slice(areas, func(i, j int) bool {
		if areas[i].Commits != areas[j].Commits {
			return areas[i].Commits > areas[j].Commits
		}
		return areas[i].Category < areas[j].Category
	})

	return areas
}
