package core

import "sort"

// RankRepositories orders repositories by the user's commit count descending,
// breaking ties by size ascending (smaller, more personal repos first). The
// input slice is not mutated.
func RankRepositories(repos []Repository) []Repository {
	ranked := make([]Repository, len(repos))
	copy(ranked, repos)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].UserCommits != ranked[j].UserCommits {
			return ranked[i].UserCommits > ranked[j].UserCommits
		}
		if ranked[i].Size != ranked[j].Size {
			return ranked[i].Size < ranked[j].Size
		}
		return ranked[i].FullName < ranked[j].FullName
	})

	return ranked
}

// TopN returns at most n leading repositories of an already ranked list. This
// subset bounds the per-repo contributor fan-out.
func TopN(ranked []Repository, n int) []Repository {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
