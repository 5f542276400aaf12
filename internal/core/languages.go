package core

import "sort"

// ComputeLanguages sums repository byte counts per primary language across
// all repositories and derives each language's percentage share. Languages
// with zero bytes are excluded; percentages sum to 100 within rounding.
func ComputeLanguages(repos []Repository) []LanguageStat {
	totals := make(map[string]int64)
	var grand int64
	for _, r := range repos {
		if r.Language == "" || r.Size <= 0 {
			continue
		}
		totals[r.Language] += r.Size
		grand += r.Size
	}
	if grand == 0 {
		return nil
	}

	stats := make([]LanguageStat, 0, len(totals))
	for name, bytes := range totals {
		stats = append(stats, LanguageStat{
			Name:       name,
			Bytes:      bytes,
			Percentage: float64(bytes) / float64(grand) * 100,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Bytes != stats[j].Bytes {
			return stats[i].Bytes > stats[j].Bytes
		}
		return stats[i].Name < stats[j].Name
	})

	return stats
}
