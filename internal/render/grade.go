package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/vukan322/devwidgets/internal/core"
	"github.com/vukan322/devwidgets/internal/themes"
)

const (
	gradeRingRadius = 36.0
	gradeStatsY     = 100
	pillRowWidth    = 340
	pillRowHeight   = 30
)

type gradeStatVM struct {
	X     float64
	Icon  string
	Value string
	Label string
}

type gradePillVM struct {
	X     int
	Y     int
	Width int
	TextX int
	Color string
	Label string
}

type gradeViewModel struct {
	Theme         themeColors
	Color         string
	Letter        string
	ScoreText     string
	Radius        float64
	Circumference float64
	Offset        float64
	FontSize      int
	Stats         []gradeStatVM
	StatsY        int
	Pills         []gradePillVM
	TagsY         int
}

// Grade renders the developer grade widget: score ring, headline stats and
// earned tag pills.
func Grade(g core.Grade, tags []core.Tag, theme themes.Theme) (Widget, error) {
	tc := colors(theme)
	color := themes.GradeColor(g.Letter, theme)

	circumference := 2 * math.Pi * gradeRingRadius
	score := math.Max(0, math.Min(g.Score, 100))

	fontSize := 30
	if len(g.Letter) > 2 {
		fontSize = 22
	}

	vm := gradeViewModel{
		Theme:         tc,
		Color:         color,
		Letter:        g.Letter,
		ScoreText:     fmt.Sprintf("%.0f", score),
		Radius:        gradeRingRadius,
		Circumference: circumference,
		Offset:        circumference * (1 - score/100),
		FontSize:      fontSize,
		Stats:         gradeStats(g.Stats, tc),
		StatsY:        gradeStatsY,
		TagsY:         gradeStatsY + 54,
	}

	height := gradeStatsY + 54
	if len(tags) > 0 {
		vm.Pills = tagPills(tags, theme)
		tagsHeight := vm.Pills[len(vm.Pills)-1].Y + 24
		padding := 14
		if tagsHeight > 24 {
			padding = 18
		}
		height = vm.TagsY + tagsHeight + padding
	}

	inner, err := execute("grade.svg.tmpl", vm)
	if err != nil {
		return Widget{}, err
	}
	return card(KindGrade, "", height, tc, inner)
}

func gradeStats(s core.GradeStats, tc themeColors) []gradeStatVM {
	entries := []struct {
		icon  string
		value int
		label string
	}{
		{"commits", s.Commits, "Commits"},
		{"stars", s.Stars, "Stars"},
		{"repos", s.Repos, "Repos"},
		{"followers", s.Followers, "Followers"},
		{"collaborators", s.Collaborators, "Collabs"},
	}

	cellWidth := float64(pillRowWidth) / float64(len(entries))
	stats := make([]gradeStatVM, len(entries))
	for i, e := range entries {
		stats[i] = gradeStatVM{
			X:     float64(i)*cellWidth + cellWidth/2,
			Icon:  statIcon(e.icon, tc.TextSecondary),
			Value: formatStat(e.value),
			Label: e.label,
		}
	}
	return stats
}

func tagPills(tags []core.Tag, theme themes.Theme) []gradePillVM {
	pills := make([]gradePillVM, 0, len(tags))
	x, y := 0, 0
	for _, tag := range tags {
		label := titleCase(strings.ReplaceAll(tag.Name, "-", " "))
		width := int(float64(len(label))*6.6 + 18)
		if x+width > pillRowWidth {
			x = 0
			y += pillRowHeight
		}
		pills = append(pills, gradePillVM{
			X:     x,
			Y:     y,
			Width: width,
			TextX: width / 2,
			Color: themes.TagColor(tag.Name, theme),
			Label: label,
		})
		x += width + 6
	}
	return pills
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// formatStat renders large counts compactly: 1423 -> "1,423", 250000 -> "250k".
func formatStat(v int) string {
	if v >= 100000 {
		return fmt.Sprintf("%.0fk", float64(v)/1000)
	}
	s := fmt.Sprint(v)
	if v < 1000 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// statIcon returns a 14x14 icon for one headline stat.
func statIcon(kind, color string) string {
	switch kind {
	case "commits":
		return fmt.Sprintf(`<circle cx="7" cy="7" r="3" fill="none" stroke="%[1]s" stroke-width="1.4"/><circle cx="7" cy="7" r="1" fill="%[1]s"/><line x1="7" y1="10" x2="7" y2="14" stroke="%[1]s" stroke-width="1.4"/><line x1="7" y1="0" x2="7" y2="4" stroke="%[1]s" stroke-width="1.4"/>`, color)
	case "stars":
		return fmt.Sprintf(`<path d="M7 1l1.8 3.6 4 .6-2.9 2.8.7 4L7 10.2 3.4 12l.7-4L1.2 5.2l4-.6z" fill="%s" opacity="0.85"/>`, color)
	case "repos":
		return fmt.Sprintf(`<rect x="2" y="1" width="10" height="12" rx="1.5" fill="none" stroke="%[1]s" stroke-width="1.2"/><line x1="5" y1="4" x2="9" y2="4" stroke="%[1]s" stroke-width="1"/><line x1="5" y1="6.5" x2="9" y2="6.5" stroke="%[1]s" stroke-width="1"/><line x1="5" y1="9" x2="7" y2="9" stroke="%[1]s" stroke-width="1"/>`, color)
	case "followers":
		return fmt.Sprintf(`<circle cx="5" cy="4" r="2.5" fill="none" stroke="%[1]s" stroke-width="1.2"/><path d="M0.5 12c0-2.5 2-4 4.5-4s4.5 1.5 4.5 4" fill="none" stroke="%[1]s" stroke-width="1.2"/><circle cx="11" cy="3.5" r="1.8" fill="none" stroke="%[1]s" stroke-width="1"/><path d="M10 7.5c1.5 0 3.5 1 3.5 3" fill="none" stroke="%[1]s" stroke-width="1"/>`, color)
	case "collaborators":
		return fmt.Sprintf(`<circle cx="4" cy="4" r="2" fill="none" stroke="%[1]s" stroke-width="1.2"/><circle cx="10" cy="10" r="2" fill="none" stroke="%[1]s" stroke-width="1.2"/><path d="M4 6v4c0 1.1.9 2 2 2h2" fill="none" stroke="%[1]s" stroke-width="1.2"/>`, color)
	default:
		return ""
	}
}
