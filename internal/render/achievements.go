package render

import (
	"fmt"
	"strings"

	"github.com/vukan322/devwidgets/internal/core"
	"github.com/vukan322/devwidgets/internal/themes"
)

const maxAchievementRows = 5

type achievementRowVM struct {
	Y        int
	Icon     string
	Color    string
	Title    string
	Subtitle string
}

type achievementsViewModel struct {
	Theme themeColors
	Rows  []achievementRowVM
}

// Achievements renders the milestones widget, one highlighted row per entry.
func Achievements(entries []core.Achievement, theme themes.Theme) (Widget, error) {
	tc := colors(theme)
	if len(entries) == 0 {
		return emptyCard(KindAchievements, "Achievements", "No achievements yet", tc)
	}

	shown := entries
	if len(shown) > maxAchievementRows {
		shown = shown[:maxAchievementRows]
	}

	accents := []string{tc.Orange, tc.Green, tc.Accent, tc.Purple, tc.Pink}
	vm := achievementsViewModel{Theme: tc}
	for i, a := range shown {
		color := accents[i%len(accents)]
		subtitle := a.Subtitle
		if a.Date != "" {
			subtitle = subtitle + " · " + a.Date
		}
		vm.Rows = append(vm.Rows, achievementRowVM{
			Y:        i*56 + 8,
			Icon:     achievementIcon(a.Icon, color),
			Color:    color,
			Title:    a.Title,
			Subtitle: strings.TrimPrefix(subtitle, " · "),
		})
	}

	inner, err := execute("achievements.svg.tmpl", vm)
	if err != nil {
		return Widget{}, err
	}
	return card(KindAchievements, "Achievements", len(shown)*56+50, tc, inner)
}

// achievementIcon returns a 24x24 icon for the given kind, defaulting to the
// trophy when the kind is unknown.
func achievementIcon(kind, color string) string {
	switch kind {
	case "medal":
		return fmt.Sprintf(`<circle cx="12" cy="15" r="6" fill="none" stroke="%[1]s" stroke-width="1.6"/><path d="M8 10L5 2h5l2 5 2-5h5l-3 8" fill="none" stroke="%[1]s" stroke-width="1.6" stroke-linejoin="round"/><circle cx="12" cy="15" r="2.2" fill="%[1]s"/>`, color)
	case "star":
		return fmt.Sprintf(`<path d="M12 2l3 6.3 7 .9-5.1 4.8 1.3 6.8L12 17.5 5.8 20.8 7.1 14 2 9.2l7-.9z" fill="%s" opacity="0.9"/>`, color)
	case "hackathon":
		return fmt.Sprintf(`<path d="M13 2L5 13h6l-1 9 8-11h-6z" fill="%s" opacity="0.9"/>`, color)
	default:
		return fmt.Sprintf(`<path d="M7 3h10v5a5 5 0 01-10 0z" fill="none" stroke="%[1]s" stroke-width="1.6"/><path d="M7 5H3.5a3.5 3.5 0 003.5 4M17 5h3.5A3.5 3.5 0 0117 9" fill="none" stroke="%[1]s" stroke-width="1.4"/><line x1="12" y1="13" x2="12" y2="17" stroke="%[1]s" stroke-width="1.6"/><path d="M8 20h8M10 17h4v3h-4z" fill="none" stroke="%[1]s" stroke-width="1.4"/>`, color)
	}
}
