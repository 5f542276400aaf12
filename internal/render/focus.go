package render

import (
	"fmt"

	"github.com/vukan322/devwidgets/internal/core"
	"github.com/vukan322/devwidgets/internal/themes"
)

const maxFocusRows = 6

type focusRowVM struct {
	Y        int
	Label    string
	Color    string
	BarWidth float64
	Commits  string
	Percent  string
}

type focusViewModel struct {
	Theme     themeColors
	Rows      []focusRowVM
	SubtitleY int
}

// Focus renders the recent-focus bar widget, one row per activity category.
func Focus(areas []core.FocusArea, theme themes.Theme) (Widget, error) {
	tc := colors(theme)
	if len(areas) == 0 {
		return emptyCard(KindFocus, "Recent Focus", "No recent activity", tc)
	}

	shown := areas
	if len(shown) > maxFocusRows {
		shown = shown[:maxFocusRows]
	}

	maxPct := shown[0].Percentage
	for _, a := range shown {
		if a.Percentage > maxPct {
			maxPct = a.Percentage
		}
	}
	if maxPct == 0 {
		maxPct = 1
	}

	palette := themes.FocusPalette
	vm := focusViewModel{Theme: tc, SubtitleY: len(shown)*36 + 8}
	for i, a := range shown {
		vm.Rows = append(vm.Rows, focusRowVM{
			Y:        i * 36,
			Label:    a.Category,
			Color:    palette[i%len(palette)],
			BarWidth: a.Percentage / maxPct * 210,
			Commits:  fmt.Sprintf("%d commits", a.Commits),
			Percent:  fmt.Sprintf("%.0f%%", a.Percentage),
		})
	}

	inner, err := execute("focus.svg.tmpl", vm)
	if err != nil {
		return Widget{}, err
	}
	return card(KindFocus, "Recent Focus", len(shown)*36+54, tc, inner)
}
