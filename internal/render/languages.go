package render

import (
	"fmt"
	"math"

	"github.com/vukan322/devwidgets/internal/core"
	"github.com/vukan322/devwidgets/internal/themes"
)

const (
	maxLanguageRows = 6
	donutRadius     = 44.0
)

type languageSegmentVM struct {
	Color  string
	Dash   float64
	Gap    float64
	Offset float64
}

type languageLegendVM struct {
	Y       int
	Color   string
	Name    string
	Percent string
}

type languagesViewModel struct {
	Theme         themeColors
	CX            float64
	CY            float64
	Radius        float64
	Circumference float64
	Segments      []languageSegmentVM
	Legend        []languageLegendVM
	TopLanguage   string
}

// Languages renders the language breakdown donut with a legend.
func Languages(stats []core.LanguageStat, theme themes.Theme) (Widget, error) {
	tc := colors(theme)
	if len(stats) == 0 {
		return emptyCard(KindLanguages, "Languages", "No language data", tc)
	}

	shown := stats
	if len(shown) > maxLanguageRows {
		shown = shown[:maxLanguageRows]
	}

	circumference := 2 * math.Pi * donutRadius
	vm := languagesViewModel{
		Theme:         tc,
		CX:            60,
		CY:            20 + float64(len(shown)*22)/2,
		Radius:        donutRadius,
		Circumference: circumference,
		TopLanguage:   shown[0].Name,
	}

	offset := 0.0
	for i, s := range shown {
		color := themes.LanguageColor(s.Name, i)
		dash := circumference * s.Percentage / 100
		vm.Segments = append(vm.Segments, languageSegmentVM{
			Color:  color,
			Dash:   dash,
			Gap:    circumference - dash,
			Offset: -offset,
		})
		vm.Legend = append(vm.Legend, languageLegendVM{
			Y:       i*22 + 20,
			Color:   color,
			Name:    s.Name,
			Percent: fmt.Sprintf("%.1f%%", s.Percentage),
		})
		offset += dash
	}

	inner, err := execute("languages.svg.tmpl", vm)
	if err != nil {
		return Widget{}, err
	}

	height := len(shown)*22 + 40
	if height < 120 {
		height = 120
	}
	return card(KindLanguages, "Languages", height+36, tc, inner)
}
