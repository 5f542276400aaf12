// Package themes holds the static color palettes. Lookup is strict: an
// unknown name is an operator error, never silently substituted.
package themes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vukan322/devwidgets/internal/config"
)

// DefaultName is used when the caller supplies no theme at all.
const DefaultName = "dark"

// Theme is one color palette.
type Theme struct {
	Background     string
	CardBackground string
	CardBorder     string
	Text           string
	TextSecondary  string
	Accent         string
	Green          string
	Orange         string
	Red            string
	Purple         string
	Pink           string
	Grid           string
}

var palettes = map[string]Theme{
	"dark": {
		Background:     "#121820",
		CardBackground: "#1a2230",
		CardBorder:     "#2a3444",
		Text:           "#d1d9e0",
		TextSecondary:  "#7d8895",
		Accent:         "#58a6ff",
		Green:          "#3fb950",
		Orange:         "#d29922",
		Red:            "#f85149",
		Purple:         "#bc8cff",
		Pink:           "#f778ba",
		Grid:           "#1e2836",
	},
	"light": {
		Background:     "#ffffff",
		CardBackground: "#f6f8fa",
		CardBorder:     "#d8dee4",
		Text:           "#24292f",
		TextSecondary:  "#656d76",
		Accent:         "#0969da",
		Green:          "#1a7f37",
		Orange:         "#9a6700",
		Red:            "#cf222e",
		Purple:         "#8250df",
		Pink:           "#bf3989",
		Grid:           "#eaeef2",
	},
}

// Lookup resolves a theme by name. Unknown names fail with a *ConfigError
// naming the provided value.
func Lookup(name string) (Theme, error) {
	t, ok := palettes[name]
	if !ok {
		return Theme{}, &config.ConfigError{
			Name:  "theme",
			Value: name,
			Err:   fmt.Errorf("unknown theme, available: %s", strings.Join(Names(), ", ")),
		}
	}
	return t, nil
}

// Names lists the available theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// gradeColors keys off the letter's base (S, A, B, ...). These stay fixed
// across themes.
var gradeColors = map[byte]string{
	'S': "#ff6b9d",
	'A': "#3fb950",
	'B': "#58a6ff",
	'C': "#d29922",
	'D': "#f0883e",
	'F': "#f85149",
}

// GradeColor returns the display color for a grade letter.
func GradeColor(letter string, t Theme) string {
	if letter == "" {
		return t.Accent
	}
	if c, ok := gradeColors[letter[0]]; ok {
		return c
	}
	return t.Accent
}

// TagColors maps earned tag names to pill colors.
var TagColors = map[string]string{
	"ml-engineer":  "#bc8cff",
	"frontend":     "#58a6ff",
	"backend":      "#3fb950",
	"fullstack":    "#d29922",
	"devops":       "#f0883e",
	"database":     "#f778ba",
	"mobile":       "#ff6b9d",
	"security":     "#f85149",
	"data-science": "#79c0ff",
	"systems":      "#7ee787",
	"cloud":        "#58a6ff",
	"open-source":  "#3fb950",
}

// TagColor returns the pill color for a tag, falling back to the accent.
func TagColor(name string, t Theme) string {
	if c, ok := TagColors[name]; ok {
		return c
	}
	return t.Accent
}

// FocusPalette colors focus bars in rank order.
var FocusPalette = []string{
	"#58a6ff",
	"#3fb950",
	"#bc8cff",
	"#d29922",
	"#f0883e",
	"#f778ba",
	"#f85149",
	"#79c0ff",
}

// LanguageColors are the conventional per-language chart colors.
var LanguageColors = map[string]string{
	"Python":           "#3572A5",
	"JavaScript":       "#f1e05a",
	"TypeScript":       "#3178c6",
	"Go":               "#00ADD8",
	"Rust":             "#dea584",
	"Java":             "#b07219",
	"C++":              "#f34b7d",
	"C":                "#555555",
	"Ruby":             "#701516",
	"Shell":            "#89e051",
	"HTML":             "#e34c26",
	"CSS":              "#563d7c",
	"Kotlin":           "#A97BFF",
	"Swift":            "#F05138",
	"Jupyter Notebook": "#DA5B0B",
	"Dockerfile":       "#384d54",
}

// LanguageColor returns the chart color for a language, cycling through the
// focus palette for languages without a conventional color.
func LanguageColor(name string, index int) string {
	if c, ok := LanguageColors[name]; ok {
		return c
	}
	return FocusPalette[index%len(FocusPalette)]
}
