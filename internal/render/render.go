// Package render turns slices of the widget model into SVG markup. Every
// renderer is a pure function of (model slice, theme); geometry is computed
// in Go and handed to embedded templates as a view model.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/vukan322/devwidgets/internal/themes"
)

// Widget kinds, in default composition order.
const (
	KindGrade         = "grade"
	KindImpact        = "impact"
	KindCollaborators = "collaborators"
	KindFocus         = "focus"
	KindLanguages     = "languages"
	KindAchievements  = "achievements"
)

// Kinds lists every widget kind in the order the composer stacks them.
func Kinds() []string {
	return []string{KindGrade, KindImpact, KindCollaborators, KindFocus, KindLanguages, KindAchievements}
}

// widgetWidth is the fixed width of every individual widget card.
const widgetWidth = 380

const fontFamily = "-apple-system,BlinkMacSystemFont,Segoe UI,Helvetica,Arial,sans-serif"

// Widget is one rendered SVG document plus its dimensions, so the composer
// can lay widgets out without re-parsing markup.
type Widget struct {
	Kind   string
	Markup string
	Width  int
	Height int
}

//go:embed templates/*.svg.tmpl
var templateFS embed.FS

var tmpl = template.Must(
	template.New("widgets").
		Funcs(template.FuncMap{
			"addf":    func(a, b float64) float64 { return a + b },
			"subf":    func(a, b float64) float64 { return a - b },
			"mulf":    func(a, b float64) float64 { return a * b },
			"divf":    func(a, b float64) float64 { return a / b },
			"add":     func(a, b int) int { return a + b },
			"sub":     func(a, b int) int { return a - b },
			"float64": func(i int) float64 { return float64(i) },
			"escape":  EscapeText,
			"upper":   strings.ToUpper,
			"font":    func() string { return fontFamily },
		}).
		ParseFS(templateFS, "templates/*.svg.tmpl"),
)

// EscapeText escapes text content for SVG markup.
func EscapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// cardViewModel wraps pre-rendered inner markup into the shared card chrome.
type cardViewModel struct {
	Width  int
	Height int
	Title  string
	Theme  themeColors
	Inner  string
}

// themeColors is the template-facing view of a theme.
type themeColors struct {
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

func colors(t themes.Theme) themeColors {
	return themeColors{
		Background:     t.Background,
		CardBackground: t.CardBackground,
		CardBorder:     t.CardBorder,
		Text:           t.Text,
		TextSecondary:  t.TextSecondary,
		Accent:         t.Accent,
		Green:          t.Green,
		Orange:         t.Orange,
		Red:            t.Red,
		Purple:         t.Purple,
		Pink:           t.Pink,
		Grid:           t.Grid,
	}
}

func card(kind, title string, height int, tc themeColors, inner string) (Widget, error) {
	markup, err := execute("card.svg.tmpl", cardViewModel{
		Width:  widgetWidth,
		Height: height,
		Title:  title,
		Theme:  tc,
		Inner:  inner,
	})
	if err != nil {
		return Widget{}, err
	}
	return Widget{Kind: kind, Markup: markup, Width: widgetWidth, Height: height}, nil
}

// emptyHeight is the card height of an empty-state widget.
const emptyHeight = 90

type emptyViewModel struct {
	Theme   themeColors
	Message string
	CenterX int
}

// emptyCard renders the graceful empty state a widget degrades to.
func emptyCard(kind, title, message string, tc themeColors) (Widget, error) {
	inner, err := execute("empty.svg.tmpl", emptyViewModel{
		Theme:   tc,
		Message: message,
		CenterX: widgetWidth / 2,
	})
	if err != nil {
		return Widget{}, err
	}
	return card(kind, title, emptyHeight, tc, inner)
}
