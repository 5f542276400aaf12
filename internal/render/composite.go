package render

import (
	"encoding/base64"

	"github.com/vukan322/devwidgets/internal/themes"
)

const (
	compositeWidth  = 420
	compositeHeader = 60
	compositeGap    = 16
	compositeFooter = 40
)

type compositePanelVM struct {
	Y      int
	Width  int
	Height int
	Href   string
}

type compositeViewModel struct {
	Theme    themeColors
	Width    int
	Height   int
	Username string
	Avatar   string
	Panels   []compositePanelVM
	FooterY  int
}

// Compose stacks rendered widgets into a single profile card. Each widget's
// markup is embedded as a base64 data URI so its own defs and animations
// stay isolated.
func Compose(username, avatar string, widgets []Widget, theme themes.Theme) (Widget, error) {
	tc := colors(theme)

	vm := compositeViewModel{
		Theme:    tc,
		Width:    compositeWidth,
		Username: username,
		Avatar:   avatar,
	}

	y := compositeHeader
	for i, w := range widgets {
		if i > 0 {
			y += compositeGap
		}
		vm.Panels = append(vm.Panels, compositePanelVM{
			Y:      y,
			Width:  w.Width,
			Height: w.Height,
			Href:   svgDataURI(w.Markup),
		})
		y += w.Height
	}

	vm.Height = y + compositeFooter + 10
	vm.FooterY = y + compositeFooter - 12

	markup, err := execute("composite.svg.tmpl", vm)
	if err != nil {
		return Widget{}, err
	}
	return Widget{Kind: "composite", Markup: markup, Width: compositeWidth, Height: vm.Height}, nil
}

func svgDataURI(markup string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(markup))
}
