package render

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/vukan322/devwidgets/internal/core"
	"github.com/vukan322/devwidgets/internal/themes"
)

// maxCollaboratorRows bounds what the widget displays, independent of how
// many collaborators the aggregator detected.
const maxCollaboratorRows = 4

type collaboratorRowVM struct {
	Y        int
	Avatar   string // data URI, empty for the initial fallback
	Hue      int
	Initial  string
	Username string
	Summary  string
	BarWidth float64
}

type collaboratorsViewModel struct {
	Theme themeColors
	Rows  []collaboratorRowVM
}

// Collaborators renders the top collaborators widget with avatars and
// commit bars.
func Collaborators(collabs []core.Collaborator, theme themes.Theme) (Widget, error) {
	tc := colors(theme)
	if len(collabs) == 0 {
		return emptyCard(KindCollaborators, "Top Collaborators", "No collaborators detected", tc)
	}

	shown := collabs
	if len(shown) > maxCollaboratorRows {
		shown = shown[:maxCollaboratorRows]
	}

	maxCommits := 1
	for _, c := range shown {
		if c.Commits > maxCommits {
			maxCommits = c.Commits
		}
	}

	vm := collaboratorsViewModel{Theme: tc}
	for i, c := range shown {
		row := collaboratorRowVM{
			Y:        i*50 + 20,
			Username: c.Username,
			Summary:  fmt.Sprintf("%d repos · %d commits", len(c.Repos), c.Commits),
			BarWidth: float64(c.Commits) / float64(maxCommits) * 130,
		}
		if strings.HasPrefix(c.AvatarURL, "data:") {
			row.Avatar = c.AvatarURL
		} else {
			row.Hue = usernameHue(c.Username)
			row.Initial = strings.ToUpper(c.Username[:1])
		}
		vm.Rows = append(vm.Rows, row)
	}

	inner, err := execute("collaborators.svg.tmpl", vm)
	if err != nil {
		return Widget{}, err
	}
	return card(KindCollaborators, "Top Collaborators", len(shown)*50+48, tc, inner)
}

// usernameHue picks a stable avatar-fallback hue per username.
func usernameHue(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32() % 360)
}
