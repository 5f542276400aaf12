package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/vukan322/devwidgets/internal/achievements"
	"github.com/vukan322/devwidgets/internal/config"
	"github.com/vukan322/devwidgets/internal/core"
	"github.com/vukan322/devwidgets/internal/github"
	"github.com/vukan322/devwidgets/internal/render"
	"github.com/vukan322/devwidgets/internal/themes"
)

var (
	outPath          string
	widgetKind       string
	achievementsPath string
	openOutput       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <username> [theme]",
	Short: "Render the profile card (or a single widget) for a GitHub user",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file path (default: stdout)")
	generateCmd.Flags().StringVarP(&widgetKind, "widget", "w", "", "render a single widget kind instead of the composite card")
	generateCmd.Flags().StringVarP(&achievementsPath, "achievements", "a", "", "YAML file with achievement entries")
	generateCmd.Flags().BoolVar(&openOutput, "open", false, "open the generated file in a browser (requires --out)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	username := args[0]

	themeName := themes.DefaultName
	if len(args) == 2 {
		themeName = args[1]
	}

	// Theme, config and achievements are validated before the first API call.
	theme, err := themes.Lookup(themeName)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var entries []core.Achievement
	if achievementsPath != "" {
		entries, err = achievements.Load(achievementsPath)
		if err != nil {
			return err
		}
	}

	if widgetKind != "" && !validKind(widgetKind) {
		return fmt.Errorf("unknown widget kind %q (known: %v)", widgetKind, render.Kinds())
	}

	if openOutput && outPath == "" {
		return fmt.Errorf("--open requires --out")
	}

	if cfg.Token == "" {
		logger.Warn("GITHUB_TOKEN not set, using unauthenticated GitHub API (rate limited)")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := github.NewClient(cfg.Token, cfg.Timeout)

	model, err := core.NewAggregator(client, cfg, logger).Build(ctx, username)
	if err != nil {
		return err
	}
	model.Achievements = entries

	if avatar, err := client.FetchAvatar(ctx, model.Profile.AvatarURL); err != nil {
		logger.WithError(err).Warn("avatar fetch failed, header falls back to a placeholder")
	} else {
		model.AvatarData = avatar
	}

	markup, err := renderOutput(model, theme)
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), markup)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(markup+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.WithField("path", outPath).Debug("output written")

	if openOutput {
		if err := browser.OpenFile(outPath); err != nil {
			logger.WithError(err).Warn("could not open output in browser")
		}
	}
	return nil
}

// renderOutput builds either the requested single widget or the full
// composite card.
func renderOutput(model *core.WidgetModel, theme themes.Theme) (string, error) {
	widgets, err := renderWidgets(model, theme)
	if err != nil {
		return "", err
	}

	if widgetKind != "" {
		for _, w := range widgets {
			if w.Kind == widgetKind {
				return w.Markup, nil
			}
		}
		// Only achievements can be absent, when no file was supplied.
		return "", fmt.Errorf("widget %q has no data to render", widgetKind)
	}

	composite, err := render.Compose(model.Profile.Username, model.AvatarData, widgets, theme)
	if err != nil {
		return "", err
	}
	return composite.Markup, nil
}

// renderWidgets renders every widget in composition order. Degraded facets
// render their empty states rather than aborting the run.
func renderWidgets(model *core.WidgetModel, theme themes.Theme) ([]render.Widget, error) {
	var widgets []render.Widget

	for _, kind := range render.Kinds() {
		var (
			w   render.Widget
			err error
		)
		switch kind {
		case render.KindGrade:
			w, err = render.Grade(model.Grade, model.Tags, theme)
		case render.KindImpact:
			w, err = render.Impact(model.Timeline.Value, theme)
		case render.KindCollaborators:
			w, err = render.Collaborators(model.Collaborators.Value, theme)
		case render.KindFocus:
			w, err = render.Focus(model.Focus.Value, theme)
		case render.KindLanguages:
			w, err = render.Languages(model.Languages.Value, theme)
		case render.KindAchievements:
			if len(model.Achievements) == 0 {
				continue
			}
			w, err = render.Achievements(model.Achievements, theme)
		}
		if err != nil {
			return nil, err
		}
		widgets = append(widgets, w)
	}
	return widgets, nil
}

func validKind(kind string) bool {
	for _, k := range render.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}
