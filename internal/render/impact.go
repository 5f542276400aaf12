package render

import (
	"fmt"
	"strings"

	"github.com/vukan322/devwidgets/internal/core"
	"github.com/vukan322/devwidgets/internal/themes"
)

const (
	impactHeight = 200
	chartX       = 40.0
	chartY       = 8.0
	chartWidth   = 316.0
	chartHeight  = 82.0
)

type impactAxisLabelVM struct {
	X     float64
	Y     float64
	Value string
}

type impactViewModel struct {
	Theme       themeColors
	LinePath    string
	AreaPath    string
	YLabels     []impactAxisLabelVM
	XLabels     []impactAxisLabelVM
	GridTop     float64
	GridBottom  float64
	Total       string
	SummaryY    float64
	PeriodLabel string
}

// Impact renders the weekly commit-activity area chart.
func Impact(weeks []core.ImpactWeek, theme themes.Theme) (Widget, error) {
	tc := colors(theme)
	if len(weeks) == 0 {
		return emptyCard(KindImpact, "Impact Timeline", "No recent commit activity", tc)
	}

	maxCommits := 1
	total := 0
	for _, w := range weeks {
		total += w.Commits
		if w.Commits > maxCommits {
			maxCommits = w.Commits
		}
	}

	n := len(weeks)
	span := float64(n - 1)
	if span == 0 {
		span = 1
	}
	points := make([][2]float64, n)
	for i, w := range weeks {
		points[i] = [2]float64{
			chartX + float64(i)/span*chartWidth,
			chartY + chartHeight - float64(w.Commits)/float64(maxCommits)*chartHeight,
		}
	}

	linePath := splinePath(points)
	areaPath := fmt.Sprintf("%s L %.1f %.1f L %.1f %.1f Z",
		linePath,
		points[n-1][0], chartY+chartHeight,
		points[0][0], chartY+chartHeight)

	vm := impactViewModel{
		Theme:       tc,
		LinePath:    linePath,
		AreaPath:    areaPath,
		GridTop:     chartY,
		GridBottom:  chartY + chartHeight,
		Total:       formatStat(total),
		SummaryY:    chartY + chartHeight + 46,
		PeriodLabel: "commits over 6 months",
	}

	for i := 0; i < 3; i++ {
		vm.YLabels = append(vm.YLabels, impactAxisLabelVM{
			X:     chartX - 6,
			Y:     chartY + float64(i)/2*chartHeight,
			Value: fmt.Sprint(int(float64(maxCommits) * (1 - float64(i)/2))),
		})
	}

	for _, idx := range xLabelIndices(n) {
		vm.XLabels = append(vm.XLabels, impactAxisLabelVM{
			X:     chartX + float64(idx)/span*chartWidth,
			Y:     chartY + chartHeight + 14,
			Value: weeks[idx].WeekStart.Format("2006-01"),
		})
	}

	inner, err := execute("impact.svg.tmpl", vm)
	if err != nil {
		return Widget{}, err
	}
	return card(KindImpact, "Impact Timeline", impactHeight, tc, inner)
}

// splinePath draws a smooth curve through the points using midpoint cubic
// control handles.
func splinePath(points [][2]float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "M %.1f %.1f", points[0][0], points[0][1])
	for i := 1; i < len(points); i++ {
		cx := (points[i-1][0] + points[i][0]) / 2
		fmt.Fprintf(&b, " C %.1f %.1f, %.1f %.1f, %.1f %.1f",
			cx, points[i-1][1], cx, points[i][1], points[i][0], points[i][1])
	}
	return b.String()
}

func xLabelIndices(n int) []int {
	if n <= 2 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	return []int{0, n / 2, n - 1}
}
