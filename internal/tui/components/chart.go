package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Series is one colored row of values in a GroupedBarChart. Values line up
// with the chart labels.
type Series struct {
	Name   string
	Values []float64
	Color  lipgloss.Color
}

// eighths are the partial block glyphs, index = filled eighths.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders values as a single line of block glyphs.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	peak := maxOf(values)
	if peak <= 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := 1 + int(math.Max(v, 0)/peak*7)
		if idx > 8 {
			idx = 8
		}
		buf.WriteRune(eighths[idx])
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Background(theme.Active.Surface).
		Render(buf.String())
}

// GroupedBarChart draws one group of vertical bars per label, one bar per
// series, over a money y-axis. When there is not enough room for every
// group the oldest (leftmost) groups are dropped. Very small areas fall
// back to a sparkline of the first series.
func GroupedBarChart(labels []string, series []Series, width, height int) string {
	n, k := len(labels), len(series)
	if n == 0 || k == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(series[0].Values, series[0].Color)
	}

	t := theme.Active
	bg := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	peak := 0.0
	for _, s := range series {
		peak = math.Max(peak, maxOf(s.Values))
	}
	if peak <= 0 {
		peak = 1
	}

	step := chartTickStep(peak)
	for int(math.Ceil(peak/step)) > max(2, height/2) {
		step *= 2
	}
	ticks := max(1, int(math.Ceil(peak/step)))
	ceiling := float64(ticks) * step
	rowsPerTick := max(2, height/ticks)
	chartH := rowsPerTick * ticks

	yLabelW := max(4, len(formatChartLabel(ceiling))+1)
	plotW := max(5, width-yLabelW-1)

	// Each group is k bars wide plus one column gap.
	barW := (plotW + 1) / n / k
	if barW < 1 {
		keep := max(1, (plotW+1)/(k+1))
		if keep < n {
			labels = labels[n-keep:]
			trimmed := make([]Series, k)
			for i, s := range series {
				trimmed[i] = s
				if len(s.Values) > keep {
					trimmed[i].Values = s.Values[len(s.Values)-keep:]
				}
			}
			series = trimmed
			n = keep
		}
		barW = 1
	}
	if barW > 3 {
		barW = 3
	}
	groupW := barW * k
	axisLen := n*groupW + (n - 1)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		top := ceiling * float64(row) / float64(chartH)
		bottom := ceiling * float64(row-1) / float64(chartH)

		label := ""
		if row%rowsPerTick == 0 {
			label = formatChartLabel(step * float64(row/rowsPerTick))
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", yLabelW, label)))

		for g := 0; g < n; g++ {
			if g > 0 {
				b.WriteString(bg.Render(" "))
			}
			for _, s := range series {
				v := 0.0
				if g < len(s.Values) {
					v = s.Values[g]
				}
				b.WriteString(barCell(v, top, bottom, barW, s.Color))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", yLabelW, "0", strings.Repeat("─", axisLen))))

	b.WriteString("\n")
	b.WriteString(bg.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(strings.TrimRight(placeLabels(labels, groupW+1, axisLen), " ")))

	if k > 1 {
		b.WriteString("\n")
		b.WriteString(bg.Render(strings.Repeat(" ", yLabelW+1)))
		parts := make([]string, 0, k)
		for _, s := range series {
			parts = append(parts,
				lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("■")+
					axisStyle.Render(" "+s.Name))
		}
		b.WriteString(strings.Join(parts, bg.Render("  ")))
	}

	return b.String()
}

// barCell renders one bar's slice of a chart row spanning (bottom, top].
func barCell(v, top, bottom float64, w int, color lipgloss.Color) string {
	style := lipgloss.NewStyle().Foreground(color).Background(theme.Active.Surface)
	switch {
	case v >= top:
		return style.Render(strings.Repeat("█", w))
	case v > bottom:
		idx := int((v - bottom) / (top - bottom) * 8)
		idx = min(max(idx, 1), 8)
		return style.Render(strings.Repeat(string(eighths[idx]), w))
	default:
		return style.Render(strings.Repeat(" ", w))
	}
}

// placeLabels lays labels out on a line of width axisLen, one slot of
// slotW columns per label, skipping labels that would overlap.
func placeLabels(labels []string, slotW, axisLen int) string {
	line := []rune(strings.Repeat(" ", axisLen))
	next := 0
	for i, lbl := range labels {
		pos := i * slotW
		if pos < next || pos >= axisLen {
			continue
		}
		r := []rune(lbl)
		if pos+len(r) > axisLen {
			r = r[:axisLen-pos]
		}
		copy(line[pos:], r)
		next = pos + len(r) + 1
	}
	return string(line)
}

func maxOf(values []float64) float64 {
	m := 0.0
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

// chartTickStep picks a 1/2/5 multiple giving roughly five ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel renders an axis amount compactly, e.g. 1500 -> "1.5k".
func formatChartLabel(v float64) string {
	compact := func(div float64, suffix string) string {
		if q := v / div; q == math.Trunc(q) {
			return fmt.Sprintf("%.0f%s", q, suffix)
		}
		return fmt.Sprintf("%.1f%s", v/div, suffix)
	}
	switch {
	case v >= 1e6:
		return compact(1e6, "M")
	case v >= 1e3:
		return compact(1e3, "k")
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
