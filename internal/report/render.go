package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bfranks/chatstat/internal/analyze"
)

// Row is one labeled bar of a chart.
type Row = analyze.Entry[string]

// heatGlyphs are the four intensity glyphs, lowest first, plus the
// marker for cells with no data at all.
var heatGlyphs = [4]string{"░░░", "▒▒▒", "▓▓▓", "███"}

const noDataGlyph = "==="

// weekDays is the fixed column order of the activity grid.
var weekDays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// BarChart renders rows as proportional horizontal bars. rows must
// already be truncated to the sample size: the scale is intentionally
// taken from the truncated maximum, not the full distribution. fill is
// a pre-styled glyph; bold styles the count at the end of each bar.
func BarChart(rows []Row, width int, fill string, bold lipgloss.Style) []string {
	if len(rows) == 0 {
		return []string{"Empty data"}
	}

	maxCount := 0
	labelWidth := 0
	for _, r := range rows {
		if r.Count > maxCount {
			maxCount = r.Count
		}
		if w := lipgloss.Width(r.Key); w > labelWidth {
			labelWidth = w
		}
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		filled := 0
		if maxCount > 0 {
			filled = int(float64(r.Count) / (float64(maxCount) / float64(width)))
		}
		pad := labelWidth - lipgloss.Width(r.Key)
		lines = append(lines, fmt.Sprintf("%s%s |%s %s",
			r.Key,
			strings.Repeat(" ", pad),
			strings.Repeat(fill, filled),
			bold.Render(strconv.Itoa(r.Count)),
		))
	}
	return lines
}

// Calendar renders the weekly activity grid: a header of 3-letter day
// abbreviations, then one row per hour with one glyph per day. Cell
// intensity is bucketed against 25/50/75% of the maximum value with a
// strict greater-than comparison, so boundary values fall to the lower
// bucket. Absent cells get the no-data glyph.
func Calendar(cells map[analyze.Bucket]int, p Palette) []string {
	maxVal := 0.0
	for _, v := range cells {
		if float64(v) > maxVal {
			maxVal = float64(v)
		}
	}
	ticks := [4]float64{0, 0.25 * maxVal, 0.50 * maxVal, 0.75 * maxVal}

	var header strings.Builder
	header.WriteString("     ")
	for _, day := range weekDays {
		header.WriteString("\t[" + day[:3] + "]")
	}
	lines := []string{header.String()}

	for hour := 0; hour < 24; hour++ {
		var row strings.Builder
		fmt.Fprintf(&row, "[%02d:00]", hour)

		for _, day := range weekDays {
			count, ok := cells[analyze.Bucket{Day: day, Hour: fmt.Sprintf("%02d", hour)}]
			var glyph string
			if !ok {
				glyph = p.NoData.Render(noDataGlyph)
			} else {
				level := heatLevel(float64(count), ticks)
				glyph = p.Heat[level].Render(heatGlyphs[level])
			}
			row.WriteString("\t " + glyph)
		}
		lines = append(lines, row.String())
	}
	return lines
}

// heatLevel classifies a present cell value into one of the four
// intensity levels (0 = lowest).
func heatLevel(v float64, ticks [4]float64) int {
	switch {
	case v > ticks[3]:
		return 3
	case v > ticks[2]:
		return 2
	case v > ticks[1]:
		return 1
	default:
		return 0
	}
}

// Legend renders the intensity legend shown above the calendar.
func Legend(p Palette) string {
	return fmt.Sprintf("Less [%s%s%s%s%s] More",
		p.NoData.Render(noDataGlyph),
		p.Heat[0].Render(heatGlyphs[0]),
		p.Heat[1].Render(heatGlyphs[1]),
		p.Heat[2].Render(heatGlyphs[2]),
		p.Heat[3].Render(heatGlyphs[3]),
	)
}
