package report

import (
	"strings"
	"testing"

	"github.com/bfranks/chatstat/internal/analyze"
)

func plainBold() Palette { return PlainPalette() }

func TestBarChart_Scaling(t *testing.T) {
	rows := []Row{{"A", 10}, {"B", 5}}
	lines := BarChart(rows, 50, "█", plainBold().Bold)

	if len(lines) != 2 {
		t.Fatalf("len = %d, want 2", len(lines))
	}
	if got := strings.Count(lines[0], "█"); got != 50 {
		t.Errorf("A bar length = %d, want 50", got)
	}
	if got := strings.Count(lines[1], "█"); got != 25 {
		t.Errorf("B bar length = %d, want 25", got)
	}
}

func TestBarChart_ScaleFromTruncatedSample(t *testing.T) {
	// The maximum of the provided rows sets the scale, even when a
	// larger value existed in the untruncated table.
	rows := []Row{{"B", 5}, {"C", 5}}
	lines := BarChart(rows, 50, "█", plainBold().Bold)

	if got := strings.Count(lines[0], "█"); got != 50 {
		t.Errorf("bar length = %d, want 50 (scale from sample max)", got)
	}
}

func TestBarChart_Empty(t *testing.T) {
	lines := BarChart(nil, 50, "█", plainBold().Bold)
	if len(lines) != 1 || lines[0] != "Empty data" {
		t.Errorf("lines = %v, want exactly [Empty data]", lines)
	}
}

func TestBarChart_ZeroMax(t *testing.T) {
	lines := BarChart([]Row{{"A", 0}}, 50, "█", plainBold().Bold)
	if strings.Contains(lines[0], "█") {
		t.Errorf("zero-count row rendered a bar: %q", lines[0])
	}
}

func TestBarChart_LabelPadding(t *testing.T) {
	rows := []Row{{"longlabel", 2}, {"ab", 1}}
	lines := BarChart(rows, 10, "█", plainBold().Bold)

	i0 := strings.Index(lines[0], "|")
	i1 := strings.Index(lines[1], "|")
	if i0 != i1 {
		t.Errorf("bars not aligned: %q vs %q", lines[0], lines[1])
	}
}

func TestCalendar_StrictBucketing(t *testing.T) {
	p := PlainPalette()
	cells := map[analyze.Bucket]int{
		{Day: "Monday", Hour: "09"}:    10, // max -> level 4
		{Day: "Tuesday", Hour: "10"}:   5,  // == 0.50*max -> level 2, not 3
		{Day: "Wednesday", Hour: "11"}: 8,  // > 0.75*max -> level 4
		{Day: "Thursday", Hour: "12"}:  2,  // <= 0.25*max -> level 1
		{Day: "Friday", Hour: "13"}:    3,  // > 0.25*max -> level 2
	}
	lines := Calendar(cells, p)

	// Header plus 24 hour rows.
	if len(lines) != 25 {
		t.Fatalf("len = %d, want 25", len(lines))
	}

	cellAt := func(hour, dayIdx int) string {
		row := lines[1+hour]
		cols := strings.Split(row, "\t")
		return strings.TrimSpace(cols[1+dayIdx])
	}

	if got := cellAt(9, 0); got != "███" {
		t.Errorf("Monday 09 = %q, want ███", got)
	}
	if got := cellAt(10, 1); got != "▒▒▒" {
		t.Errorf("Tuesday 10 (==50%% boundary) = %q, want ▒▒▒", got)
	}
	if got := cellAt(11, 2); got != "███" {
		t.Errorf("Wednesday 11 = %q, want ███", got)
	}
	if got := cellAt(12, 3); got != "░░░" {
		t.Errorf("Thursday 12 = %q, want ░░░", got)
	}
	if got := cellAt(13, 4); got != "▒▒▒" {
		t.Errorf("Friday 13 = %q, want ▒▒▒", got)
	}
	if got := cellAt(0, 0); got != "===" {
		t.Errorf("missing cell = %q, want ===", got)
	}
}

func TestCalendar_HeaderDays(t *testing.T) {
	lines := Calendar(nil, PlainPalette())
	for _, abbr := range []string{"[Mon]", "[Tue]", "[Wed]", "[Thu]", "[Fri]", "[Sat]", "[Sun]"} {
		if !strings.Contains(lines[0], abbr) {
			t.Errorf("header %q missing %s", lines[0], abbr)
		}
	}
}

func TestCalendar_EmptyAllNoData(t *testing.T) {
	lines := Calendar(map[analyze.Bucket]int{}, PlainPalette())
	for i, row := range lines[1:] {
		if strings.Count(row, "===") != 7 {
			t.Errorf("hour row %d = %q, want 7 no-data glyphs", i, row)
		}
	}
}

func TestHeatLevel_Boundaries(t *testing.T) {
	ticks := [4]float64{0, 2.5, 5, 7.5}
	tests := []struct {
		v    float64
		want int
	}{
		{1, 0},
		{2.5, 0}, // boundary belongs to the lower bucket
		{2.6, 1},
		{5, 1},
		{7.5, 2},
		{7.6, 3},
		{10, 3},
	}
	for _, tt := range tests {
		if got := heatLevel(tt.v, ticks); got != tt.want {
			t.Errorf("heatLevel(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}
