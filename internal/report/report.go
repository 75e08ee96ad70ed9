// Package report turns aggregated chat statistics into the colored
// text report printed to the terminal. Building the report is a pure
// function from the counter state to a string; nothing is printed here.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/forPelevin/gomoji"

	"github.com/bfranks/chatstat/internal/analyze"
)

// Mode selects one analysis section.
type Mode int

const (
	ModeChat Mode = iota
	ModeActivity
	ModeWord
	ModeURL
	ModeEmoji
	ModeAttachment
)

var modeNames = map[string]Mode{
	"chat":       ModeChat,
	"activity":   ModeActivity,
	"word":       ModeWord,
	"url":        ModeURL,
	"emoji":      ModeEmoji,
	"attachment": ModeAttachment,
}

// ParseMode resolves a mode name given on the command line.
func ParseMode(name string) (Mode, error) {
	m, ok := modeNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown mode %q (choose from chat, activity, word, url, emoji, attachment)", name)
	}
	return m, nil
}

// ModeSet is the selection of sections to render. An empty set selects
// every section.
type ModeSet map[Mode]bool

// ParseModes resolves a list of mode names. An empty list yields an
// empty set, meaning all sections.
func ParseModes(names []string) (ModeSet, error) {
	set := make(ModeSet)
	for _, n := range names {
		m, err := ParseMode(n)
		if err != nil {
			return nil, err
		}
		set[m] = true
	}
	return set, nil
}

// Has reports whether the mode is selected.
func (s ModeSet) Has(m Mode) bool {
	return len(s) == 0 || s[m]
}

// Options configures one report build.
type Options struct {
	Modes      ModeSet
	SampleSize int
	BarWidth   int
	Fill       string
	Palette    Palette
}

const divider = 50

// Build renders the full report for the selected modes.
func Build(c *analyze.Counter, stop analyze.Stoplist, opts Options) string {
	var lines []string

	if opts.Modes.Has(ModeChat) {
		lines = append(lines, senderSection(c, opts)...)
	}
	if opts.Modes.Has(ModeURL) {
		lines = append(lines, domainSection(c, opts)...)
	}
	if opts.Modes.Has(ModeEmoji) {
		lines = append(lines, emojiSection(c, opts)...)
	}
	if opts.Modes.Has(ModeWord) {
		lines = append(lines, wordSection(c, stop, opts)...)
	}
	if opts.Modes.Has(ModeActivity) {
		lines = append(lines, activitySection(c, opts)...)
	}
	if opts.Modes.Has(ModeAttachment) {
		lines = append(lines, attachmentSection(c, opts)...)
	}

	return strings.Join(lines, "\n")
}

func header(title string, st lipgloss.Style) []string {
	rule := st.Render(strings.Repeat("-", divider))
	return []string{rule, st.Render(title), rule}
}

// truncate splits a table into the displayed sample and the remainder
// summarized on the "Other" line. A sample size below zero shows
// nothing, pushing the whole table onto the Other line.
func truncate(table []Row, n int) (sample, rest []Row) {
	if n < 0 {
		n = 0
	}
	if len(table) <= n {
		return table, nil
	}
	return table[:n], table[n:]
}

func otherLine(format string, rest []Row, st lipgloss.Style) []string {
	if len(rest) == 0 {
		return nil
	}
	return []string{
		"---",
		fmt.Sprintf(format,
			st.Render(fmt.Sprintf("%d", len(rest))),
			st.Render(fmt.Sprintf("%d", analyze.Total(rest)))),
	}
}

func senderSection(c *analyze.Counter, opts Options) []string {
	st := opts.Palette.Chat
	table := analyze.Rank(c.Senders)
	total := analyze.Total(table)

	avg := 0.0
	if len(table) > 0 {
		avg = float64(total) / float64(len(table))
	}

	lines := header("Chat Count by Sender", st)
	lines = append(lines,
		fmt.Sprintf("Active Sender\t: %s", st.Render(fmt.Sprintf("%d", len(table)))),
		fmt.Sprintf("Total Chat\t: %s", st.Render(fmt.Sprintf("%d", total))),
		fmt.Sprintf("Average \t: %s", st.Render(fmt.Sprintf("%.1f chat per member", avg))),
		"",
	)

	sample, rest := truncate(table, opts.SampleSize)
	lines = append(lines, BarChart(sample, opts.BarWidth, st.Render(opts.Fill), opts.Palette.Bold)...)
	lines = append(lines, otherLine("Other from %s member | %s", rest, st)...)
	return append(lines, "", "")
}

func domainSection(c *analyze.Counter, opts Options) []string {
	st := opts.Palette.URL
	table := analyze.Rank(c.Domains)

	lines := header("Mentioned Domain (Shared Link/URL)", st)
	lines = append(lines,
		fmt.Sprintf("Domain Count\t: %s", st.Render(fmt.Sprintf("%d", len(table)))),
		fmt.Sprintf("Mention Count\t: %s", st.Render(fmt.Sprintf("%d", analyze.Total(table)))),
		"",
	)

	sample, rest := truncate(table, opts.SampleSize)
	lines = append(lines, BarChart(sample, opts.BarWidth, st.Render(opts.Fill), opts.Palette.Bold)...)
	lines = append(lines, otherLine("Other %s domain | %s", rest, st)...)
	return append(lines, "", "")
}

func emojiSection(c *analyze.Counter, opts Options) []string {
	st := opts.Palette.Emoji
	table := analyze.Rank(c.Emojis)

	labeled := make([]Row, 0, len(table))
	for _, e := range table {
		labeled = append(labeled, Row{
			Key:   fmt.Sprintf("%s (%s) ", e.Key, emojiName(e.Key)),
			Count: e.Count,
		})
	}

	lines := header("Used Emoji", st)
	lines = append(lines,
		fmt.Sprintf("Unique Emoji\t: %s", st.Render(fmt.Sprintf("%d", len(table)))),
		fmt.Sprintf("Total Count\t: %s", st.Render(fmt.Sprintf("%d", analyze.Total(table)))),
		"",
	)

	sample, rest := truncate(labeled, opts.SampleSize)
	lines = append(lines, BarChart(sample, opts.BarWidth, st.Render(opts.Fill), opts.Palette.Bold)...)
	lines = append(lines, otherLine("Other %s emoji | %s", rest, st)...)
	lines = append(lines, "", "")

	// Favorite emoji per member.
	favorites := analyze.Favorites(analyze.Rank(c.SenderEmojis))
	favRows := make([]Row, 0, len(favorites))
	for _, f := range favorites {
		favRows = append(favRows, Row{
			Key:   fmt.Sprintf("%s | %s | (%s)", f.Key.First, f.Key.Second, emojiName(f.Key.Second)),
			Count: f.Count,
		})
	}

	lines = append(lines, header("Favorite Emoji by Member", st)...)
	lines = append(lines, "")
	favSample, _ := truncate(favRows, opts.SampleSize)
	lines = append(lines, BarChart(favSample, opts.BarWidth, st.Render(opts.Fill), opts.Palette.Bold)...)
	return append(lines, "", "")
}

func wordSection(c *analyze.Counter, stop analyze.Stoplist, opts Options) []string {
	st := opts.Palette.Word
	table := analyze.Rank(analyze.FilterWords(c.Words, stop))

	lines := header("Used Word", st)
	lines = append(lines,
		fmt.Sprintf("Unique Word\t: %s", st.Render(fmt.Sprintf("%d", len(table)))),
		fmt.Sprintf("Total Count\t: %s", st.Render(fmt.Sprintf("%d", analyze.Total(table)))),
		"",
	)

	sample, rest := truncate(table, opts.SampleSize)
	lines = append(lines, BarChart(sample, opts.BarWidth, st.Render(opts.Fill), opts.Palette.Bold)...)
	lines = append(lines, otherLine("Other %s word | %s", rest, st)...)
	lines = append(lines, "", "")

	// Favorite word per member.
	favorites := analyze.Favorites(analyze.Rank(analyze.FilterPairs(c.SenderWords, stop)))
	favRows := make([]Row, 0, len(favorites))
	for _, f := range favorites {
		favRows = append(favRows, Row{
			Key:   fmt.Sprintf("%s | %s | ", f.Key.First, f.Key.Second),
			Count: f.Count,
		})
	}

	lines = append(lines, header("Favorite Word by Member", st)...)
	lines = append(lines, "")
	favSample, _ := truncate(favRows, opts.SampleSize)
	lines = append(lines, BarChart(favSample, opts.BarWidth, st.Render(opts.Fill), opts.Palette.Bold)...)
	return append(lines, "", "")
}

func activitySection(c *analyze.Counter, opts Options) []string {
	st := opts.Palette.Activity
	table := analyze.Rank(analyze.ActivityBuckets(c.Timestamps))

	lines := header("Chat Activity Heatmap", st)
	if len(table) > 0 {
		busiest := table[0]
		quietest := table[len(table)-1]
		lines = append(lines,
			fmt.Sprintf("Most Busy\t: %s, at %s (%s chat)",
				st.Render(busiest.Key.Day),
				st.Render(busiest.Key.Hour+":00"),
				st.Render(fmt.Sprintf("%d", busiest.Count))),
			fmt.Sprintf("Most Silence\t: %s, at %s (%s chat)",
				st.Render(quietest.Key.Day),
				st.Render(quietest.Key.Hour+":00"),
				st.Render(fmt.Sprintf("%d", quietest.Count))),
		)
	}
	lines = append(lines,
		"",
		"---",
		"X: Days",
		"Y: Hours",
		"---",
		Legend(opts.Palette),
		"",
	)

	cells := make(map[analyze.Bucket]int, len(table))
	for _, e := range table {
		cells[e.Key] = e.Count
	}
	return append(lines, Calendar(cells, opts.Palette)...)
}

func attachmentSection(c *analyze.Counter, opts Options) []string {
	st := opts.Palette.Attachment
	table := analyze.Rank(c.AttachmentSenders)

	lines := header("Attachment Count by Sender", st)
	lines = append(lines,
		fmt.Sprintf("Total Attachment: %s", st.Render(fmt.Sprintf("%d", c.AttachmentCount))),
		"",
	)

	sample, rest := truncate(table, opts.SampleSize)
	lines = append(lines, BarChart(sample, opts.BarWidth, st.Render(opts.Fill), opts.Palette.Bold)...)
	lines = append(lines, otherLine("Other from %s member | %s", rest, st)...)
	return append(lines, "", "")
}

// emojiName returns the short descriptive name of an emoji, or the
// character itself when it is not in the emoji database.
func emojiName(char string) string {
	info, err := gomoji.GetInfo(char)
	if err != nil {
		return char
	}
	return ":" + strings.ReplaceAll(info.Slug, "-", "_") + ":"
}
