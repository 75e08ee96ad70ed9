package report

import "github.com/charmbracelet/lipgloss"

// Palette holds the section and heatmap styles for one report run.
// PlainPalette gives uncolored output for --no-color and for tests.
type Palette struct {
	Chat       lipgloss.Style
	URL        lipgloss.Style
	Emoji      lipgloss.Style
	Word       lipgloss.Style
	Activity   lipgloss.Style
	Attachment lipgloss.Style

	Bold lipgloss.Style

	// Heat holds the four intensity styles, lowest first.
	Heat   [4]lipgloss.Style
	NoData lipgloss.Style
}

func DefaultPalette() Palette {
	return Palette{
		Chat:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		URL:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Emoji:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Word:       lipgloss.NewStyle().Foreground(lipgloss.Color("76")),
		Activity:   lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		Attachment: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),

		Bold: lipgloss.NewStyle().Bold(true),

		Heat: [4]lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("76")),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
		NoData: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	}
}

func PlainPalette() Palette {
	plain := lipgloss.NewStyle()
	return Palette{
		Chat:       plain,
		URL:        plain,
		Emoji:      plain,
		Word:       plain,
		Activity:   plain,
		Attachment: plain,
		Bold:       plain,
		Heat:       [4]lipgloss.Style{plain, plain, plain, plain},
		NoData:     plain,
	}
}
