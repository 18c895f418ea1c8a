package styles

import "github.com/charmbracelet/lipgloss"

var (
	Pink    = lipgloss.Color("#FF2E97")
	Gray    = lipgloss.Color("#8A8F98")
	DimGray = lipgloss.Color("#3D4250")
	Green   = lipgloss.Color("#39FF14")
	Red     = lipgloss.Color("#FF3131")
	Cyan    = lipgloss.Color("#00F0FF")
	Yellow  = lipgloss.Color("#FFE66D")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	Subtitle = lipgloss.NewStyle().
			Foreground(Cyan)

	Selected = lipgloss.NewStyle().
			Foreground(Pink).
			Bold(true)

	Dimmed = lipgloss.NewStyle().
		Foreground(DimGray)

	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	Success = lipgloss.NewStyle().
		Foreground(Green)

	Err = lipgloss.NewStyle().
		Foreground(Red)

	Help = lipgloss.NewStyle().
		Foreground(DimGray).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	Tab = lipgloss.NewStyle().
		Foreground(Gray).
		Padding(0, 1)

	ActiveTab = lipgloss.NewStyle().
			Foreground(Pink).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	Notice = lipgloss.NewStyle().
		Foreground(Yellow).
		Bold(true)

	Added = lipgloss.NewStyle().
		Foreground(Green).
		Underline(true)

	Removed = lipgloss.NewStyle().
		Foreground(Red).
		Strikethrough(true)

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(1, 2)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(DimGray).
		Padding(0, 1)

	Modal = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Pink).
		Padding(1, 2)
)

// Swatch renders a block of the given hex colour.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
