package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6600")).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the app's tagline and a company catch phrase.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")). // Dimmed grey
			Italic(true)

	// SelectLabelStyle styles the "Employee" label of the selection control.
	SelectLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D")).
				MarginLeft(1)

	// SelectStyle styles the selected option while the control is enabled.
	SelectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// SelectDisabledStyle greys the control out during a refresh cycle.
	SelectDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#45475A"))

	// PostTitleStyle styles a post title (h2).
	PostTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6600"))

	// CommentTitleStyle styles a comment author (h3).
	CommentTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7DC4E4"))

	// AuthorStyle styles the post author line.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// ContentStyle styles body text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// MutedStyle styles ids, placeholders and contact lines.
	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// PostCardStyle frames a post.
	PostCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// CommentStyle indents a comment under its post.
	CommentStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#45475A")).
			PaddingLeft(1).
			MarginLeft(2)

	// ButtonStyle styles an unfocused trigger control.
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(0, 1)

	// ButtonFocusedStyle styles the focused trigger control.
	ButtonFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6600")).
				Bold(true).
				Padding(0, 1)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
)
