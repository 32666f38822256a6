package styles

import (
	"github.com/charmbracelet/lipgloss"

	"sonotes/internal/models"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color

	// Ink drawn on top of note card pastels
	NoteInk    lipgloss.Color
	NoteInkDim lipgloss.Color
}

// Dark is the default color theme
var Dark = Theme{
	Name: "Dark",

	Background:    lipgloss.Color("#202020"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),
	Accent:    lipgloss.Color("#7dcfff"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),

	NoteInk:    lipgloss.Color("#1a1a1a"),
	NoteInkDim: lipgloss.Color("#6b6b6b"),
}

// Light mirrors the app's light mode.
var Light = Theme{
	Name: "Light",

	Background:    lipgloss.Color("#F3F3F3"),
	Foreground:    lipgloss.Color("#1a1a1a"),
	ForegroundDim: lipgloss.Color("#8a8a8a"),

	Primary:   lipgloss.Color("#2f5fd7"),
	Secondary: lipgloss.Color("#7c3aed"),
	Accent:    lipgloss.Color("#0e7490"),

	Success: lipgloss.Color("#3f9142"),
	Warning: lipgloss.Color("#b45309"),
	Error:   lipgloss.Color("#dc2626"),

	Border:      lipgloss.Color("#c9c9c9"),
	BorderFocus: lipgloss.Color("#2f5fd7"),
	Selection:   lipgloss.Color("#cfe0ff"),

	NoteInk:    lipgloss.Color("#1a1a1a"),
	NoteInkDim: lipgloss.Color("#6b6b6b"),
}

// Current holds the active theme
var Current = Dark

// Apply selects the active theme from the persisted mode. System maps
// to dark: the terminal gives no preference signal to follow.
func Apply(mode models.ThemeMode) {
	if mode == models.ThemeLight {
		Current = Light
	} else {
		Current = Dark
	}
}

// MaxWidth caps the content width of the list overlays (boards, trash)
// on very wide terminals. The canvas itself always uses the full width.
const MaxWidth = 100

// ContentWidth returns the usable content width, capped at MaxWidth
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	// Canvas background and grid dots
	Canvas     lipgloss.Style
	CanvasGrid lipgloss.Style

	// Titles and muted text
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Lists
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Input fields
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Overlay panels (edit form, confirms, board list)
	Panel lipgloss.Style

	// Marquee fill
	Marquee lipgloss.Style

	// Minimap widget
	MiniMap         lipgloss.Style
	MiniMapNote     lipgloss.Style
	MiniMapViewport lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style
	StatusKey lipgloss.Style

	// Help text
	Help    lipgloss.Style
	HelpKey lipgloss.Style
}

// NewStyles creates styles based on the current theme
func NewStyles() *Styles {
	t := Current

	return &Styles{
		Canvas: lipgloss.NewStyle().
			Background(t.Background).
			Foreground(t.Foreground),

		CanvasGrid: lipgloss.NewStyle().
			Background(t.Background).
			Foreground(t.ForegroundDim),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 2),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 2).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 2).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		Marquee: lipgloss.NewStyle().
			Background(t.Selection).
			Foreground(t.Foreground),

		MiniMap: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Background(t.Background),

		MiniMapNote: lipgloss.NewStyle().
			Foreground(t.Error).
			Background(t.Background),

		MiniMapViewport: lipgloss.NewStyle().
			Foreground(t.BorderFocus).
			Background(t.Background),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 1),

		StatusKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
	}
}

// NoteCard returns the fill style for a note card of the given palette
// color.
func (s *Styles) NoteCard(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(Current.NoteInk)
}

// NoteCardDim returns the muted ink style over a note card color.
func (s *Styles) NoteCardDim(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(Current.NoteInkDim)
}
