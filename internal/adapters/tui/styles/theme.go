package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme is built from
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Foreground lipgloss.Color
	Background lipgloss.Color
	Branch     lipgloss.Color
	StatusBg   lipgloss.Color
}

var (
	// Light is the default palette
	Light = Palette{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#059669"), // Green
		Muted:      lipgloss.Color("#6B7280"), // Gray
		Warning:    lipgloss.Color("#D97706"), // Amber
		Error:      lipgloss.Color("#DC2626"), // Red
		Foreground: lipgloss.Color("#111827"),
		Background: lipgloss.Color("#FFFFFF"),
		Branch:     lipgloss.Color("#2563EB"), // Blue
		StatusBg:   lipgloss.Color("#E5E7EB"),
	}

	Dark = Palette{
		Primary:    lipgloss.Color("#A78BFA"),
		Secondary:  lipgloss.Color("#34D399"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Warning:    lipgloss.Color("#FBBF24"),
		Error:      lipgloss.Color("#F87171"),
		Foreground: lipgloss.Color("#F9FAFB"),
		Background: lipgloss.Color("#111827"),
		Branch:     lipgloss.Color("#60A5FA"),
		StatusBg:   lipgloss.Color("#1F2937"),
	}
)

// Tree indicators
const (
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "
	DirtyMarker   = "●"
)

var (
	current Palette
	dark    bool

	App           lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	NodeBranch    lipgloss.Style
	NodeLeaf      lipgloss.Style
	NodeSelected  lipgloss.Style
	NodeMatched   lipgloss.Style
	FieldKey      lipgloss.Style
	FieldReadOnly lipgloss.Style
	StatusBar     lipgloss.Style
	StatusKey     lipgloss.Style
	StatusText    lipgloss.Style
	InputLabel    lipgloss.Style
	InputField    lipgloss.Style
	InputFocused  lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
	Success       lipgloss.Style
	ErrorMsg      lipgloss.Style
	WarningMsg    lipgloss.Style
	SearchMatch   lipgloss.Style
	MutedText     lipgloss.Style
)

func init() {
	SetDark(false)
}

// IsDark reports whether the dark palette is active
func IsDark() bool {
	return dark
}

// Current returns the active palette
func Current() Palette {
	return current
}

// SetDark rebuilds every style from the light or dark palette
func SetDark(on bool) {
	dark = on
	if on {
		build(Dark)
	} else {
		build(Light)
	}
}

func build(p Palette) {
	current = p

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	Tab = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)

	TabActive = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Primary).
		Bold(true).
		Padding(0, 1)

	NodeBranch = lipgloss.NewStyle().
		Foreground(p.Branch).
		Bold(true)

	NodeLeaf = lipgloss.NewStyle().
		Foreground(p.Foreground)

	NodeSelected = lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(p.Background).
		Bold(true)

	NodeMatched = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	FieldKey = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	FieldReadOnly = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	StatusBar = lipgloss.NewStyle().
		Background(p.StatusBg).
		Foreground(p.Foreground).
		Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(p.Background).
		Padding(0, 1).
		MarginRight(1)

	StatusText = lipgloss.NewStyle().
		Foreground(p.Muted)

	InputLabel = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	InputField = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
		Foreground(p.Muted)

	HelpSeparator = lipgloss.NewStyle().
		Foreground(p.Muted).
		SetString(" • ")

	Success = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	WarningMsg = lipgloss.NewStyle().
		Foreground(p.Warning)

	SearchMatch = lipgloss.NewStyle().
		Background(p.Warning).
		Foreground(p.Background)

	MutedText = lipgloss.NewStyle().
		Foreground(p.Muted)
}
