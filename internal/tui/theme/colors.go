package theme

import "github.com/thenoetrevino/roster/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent        string
	Border        string
	FocusedBorder string
	Title         string
	Label         string
	Subtle        string
	Normal        string
	InfoFg        string
	InfoBg        string
	WarningFg     string
	WarningBg     string
	ErrorFg       string
	ErrorBg       string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Border = colors.Border
	FocusedBorder = colors.FocusedBorder
	Title = colors.Title
	Label = colors.Label
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
