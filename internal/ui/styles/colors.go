package styles

import "github.com/charmbracelet/lipgloss"

// Semantic colors: AdaptiveColor{Light, Dark}
var (
	BorderFocused   = lipgloss.AdaptiveColor{Light: "#2e5cb8", Dark: "#7aa2f7"}
	BorderUnfocused = lipgloss.AdaptiveColor{Light: "#c0c0c0", Dark: "#3b4261"}
	TitleText       = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	TextPrimary     = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	TextSecondary   = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextDim         = lipgloss.AdaptiveColor{Light: "#b0b0b0", Dark: "#3b4261"}

	MenuBg     = lipgloss.AdaptiveColor{Light: "#eef1f8", Dark: "#1f2335"}
	MainMenuBg = lipgloss.AdaptiveColor{Light: "#f5efe0", Dark: "#24283b"}
	MessageBg  = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#16161e"}
	MainMenuFg = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}

	ButtonFace    = lipgloss.AdaptiveColor{Light: "#d8def0", Dark: "#3b4261"}
	ButtonActive  = lipgloss.AdaptiveColor{Light: "#c8d8f0", Dark: "#414868"}
	ButtonPressed = lipgloss.AdaptiveColor{Light: "#2e5cb8", Dark: "#7aa2f7"}

	SelectedRowBg  = lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: "#292e42"}
	SelectedOption = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#9ece6a"}
	EntryBg        = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1a1b26"}

	KeybindKey   = lipgloss.AdaptiveColor{Light: "#2e5cb8", Dark: "#7aa2f7"}
	KeybindLabel = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}

	// Shade tints the drop shadow behind a dialog. Tinting needs a concrete
	// RGB value, so it is not adaptive.
	Shade = lipgloss.Color("#000000")
)

// ShadeAlpha is how strongly Shade covers what lies under a dialog's
// drop shadow.
const ShadeAlpha = 0.5
