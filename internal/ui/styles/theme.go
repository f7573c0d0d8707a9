package styles

import "github.com/justinpbarnett/modal/internal/ui/canvas"

// DefaultStyle is the dialog style used when a request names none.
const DefaultStyle = "menu"

// Cell inks built from the color tokens.
var (
	CaptionInk = canvas.Ink{Fg: TitleText, Bold: true}
	MessageInk = canvas.Ink{Fg: TextPrimary}
	SmallInk   = canvas.Ink{Fg: TextSecondary}

	SelectedInk = canvas.Ink{Fg: TitleText, Bg: SelectedRowBg, Bold: true}
	CheckedInk  = canvas.Ink{Fg: SelectedOption, Bold: true}

	ButtonInk        = canvas.Ink{Fg: TextPrimary, Bg: ButtonFace}
	ButtonActiveInk  = canvas.Ink{Fg: TitleText, Bg: ButtonActive, Bold: true}
	ButtonPressedInk = canvas.Ink{Fg: MessageBg, Bg: ButtonPressed, Bold: true}

	EntryInk = canvas.Ink{Fg: TextPrimary, Bg: EntryBg}

	KeyInk   = canvas.Ink{Fg: KeybindKey, Bold: true}
	LabelInk = canvas.Ink{Fg: KeybindLabel}
)

// Palette is the pair of inks a named dialog style paints with.
type Palette struct {
	Background canvas.Ink
	Border     canvas.Ink
}

var palettes = map[string]Palette{
	"menu": {
		Background: canvas.Ink{Fg: TextDim, Bg: MenuBg},
		Border:     canvas.Ink{Fg: BorderFocused, Bg: MenuBg},
	},
	"mainmenu": {
		Background: canvas.Ink{Fg: TextDim, Bg: MainMenuBg},
		Border:     canvas.Ink{Fg: MainMenuFg, Bg: MainMenuBg, Bold: true},
	},
	"message": {
		Background: canvas.Ink{Fg: TextDim, Bg: MessageBg},
		Border:     canvas.Ink{Fg: BorderUnfocused, Bg: MessageBg},
	},
}

// ForStyle returns the palette for a dialog style name, falling back to the
// default style for unknown names.
func ForStyle(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[DefaultStyle]
}
