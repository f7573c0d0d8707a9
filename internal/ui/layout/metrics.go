package layout

// Metrics holds the padding constants the dialog layout is built from.
type Metrics struct {
	PadLeft, PadRight int
	PadTop, PadBottom int

	// ImagePad separates the image/caption column from the text column;
	// it applies only when an image is present.
	ImagePad int
	// MenuPad separates the message from the list; it applies only when
	// both are non-empty.
	MenuPad int

	ButtonHPad int // per response button
	ButtonVPad int // added once to the response row
	CheckPad   int // above each checkable/action button

	BorderMargin int
	ImageSlack   int
	CaptionRaise int

	EntryWidth int
	EntrySlack int

	DetailOffset int
	DetailWidth  int

	MaxLineLength int
}

// PixelMetrics are the constants of the bitmap renderer the engine was
// first laid out for.
func PixelMetrics() Metrics {
	return Metrics{
		PadLeft:       10,
		PadRight:      10,
		PadTop:        10,
		PadBottom:     10,
		ImagePad:      10,
		MenuPad:       10,
		ButtonHPad:    5,
		ButtonVPad:    10,
		CheckPad:      10,
		BorderMargin:  10,
		ImageSlack:    8,
		CaptionRaise:  6,
		EntryWidth:    350,
		EntrySlack:    16,
		DetailOffset:  300,
		DetailWidth:   200,
		MaxLineLength: 54,
	}
}

// CellMetrics scales the layout to terminal cells.
func CellMetrics() Metrics {
	return Metrics{
		PadLeft:       2,
		PadRight:      2,
		PadTop:        1,
		PadBottom:     1,
		ImagePad:      2,
		MenuPad:       1,
		ButtonHPad:    2,
		ButtonVPad:    0,
		CheckPad:      0,
		BorderMargin:  1,
		ImageSlack:    1,
		CaptionRaise:  0,
		EntryWidth:    30,
		EntrySlack:    0,
		DetailOffset:  30,
		DetailWidth:   26,
		MaxLineLength: 54,
	}
}

// ForName returns the metrics set named in config ("cell" or "pixel").
func ForName(name string) Metrics {
	if name == "pixel" {
		return PixelMetrics()
	}
	return CellMetrics()
}
