package text

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate truncates s to maxWidth, appending "…" if truncated.
// ANSI-aware: escape codes are not counted toward visual width and
// will not be broken by the truncation.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// PadRight pads s with spaces to exactly width. If s is wider, returns s unchanged.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Center pads s on both sides to width, extra space going right.
func Center(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Columns splits a menu row on commas and pads each cell to the matching
// entry of widths, separated by two spaces. Missing widths leave cells as-is.
func Columns(row string, widths []int) string {
	cells := strings.Split(row, ",")
	for i := range cells {
		if i < len(widths) && i < len(cells)-1 {
			cells[i] = PadRight(cells[i], widths[i])
		}
	}
	return strings.Join(cells, "  ")
}

// ColumnWidths returns the widest cell per comma-separated column.
func ColumnWidths(rows []string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range strings.Split(row, ",") {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}
	return widths
}

// FormatKilobytes renders transfer progress: 10240, 40960 -> "10/40".
func FormatKilobytes(done, total int) string {
	return fmt.Sprintf("%d/%d", done/1024, total/1024)
}
