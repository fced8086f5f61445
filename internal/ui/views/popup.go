package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Rect is a screen area in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout locates the overlay on screen. Rows maps each body line below
// BodyTop to a result index, -1 for lines that are not results.
type Layout struct {
	Rect    Rect
	BodyTop int
	Rows    []int
}

// ResultAt returns the result index drawn at cell (x, y), -1 if none
func (l Layout) ResultAt(x, y int) int {
	if !l.Rect.Contains(x, y) {
		return -1
	}
	line := y - l.Rect.Y - l.BodyTop
	if line < 0 || line >= len(l.Rows) {
		return -1
	}
	return l.Rows[line]
}

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// PopupRect places a popup of the given size horizontally centred, in the
// upper part of the screen, keeping a small margin
func PopupRect(width, height, popupW, popupH int) Rect {
	if popupW > width-2 {
		popupW = width - 2
	}
	if popupH > height-2 {
		popupH = height - 2
	}
	if popupW < 0 {
		popupW = 0
	}
	if popupH < 0 {
		popupH = 0
	}
	x := (width - popupW) / 2
	y := (height - popupH) / 4
	if x < 0 {
		x = 0
	}
	if y < 1 && height > popupH {
		y = 1
	}
	return Rect{X: x, Y: y, W: popupW, H: popupH}
}

// bodyTop is the number of popup lines above the content
func (pr *PopupRenderer) bodyTop() int {
	return pr.styles.Overlay.GetBorderTopSize() + pr.styles.Overlay.GetPaddingTop()
}

// RenderPopupOverlay draws the styled popup over a greyed-out copy of the
// main content and returns the composed screen and the popup's area
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, width, height int) (string, Rect) {
	styledPopup := pr.styles.Overlay.Render(popupContent)
	rect := PopupRect(width, height, lipgloss.Width(styledPopup), lipgloss.Height(styledPopup))

	base := strings.Split(ansi.Strip(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	popupLines := strings.Split(styledPopup, "\n")

	out := make([]string, len(base))
	for i, line := range base {
		row := i - rect.Y
		if row < 0 || row >= rect.H || row >= len(popupLines) {
			out[i] = pr.styles.Backdrop.Render(line)
			continue
		}
		left := runewidth.FillRight(runewidth.Truncate(line, rect.X, ""), rect.X)
		right := runewidth.TruncateLeft(line, rect.X+rect.W, "")
		out[i] = pr.styles.Backdrop.Render(left) + popupLines[row] + pr.styles.Backdrop.Render(right)
	}
	return strings.Join(out, "\n"), rect
}
