package views

import (
	"fmt"
	"strings"

	"vaultsearch/internal/i18n"
)

// ArchiveItem is one line of the archive list
type ArchiveItem struct {
	ID       string
	Name     string
	Selected bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Archives       []ArchiveItem
	StatusMessage  string
	HelpView       string
	OverlayVisible bool
	Overlay        OverlayState
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	tr            *i18n.Translator
	popupRender   *PopupRenderer
	resultsRender *ResultsRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(tr *i18n.Translator) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		tr:            tr,
		popupRender:   NewPopupRenderer(styles),
		resultsRender: NewResultsRenderer(styles, tr),
	}
}

// Render produces the complete view and, when the overlay is shown, where
// it and its result rows are on screen
func (r *Renderer) Render(state ViewState) (string, Layout) {
	main := r.renderMain(state)
	if !state.OverlayVisible {
		return main, Layout{}
	}
	body, rows := r.resultsRender.render(state.Overlay)
	screen, rect := r.popupRender.RenderPopupOverlay(main, body, state.Width, state.Height)
	return screen, Layout{Rect: rect, BodyTop: r.popupRender.bodyTop(), Rows: rows}
}

func (r *Renderer) renderMain(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("vaultsearch"))
	content.WriteString("\n")
	content.WriteString(r.styles.Section.Render(r.tr.T(i18n.KeyArchives)))
	content.WriteString("\n")

	if len(state.Archives) == 0 {
		content.WriteString(r.styles.Dim.Render("  " + r.tr.T(i18n.KeyNoArchives)))
		content.WriteString("\n")
	}
	for _, a := range state.Archives {
		if a.Selected {
			content.WriteString(r.styles.Selected.Render(fmt.Sprintf("> %s", a.Name)))
		} else {
			content.WriteString(fmt.Sprintf("  %s", a.Name))
		}
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	// Keep the help line at the bottom of the screen
	lines := strings.Count(content.String(), "\n")
	for i := lines; i < state.Height-1; i++ {
		content.WriteString("\n")
	}
	content.WriteString(state.HelpView)

	return content.String()
}
