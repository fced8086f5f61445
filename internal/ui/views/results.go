package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vaultsearch/internal/domain"
	"vaultsearch/internal/i18n"
	"vaultsearch/internal/ui/services/search"
)

// OverlayState contains what the search overlay needs for rendering
type OverlayState struct {
	Input       string // rendered text input (prompt, text, cursor)
	InputText   string // raw input text, shown marked while Marked is set
	Marked      bool   // the input text is selected and the next keystroke replaces it
	Query       string
	HasArchive  bool
	Entries     []domain.EntryRef
	Groups      []domain.GroupRef
	Cursor      int // index into Entries followed by Groups, -1 for none
	PropertyKey string
	MaxResults  int // per section, 0 for no limit
	Width       int // inner width of the popup
	Highlight   func(label string) []search.Span
}

// ResultsRenderer renders the search overlay content
type ResultsRenderer struct {
	styles *Styles
	tr     *i18n.Translator
}

// NewResultsRenderer creates a new results renderer
func NewResultsRenderer(styles *Styles, tr *i18n.Translator) *ResultsRenderer {
	return &ResultsRenderer{
		styles: styles,
		tr:     tr,
	}
}

// Render produces the overlay body: input line followed by entry and group sections
func (r *ResultsRenderer) Render(state OverlayState) string {
	body, _ := r.render(state)
	return body
}

// Rows maps every body line to the Results index it shows, -1 for lines that
// are not results (input, rule, headings, "more" lines)
func (r *ResultsRenderer) Rows(state OverlayState) []int {
	_, rows := r.render(state)
	return rows
}

func (r *ResultsRenderer) render(state OverlayState) (string, []int) {
	var lines []string
	var rows []int
	add := func(line string, result int) {
		lines = append(lines, line)
		rows = append(rows, result)
	}

	if state.Marked && state.InputText != "" {
		add(r.styles.InputMarked.Render(state.InputText), -1)
	} else {
		add(r.styles.Input.Render(state.Input), -1)
	}
	add(r.styles.Dim.Render(strings.Repeat("─", max(state.Width, 1))), -1)

	switch {
	case !state.HasArchive:
		add(r.styles.Dim.Render(r.tr.T(i18n.KeySearchNoArchive)), -1)
	case state.Query == "":
	case len(state.Entries) == 0 && len(state.Groups) == 0:
		add(r.styles.Dim.Render(r.tr.T(i18n.KeySearchNoResults)), -1)
	default:
		if len(state.Entries) > 0 {
			add(r.styles.Section.Render(r.tr.T(i18n.KeySearchEntries)), -1)
			shown := limit(len(state.Entries), state.MaxResults)
			for i := 0; i < shown; i++ {
				add(r.renderEntry(state, state.Entries[i], i == state.Cursor), i)
			}
			if hidden := len(state.Entries) - shown; hidden > 0 {
				add(r.more(hidden), -1)
			}
		}
		if len(state.Groups) > 0 {
			add(r.styles.Section.Render(r.tr.T(i18n.KeySearchGroups)), -1)
			shown := limit(len(state.Groups), state.MaxResults)
			for i := 0; i < shown; i++ {
				idx := len(state.Entries) + i
				add(r.renderGroup(state, state.Groups[i], idx == state.Cursor), idx)
			}
			if hidden := len(state.Groups) - shown; hidden > 0 {
				add(r.more(hidden), -1)
			}
		}
	}

	return strings.Join(lines, "\n"), rows
}

func (r *ResultsRenderer) renderEntry(state OverlayState, entry domain.EntryRef, selected bool) string {
	icon := entry.Icon()
	glyph := icon.Glyph
	if glyph == "" {
		glyph = "•"
	}
	iconStyle := r.rowStyle(lipgloss.NewStyle(), selected)
	if icon.Color != "" {
		iconStyle = iconStyle.Foreground(lipgloss.Color(icon.Color))
	}

	parts := []string{
		iconStyle.Render(glyph),
		r.rowStyle(lipgloss.NewStyle(), selected).Render(" "),
		r.renderSpans(state.Highlight(entry.Property(state.PropertyKey)), selected),
	}
	if group := entry.Group(); group != nil && group.Title() != "" {
		hint := " " + r.tr.T(i18n.KeySearchInGroup, group.Title())
		parts = append(parts, r.rowStyle(r.styles.GroupHint, selected).Render(hint))
	}
	return strings.Join(parts, "")
}

func (r *ResultsRenderer) renderGroup(state OverlayState, group domain.GroupRef, selected bool) string {
	return r.rowStyle(lipgloss.NewStyle(), selected).Render("▸ ") +
		r.renderSpans(state.Highlight(group.Title()), selected)
}

// renderSpans applies emphasis to matched spans
func (r *ResultsRenderer) renderSpans(spans []search.Span, selected bool) string {
	var b strings.Builder
	for _, span := range spans {
		style := lipgloss.NewStyle()
		if span.Match {
			style = r.styles.Highlight
		}
		b.WriteString(r.rowStyle(style, selected).Render(span.Text))
	}
	return b.String()
}

func (r *ResultsRenderer) rowStyle(style lipgloss.Style, selected bool) lipgloss.Style {
	if selected {
		return style.Background(r.styles.SelectionBg.GetBackground())
	}
	return style
}

func (r *ResultsRenderer) more(hidden int) string {
	return r.styles.Dim.Render(r.tr.T(i18n.KeySearchMore, hidden))
}

func limit(n, maxN int) int {
	if maxN > 0 && n > maxN {
		return maxN
	}
	return n
}
