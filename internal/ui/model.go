package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vaultsearch/internal/config"
	"vaultsearch/internal/domain"
	"vaultsearch/internal/eventbus"
	"vaultsearch/internal/i18n"
	"vaultsearch/internal/logic"
	"vaultsearch/internal/ui/services/overlay"
	"vaultsearch/internal/ui/services/search"
	"vaultsearch/internal/ui/views"
)

const (
	minOverlayWidth = 30
	maxOverlayWidth = 72
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	store  logic.ArchiveStore
	tr     *i18n.Translator

	search  *search.Service
	overlay *overlay.Controller

	width  int
	height int
	input  textinput.Model
	// marked is set when the overlay opens over existing text; the next edit replaces it
	marked      bool
	keys        keyMap
	help        help.Model
	renderer    *views.Renderer
	helpRender  *HelpRenderer
	status      string
	overlayView views.Layout

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, bus eventbus.EventBus, store logic.ArchiveStore, tr *i18n.Translator) *Model {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = tr.T(i18n.KeySearchPlaceholder)

	m := &Model{
		bus:        bus,
		config:     cfg,
		store:      store,
		tr:         tr,
		input:      input,
		keys:       newKeyMap(cfg.UISettings.OpenKey, tr),
		help:       help.New(),
		renderer:   views.NewRenderer(tr),
		helpRender: NewHelpRenderer(tr),
	}

	m.search = search.NewService(bus, search.Options{
		PropertyKey:   cfg.Search.PropertyKey,
		CaseSensitive: cfg.Search.CaseSensitive,
		MaxPerSection: cfg.Search.MaxResults,
	})
	m.overlay = overlay.NewController(bus, store, m.search, overlay.Callbacks{
		OnFocus:         m.focusInput,
		OnEntrySelected: m.entrySelected,
		OnGroupSelected: m.groupSelected,
	}, overlay.Options{
		ResetOnClose: cfg.Search.ResetOnClose,
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Activate subscribes the search overlay to open requests. deliver must pass
// events back into the program, e.g. via Program.Send(EventMsg{...}).
// The returned func releases the subscription.
func (m *Model) Activate(deliver func(domain.DomainEvent)) func() {
	return m.overlay.Activate(deliver)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = m.overlayWidth() - lenPrompt(m.input.Prompt) - 1
		return m, nil

	case EventMsg:
		m.overlay.HandleEvent(msg.Event)
		return m, m.blinkCmd()

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.status = msg.err.Error()
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.overlay.IsVisible() {
			return m.handleOverlayKey(msg)
		}
		return m.handleMainKey(msg)

	default:
		if m.overlay.IsVisible() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.OpenSearch):
		m.requestOpen()
	case key.Matches(msg, m.keys.Switch):
		m.switchArchive()
	case key.Matches(msg, m.keys.Help):
		return m, m.showHelpCmd()
	}
	return m, nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m.quit()
	case msg.String() == m.config.UISettings.OpenKey:
		// same shortcut opens and closes the panel
		m.requestOpen()
		return m, nil
	case key.Matches(msg, m.keys.Close):
		m.closeOverlay()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.search.NavigatePrevious()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.search.NavigateNext()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		m.overlay.SelectCurrent()
		m.syncInput()
		return m, nil
	}

	if m.marked {
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete:
			m.input.SetValue("")
		}
		m.marked = false
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.search.GetQuery() {
		m.search.SetQuery(m.input.Value())
	}
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.overlay.IsVisible() {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.overlayView.Rect.Contains(msg.X, msg.Y) {
		m.closeOverlay()
		return m, nil
	}
	if idx := m.overlayView.ResultAt(msg.X, msg.Y); idx >= 0 {
		m.selectResult(idx)
	}
	return m, nil
}

// selectResult commits the result at idx in the combined result list
func (m *Model) selectResult(idx int) {
	results := m.search.Results()
	if idx >= len(results) {
		return
	}
	if r := results[idx]; r.IsEntry() {
		m.overlay.SelectEntry(r.Entry)
	} else {
		m.overlay.SelectGroup(r.Group)
	}
	m.syncInput()
}

// requestOpen asks for the overlay to toggle for the selected archive
func (m *Model) requestOpen() {
	m.bus.Publish(domain.OpenSearchRequestedEvent{ArchiveID: m.store.SelectedID()})
}

func (m *Model) closeOverlay() {
	m.overlay.Close()
	m.syncInput()
}

// syncInput keeps the text input in line with the search query after the
// overlay hid, which may have cleared it
func (m *Model) syncInput() {
	if m.overlay.IsVisible() {
		return
	}
	m.input.Blur()
	m.marked = false
	if m.input.Value() != m.search.GetQuery() {
		m.input.SetValue(m.search.GetQuery())
	}
}

func (m *Model) focusInput() {
	m.input.SetValue(m.search.GetQuery())
	m.input.CursorEnd()
	m.input.Focus()
	m.marked = m.input.Value() != ""
}

func (m *Model) blinkCmd() tea.Cmd {
	if m.overlay.IsVisible() {
		return textinput.Blink
	}
	return nil
}

func (m *Model) entrySelected(entryID string) {
	archiveID := m.overlay.ArchiveID()
	m.status = m.tr.T(i18n.KeyLastSelection, m.entryLabel(entryID))
	m.bus.Publish(domain.EntrySelectedEvent{ArchiveID: archiveID, EntryID: entryID})
}

func (m *Model) groupSelected(groupID string) {
	archiveID := m.overlay.ArchiveID()
	m.status = m.tr.T(i18n.KeyLastSelection, m.groupLabel(groupID))
	m.bus.Publish(domain.GroupSelectedEvent{ArchiveID: archiveID, GroupID: groupID})
}

// entryLabel looks the entry up in the current results for the status line
func (m *Model) entryLabel(entryID string) string {
	for _, e := range m.search.Entries() {
		if e.ID() == entryID {
			return e.Property(m.config.Search.PropertyKey)
		}
	}
	return entryID
}

func (m *Model) groupLabel(groupID string) string {
	for _, g := range m.search.Groups() {
		if g.ID() == groupID {
			return g.Title()
		}
	}
	for _, e := range m.search.Entries() {
		if g := e.Group(); g != nil && g.ID() == groupID {
			return g.Title()
		}
	}
	return groupID
}

func (m *Model) switchArchive() {
	ids := m.store.OrderedIDs()
	if len(ids) == 0 {
		return
	}
	next := ids[0]
	current := m.store.SelectedID()
	for i, id := range ids {
		if id == current {
			next = ids[(i+1)%len(ids)]
			break
		}
	}
	m.store.SelectArchive(next)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.overlay.Deactivate()
	return m, tea.Quit
}

func (m *Model) showHelpCmd() tea.Cmd {
	content := m.helpRender.RenderHelpContent(m.keys)
	ops := NewHelpOps(m.program)
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	bindings := m.keys.mainHelp()
	if m.overlay.IsVisible() {
		bindings = m.keys.overlayHelp()
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Archives:       m.archiveItems(),
		StatusMessage:  m.status,
		HelpView:       m.help.ShortHelpView(bindings),
		OverlayVisible: m.overlay.IsVisible(),
	}
	if state.OverlayVisible {
		state.Overlay = views.OverlayState{
			Input:       m.input.View(),
			InputText:   m.input.Value(),
			Marked:      m.marked,
			Query:       m.search.GetQuery(),
			HasArchive:  m.search.Archive() != nil,
			Entries:     m.search.Entries(),
			Groups:      m.search.Groups(),
			Cursor:      m.search.Cursor(),
			PropertyKey: m.config.Search.PropertyKey,
			MaxResults:  m.config.Search.MaxResults,
			Width:       m.overlayWidth(),
			Highlight:   m.search.Highlight,
		}
	}

	screen, layout := m.renderer.Render(state)
	m.overlayView = layout
	return screen
}

func (m *Model) archiveItems() []views.ArchiveItem {
	selected := m.store.SelectedID()
	var items []views.ArchiveItem
	for _, id := range m.store.OrderedIDs() {
		a := m.store.GetArchive(id)
		if a == nil {
			continue
		}
		items = append(items, views.ArchiveItem{ID: id, Name: a.Name(), Selected: id == selected})
	}
	return items
}

func (m *Model) overlayWidth() int {
	w := m.width * 2 / 3
	if w > maxOverlayWidth {
		w = maxOverlayWidth
	}
	if w < minOverlayWidth {
		w = minOverlayWidth
	}
	return w
}

func lenPrompt(prompt string) int {
	return len([]rune(prompt))
}

// String is used in logs
func (m *Model) String() string {
	return fmt.Sprintf("ui.Model{visible=%t query=%q}", m.overlay.IsVisible(), m.search.GetQuery())
}
