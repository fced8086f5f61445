package overlay

import (
	"log"
	"sync"

	"vaultsearch/internal/domain"
	"vaultsearch/internal/eventbus"
	"vaultsearch/internal/ui/services/search"
)

// Controller toggles the search overlay on open-search signals and hides it on
// dismissal or selection. The archive resolved on open is handed to the
// search service as a snapshot for the whole session.
//
// Bus handlers never touch state: Activate forwards events to a deliver func
// that must hand them to the UI loop, which then calls HandleEvent.
type Controller struct {
	state     *State
	bus       eventbus.EventBus
	resolver  domain.ArchiveResolver
	search    *search.Service
	callbacks Callbacks
	opts      Options

	mu          sync.Mutex
	unsubscribe func()
}

// NewController creates a new overlay controller
func NewController(bus eventbus.EventBus, resolver domain.ArchiveResolver, svc *search.Service, callbacks Callbacks, opts Options) *Controller {
	return &Controller{
		state:     &State{},
		bus:       bus,
		resolver:  resolver,
		search:    svc,
		callbacks: callbacks,
		opts:      opts,
	}
}

// Activate subscribes to open-search requests. Events are passed to deliver,
// which must run HandleEvent on the UI loop. The returned func releases the
// subscription; so does Deactivate. Activating twice keeps one subscription.
func (c *Controller) Activate(deliver func(domain.DomainEvent)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unsubscribe == nil && c.bus != nil {
		c.unsubscribe = c.bus.Subscribe(eventbus.EventOpenSearchRequested, func(e eventbus.DomainEvent) {
			deliver(e)
		})
	}
	return c.Deactivate
}

// Deactivate releases the bus subscription. Safe to call repeatedly.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Active reports whether the controller holds a subscription
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unsubscribe != nil
}

// HandleEvent applies a delivered event. Unrelated events are ignored.
func (c *Controller) HandleEvent(event domain.DomainEvent) {
	if e, ok := event.(domain.OpenSearchRequestedEvent); ok {
		c.OpenForArchive(e.ArchiveID)
	}
}

// OpenForArchive toggles the overlay for the given archive. An empty id means
// nothing is selected upstream and the call does nothing.
func (c *Controller) OpenForArchive(archiveID string) {
	if archiveID == "" {
		log.Printf("Overlay: open requested with no archive selected")
		return
	}

	c.state.Visible = !c.state.Visible
	c.state.ArchiveID = archiveID

	var archive domain.Archive
	if c.resolver != nil {
		archive = c.resolver.ResolveArchive(archiveID)
	}
	if archive == nil {
		log.Printf("Overlay: archive %s could not be resolved", archiveID)
	}
	if c.search != nil {
		c.search.SetArchive(archive)
	}

	if !c.state.Visible {
		c.hidden()
		return
	}
	if c.callbacks.OnFocus != nil {
		c.callbacks.OnFocus()
	}
}

// Close hides the overlay
func (c *Controller) Close() {
	if !c.state.Visible {
		return
	}
	c.state.Visible = false
	c.hidden()
}

// IsVisible reports whether the overlay is shown
func (c *Controller) IsVisible() bool {
	return c.state.Visible
}

// ArchiveID returns the id the overlay was last opened for
func (c *Controller) ArchiveID() string {
	return c.state.ArchiveID
}

// SelectEntry reports the entry's group, then the entry, then hides the overlay
func (c *Controller) SelectEntry(entry domain.EntryRef) {
	if entry == nil {
		return
	}
	if group := entry.Group(); group != nil && c.callbacks.OnGroupSelected != nil {
		c.callbacks.OnGroupSelected(group.ID())
	}
	if c.callbacks.OnEntrySelected != nil {
		c.callbacks.OnEntrySelected(entry.ID())
	}
	c.Close()
}

// SelectGroup reports the group, then hides the overlay
func (c *Controller) SelectGroup(group domain.GroupRef) {
	if group == nil {
		return
	}
	if c.callbacks.OnGroupSelected != nil {
		c.callbacks.OnGroupSelected(group.ID())
	}
	c.Close()
}

// SelectCurrent selects the result under the search cursor.
// Returns false when there is nothing to select.
func (c *Controller) SelectCurrent() bool {
	if c.search == nil {
		return false
	}
	result, ok := c.search.Current()
	if !ok {
		return false
	}
	if result.IsEntry() {
		c.SelectEntry(result.Entry)
	} else {
		c.SelectGroup(result.Group)
	}
	return true
}

func (c *Controller) hidden() {
	if c.opts.ResetOnClose && c.search != nil {
		c.search.Clear()
	}
}
