package overlay

// State holds overlay visibility
type State struct {
	Visible   bool
	ArchiveID string // id the overlay was last opened for
}

// Callbacks are invoked on the UI loop. Any of them may be nil.
type Callbacks struct {
	// OnFocus runs when the overlay becomes visible. The input should take
	// focus with its current text selected.
	OnFocus         func()
	OnEntrySelected func(entryID string)
	OnGroupSelected func(groupID string)
}

// Options configures the controller
type Options struct {
	// ResetOnClose clears the query and results whenever the overlay hides.
	// When false, reopening resumes the previous search.
	ResetOnClose bool
}
