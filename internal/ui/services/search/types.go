package search

import "vaultsearch/internal/domain"

// State holds the search session derived from (Archive, Query)
type State struct {
	Archive domain.Archive // snapshot taken when the overlay opened; may be nil
	Query   string
	Entries []domain.EntryRef
	Groups  []domain.GroupRef
	Cursor  int // index into Entries followed by Groups
}

// Options configures the search service
type Options struct {
	// PropertyKey is the entry property matched against the query
	PropertyKey   string
	CaseSensitive bool
	// MaxPerSection is how many entries and how many groups are shown.
	// The cursor only visits shown rows. 0 means no limit.
	MaxPerSection int
}

// DefaultOptions searches entry titles and highlights exact-case matches
func DefaultOptions() Options {
	return Options{
		PropertyKey:   domain.PropertyTitle,
		CaseSensitive: true,
	}
}

// Result is one row of the combined result list. Exactly one field is set.
type Result struct {
	Entry domain.EntryRef
	Group domain.GroupRef
}

// IsEntry reports whether the result is an entry
func (r Result) IsEntry() bool { return r.Entry != nil }

// Span is a run of label text. Match marks an occurrence of the query.
type Span struct {
	Text  string
	Match bool
}
