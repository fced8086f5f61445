package search

import (
	"log"
	"regexp"

	"vaultsearch/internal/domain"
	"vaultsearch/internal/eventbus"
)

// Service derives entry and group matches from an archive snapshot and the
// current query. Results are recomputed on every query change and are never
// merged with earlier ones. All methods must be called from the UI loop.
type Service struct {
	state   *State
	bus     eventbus.EventBus
	opts    Options
	matcher *regexp.Regexp // literal matcher for state.Query, nil when empty
}

// NewService creates a new search service. bus may be nil.
func NewService(bus eventbus.EventBus, opts Options) *Service {
	if opts.PropertyKey == "" {
		opts.PropertyKey = domain.PropertyTitle
	}
	return &Service{
		state: &State{},
		bus:   bus,
		opts:  opts,
	}
}

// SetArchive replaces the archive snapshot and re-derives results for the
// current query. The archive is kept as-is until the next call; it is not
// re-resolved per keystroke.
func (s *Service) SetArchive(archive domain.Archive) {
	s.state.Archive = archive
	s.derive()
}

// Archive returns the current snapshot, nil if none
func (s *Service) Archive() domain.Archive {
	return s.state.Archive
}

// SetQuery stores the query and derives fresh results for it
func (s *Service) SetQuery(query string) {
	s.state.Query = query
	s.publish(domain.SearchStartedEvent{Query: query})

	s.matcher = nil
	if query != "" {
		re, err := compileLiteral(query, s.opts.CaseSensitive)
		if err != nil {
			log.Printf("Search: could not build highlight pattern: %v", err)
		} else {
			s.matcher = re
		}
	}

	s.derive()
}

// Clear empties the query and both result lists
func (s *Service) Clear() {
	s.SetQuery("")
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// Entries returns matched entries in archive order
func (s *Service) Entries() []domain.EntryRef {
	return s.state.Entries
}

// Groups returns matched groups in archive order
func (s *Service) Groups() []domain.GroupRef {
	return s.state.Groups
}

// ResultCount returns the number of entries plus groups
func (s *Service) ResultCount() int {
	return len(s.state.Entries) + len(s.state.Groups)
}

// Results returns entries followed by groups as one list
func (s *Service) Results() []Result {
	results := make([]Result, 0, s.ResultCount())
	for _, e := range s.state.Entries {
		results = append(results, Result{Entry: e})
	}
	for _, g := range s.state.Groups {
		results = append(results, Result{Group: g})
	}
	return results
}

// Cursor returns the index of the current result in Results, -1 when there are none
func (s *Service) Cursor() int {
	if s.ResultCount() == 0 {
		return -1
	}
	return s.state.Cursor
}

// Current returns the result under the cursor
func (s *Service) Current() (Result, bool) {
	idx := s.Cursor()
	if idx < 0 {
		return Result{}, false
	}
	if idx < len(s.state.Entries) {
		return Result{Entry: s.state.Entries[idx]}, true
	}
	return Result{Group: s.state.Groups[idx-len(s.state.Entries)]}, true
}

// NavigateNext moves the cursor to the next shown result, wrapping at the end
func (s *Service) NavigateNext() {
	s.step(1)
}

// NavigatePrevious moves the cursor to the previous shown result, wrapping at the top
func (s *Service) NavigatePrevious() {
	s.step(-1)
}

// Shown returns how many entries and groups are visible under MaxPerSection
func (s *Service) Shown() (entries, groups int) {
	return capped(len(s.state.Entries), s.opts.MaxPerSection), capped(len(s.state.Groups), s.opts.MaxPerSection)
}

// selectable lists the Results indexes of shown rows, entries first
func (s *Service) selectable() []int {
	shownEntries, shownGroups := s.Shown()
	idx := make([]int, 0, shownEntries+shownGroups)
	for i := 0; i < shownEntries; i++ {
		idx = append(idx, i)
	}
	for i := 0; i < shownGroups; i++ {
		idx = append(idx, len(s.state.Entries)+i)
	}
	return idx
}

func (s *Service) step(delta int) {
	rows := s.selectable()
	if len(rows) == 0 {
		return
	}
	pos := 0
	for i, idx := range rows {
		if idx == s.state.Cursor {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(rows)) % len(rows)
	s.state.Cursor = rows[pos]
}

func capped(n, maxN int) int {
	if maxN > 0 && n > maxN {
		return maxN
	}
	return n
}

// Highlight splits label into spans around every occurrence of the current query
func (s *Service) Highlight(label string) []Span {
	if s.state.Query == "" {
		return []Span{{Text: label}}
	}
	return split(label, s.matcher)
}

// CaseSensitive reports the matching policy used by Highlight
func (s *Service) CaseSensitive() bool {
	return s.opts.CaseSensitive
}

// Internal methods
func (s *Service) derive() {
	s.state.Cursor = 0

	if s.state.Query == "" {
		s.state.Entries = nil
		s.state.Groups = nil
		s.publish(domain.SearchClearedEvent{})
		return
	}

	if s.state.Archive == nil {
		s.state.Entries = nil
		s.state.Groups = nil
	} else {
		s.state.Entries, s.state.Groups = s.find(s.state.Archive, s.state.Query)
	}

	log.Printf("Search completed: %d entries, %d groups", len(s.state.Entries), len(s.state.Groups))

	s.publish(domain.SearchCompletedEvent{
		Query:      s.state.Query,
		EntryCount: len(s.state.Entries),
		GroupCount: len(s.state.Groups),
	})
}

// find queries the archive; a panicking archive yields no results
func (s *Service) find(archive domain.Archive, query string) (entries []domain.EntryRef, groups []domain.GroupRef) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Search: archive query failed: %v", r)
			entries, groups = nil, nil
		}
	}()

	entries = archive.FindEntriesByProperty(s.opts.PropertyKey, query)
	groups = archive.FindGroupsByTitle(query)
	return entries, groups
}

func (s *Service) publish(event domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
