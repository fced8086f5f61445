package domain

// Icon describes how an entry is drawn in result lists
type Icon struct {
	Glyph string // single-cell symbol, e.g. "🔑" or "@"
	Color string // lipgloss color code ("" for default)
}

// Common entry property keys
const (
	PropertyTitle    = "title"
	PropertyUsername = "username"
	PropertyURL      = "url"
)

// GroupRef is a read-only view of a group owned by an archive
type GroupRef interface {
	ID() string
	Title() string
}

// EntryRef is a read-only view of an entry owned by an archive
type EntryRef interface {
	ID() string
	Property(key string) string
	Group() GroupRef
	Icon() Icon
}

// Archive is an unlocked vault that can be queried for entries and groups.
// Implementations own their entries and groups; callers only hold references
// for the duration of a query.
type Archive interface {
	ID() string
	Name() string
	FindEntriesByProperty(key, value string) []EntryRef
	FindGroupsByTitle(value string) []GroupRef
}

// ArchiveResolver resolves archive identifiers to archives.
// ResolveArchive returns nil when the identifier is unknown.
type ArchiveResolver interface {
	ResolveArchive(id string) Archive
}
