// Package testutil holds archive doubles shared by package tests.
package testutil

import (
	"github.com/stretchr/testify/mock"

	"vaultsearch/internal/domain"
)

// MockArchive is a testify mock of domain.Archive
type MockArchive struct {
	mock.Mock
	ArchiveID string
}

func (m *MockArchive) ID() string   { return m.ArchiveID }
func (m *MockArchive) Name() string { return m.ArchiveID }

func (m *MockArchive) FindEntriesByProperty(key, value string) []domain.EntryRef {
	args := m.Called(key, value)
	entries, _ := args.Get(0).([]domain.EntryRef)
	return entries
}

func (m *MockArchive) FindGroupsByTitle(value string) []domain.GroupRef {
	args := m.Called(value)
	groups, _ := args.Get(0).([]domain.GroupRef)
	return groups
}

// MockResolver is a testify mock of domain.ArchiveResolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveArchive(id string) domain.Archive {
	args := m.Called(id)
	archive, _ := args.Get(0).(domain.Archive)
	return archive
}

// StubGroup is a fixed GroupRef
type StubGroup struct {
	GroupID    string
	GroupTitle string
}

func (g StubGroup) ID() string    { return g.GroupID }
func (g StubGroup) Title() string { return g.GroupTitle }

// StubEntry is a fixed EntryRef
type StubEntry struct {
	EntryID    string
	Title      string
	Parent     StubGroup
	EntryIcon  domain.Icon
	Properties map[string]string
}

func (e StubEntry) ID() string { return e.EntryID }

func (e StubEntry) Property(key string) string {
	if key == domain.PropertyTitle {
		return e.Title
	}
	return e.Properties[key]
}

func (e StubEntry) Group() domain.GroupRef { return e.Parent }
func (e StubEntry) Icon() domain.Icon      { return e.EntryIcon }

// NewEntry builds a stub entry in a group
func NewEntry(id, title string, group StubGroup) StubEntry {
	return StubEntry{EntryID: id, Title: title, Parent: group}
}

// Entries converts stubs to the domain slice type
func Entries(stubs ...StubEntry) []domain.EntryRef {
	out := make([]domain.EntryRef, 0, len(stubs))
	for _, s := range stubs {
		out = append(out, s)
	}
	return out
}

// Groups converts stubs to the domain slice type
func Groups(stubs ...StubGroup) []domain.GroupRef {
	out := make([]domain.GroupRef, 0, len(stubs))
	for _, s := range stubs {
		out = append(out, s)
	}
	return out
}
