// Package vault provides the in-memory archive the program searches: a tree
// of groups holding entries, queried by case-insensitive substring.
package vault

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"vaultsearch/internal/domain"
)

// TrashGroupID is the id of the group whose contents never show up in searches
const TrashGroupID = "trash"

var (
	ErrDuplicateID  = errors.New("duplicate id")
	ErrUnknownGroup = errors.New("unknown group")
)

// Group is a folder of entries and subgroups
type Group struct {
	id       string
	title    string
	parent   *Group
	children []*Group
	entries  []*Entry
}

func (g *Group) ID() string    { return g.id }
func (g *Group) Title() string { return g.title }

// Parent returns the containing group, nil for top-level groups
func (g *Group) Parent() *Group { return g.parent }

// Entry is a single credential record
type Entry struct {
	id         string
	group      *Group
	properties map[string]string
	icon       domain.Icon
}

func (e *Entry) ID() string { return e.id }

// Property returns the value stored under key, "" if missing
func (e *Entry) Property(key string) string { return e.properties[key] }

func (e *Entry) Group() domain.GroupRef { return e.group }
func (e *Entry) Icon() domain.Icon      { return e.icon }

// Archive is an in-memory vault
type Archive struct {
	mu      sync.RWMutex
	id      string
	name    string
	roots   []*Group
	groups  map[string]*Group
	entries map[string]*Entry
}

var _ domain.Archive = (*Archive)(nil)

// NewArchive creates an empty archive
func NewArchive(id, name string) *Archive {
	return &Archive{
		id:      id,
		name:    name,
		groups:  make(map[string]*Group),
		entries: make(map[string]*Entry),
	}
}

func (a *Archive) ID() string   { return a.id }
func (a *Archive) Name() string { return a.name }

// AddGroup creates a group under parentID ("" for top level)
func (a *Archive) AddGroup(id, title, parentID string) (*Group, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.groups[id]; exists {
		return nil, fmt.Errorf("group %s: %w", id, ErrDuplicateID)
	}

	g := &Group{id: id, title: title}
	if parentID == "" {
		a.roots = append(a.roots, g)
	} else {
		parent, ok := a.groups[parentID]
		if !ok {
			return nil, fmt.Errorf("parent %s of group %s: %w", parentID, id, ErrUnknownGroup)
		}
		g.parent = parent
		parent.children = append(parent.children, g)
	}
	a.groups[id] = g
	return g, nil
}

// AddEntry creates an entry inside groupID. The property map is copied.
func (a *Archive) AddEntry(id, groupID string, properties map[string]string, icon domain.Icon) (*Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.entries[id]; exists {
		return nil, fmt.Errorf("entry %s: %w", id, ErrDuplicateID)
	}
	g, ok := a.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("group %s of entry %s: %w", groupID, id, ErrUnknownGroup)
	}

	props := make(map[string]string, len(properties))
	for k, v := range properties {
		props[k] = v
	}
	e := &Entry{id: id, group: g, properties: props, icon: icon}
	g.entries = append(g.entries, e)
	a.entries[id] = e
	return e, nil
}

// Entry returns the entry with the given id, nil if missing
func (a *Archive) Entry(id string) *Entry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.entries[id]
}

// Group returns the group with the given id, nil if missing
func (a *Archive) Group(id string) *Group {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.groups[id]
}

// FindEntriesByProperty returns entries whose property contains value,
// ignoring case, in depth-first group order. Trashed entries are skipped.
func (a *Archive) FindEntriesByProperty(key, value string) []domain.EntryRef {
	if value == "" {
		return nil
	}
	needle := strings.ToLower(value)

	a.mu.RLock()
	defer a.mu.RUnlock()

	var results []domain.EntryRef
	a.walk(func(g *Group) {
		for _, e := range g.entries {
			if strings.Contains(strings.ToLower(e.properties[key]), needle) {
				results = append(results, e)
			}
		}
	})
	return results
}

// FindGroupsByTitle returns groups whose title contains value, ignoring case,
// in depth-first order. The trash group and its subgroups are skipped.
func (a *Archive) FindGroupsByTitle(value string) []domain.GroupRef {
	if value == "" {
		return nil
	}
	needle := strings.ToLower(value)

	a.mu.RLock()
	defer a.mu.RUnlock()

	var results []domain.GroupRef
	a.walk(func(g *Group) {
		if strings.Contains(strings.ToLower(g.title), needle) {
			results = append(results, g)
		}
	})
	return results
}

// walk visits every group outside the trash, parents before children
func (a *Archive) walk(fn func(*Group)) {
	var visit func(g *Group)
	visit = func(g *Group) {
		if g.id == TrashGroupID {
			return
		}
		fn(g)
		for _, child := range g.children {
			visit(child)
		}
	}
	for _, root := range a.roots {
		visit(root)
	}
}
