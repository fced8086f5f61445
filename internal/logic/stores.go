package logic

import (
	"sync"

	"vaultsearch/internal/domain"
	"vaultsearch/internal/eventbus"
)

// MemoryArchiveStore is an in-memory implementation of ArchiveStore
type MemoryArchiveStore struct {
	mu       sync.RWMutex
	bus      eventbus.EventBus
	archives map[string]domain.Archive
	order    []string
	selected string
}

var _ ArchiveStore = (*MemoryArchiveStore)(nil)

// NewMemoryArchiveStore creates a new memory-based archive store.
// bus may be nil.
func NewMemoryArchiveStore(bus eventbus.EventBus) *MemoryArchiveStore {
	return &MemoryArchiveStore{
		bus:      bus,
		archives: make(map[string]domain.Archive),
	}
}

func (s *MemoryArchiveStore) GetArchive(id string) domain.Archive {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.archives[id]
}

// ResolveArchive returns nil for unknown ids
func (s *MemoryArchiveStore) ResolveArchive(id string) domain.Archive {
	if id == "" {
		return nil
	}
	return s.GetArchive(id)
}

func (s *MemoryArchiveStore) GetAllArchives() map[string]domain.Archive {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]domain.Archive, len(s.archives))
	for k, v := range s.archives {
		result[k] = v
	}
	return result
}

// OrderedIDs returns archive ids in the order they were added
func (s *MemoryArchiveStore) OrderedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// AddArchive adds or replaces an archive. The first archive added becomes selected.
func (s *MemoryArchiveStore) AddArchive(archive domain.Archive) {
	s.mu.Lock()
	id := archive.ID()
	if _, exists := s.archives[id]; !exists {
		s.order = append(s.order, id)
	}
	s.archives[id] = archive
	selectFirst := s.selected == ""
	if selectFirst {
		s.selected = id
	}
	s.mu.Unlock()

	s.publish(domain.ArchiveAddedEvent{ArchiveID: id, Name: archive.Name()})
	if selectFirst {
		s.publish(domain.ArchiveSelectedEvent{ArchiveID: id})
	}
}

// RemoveArchive drops an archive and clears the selection if it pointed at it
func (s *MemoryArchiveStore) RemoveArchive(id string) {
	s.mu.Lock()
	if _, exists := s.archives[id]; !exists {
		s.mu.Unlock()
		return
	}
	delete(s.archives, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	cleared := s.selected == id
	if cleared {
		s.selected = ""
	}
	s.mu.Unlock()

	s.publish(domain.ArchiveRemovedEvent{ArchiveID: id})
	if cleared {
		s.publish(domain.ArchiveSelectedEvent{})
	}
}

// SelectArchive marks id as selected; "" clears the selection.
// Returns false when id is unknown.
func (s *MemoryArchiveStore) SelectArchive(id string) bool {
	s.mu.Lock()
	if id != "" {
		if _, exists := s.archives[id]; !exists {
			s.mu.Unlock()
			return false
		}
	}
	changed := s.selected != id
	s.selected = id
	s.mu.Unlock()

	if changed {
		s.publish(domain.ArchiveSelectedEvent{ArchiveID: id})
	}
	return true
}

func (s *MemoryArchiveStore) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

func (s *MemoryArchiveStore) publish(event domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
