package logic

import "vaultsearch/internal/domain"

// ArchiveStore provides access to the unlocked archives and tracks which one is selected
type ArchiveStore interface {
	domain.ArchiveResolver
	GetArchive(id string) domain.Archive
	GetAllArchives() map[string]domain.Archive
	OrderedIDs() []string
	AddArchive(archive domain.Archive)
	RemoveArchive(id string)
	SelectArchive(id string) bool
	SelectedID() string
}
