// Package i18n looks up user-facing labels by key.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Label keys
const (
	KeySearchPlaceholder = "search.placeholder"
	KeySearchEntries     = "search.entries"
	KeySearchGroups      = "search.groups"
	KeySearchNoResults   = "search.no-results"
	KeySearchNoArchive   = "search.no-archive"
	KeySearchMore        = "search.more"
	KeySearchInGroup     = "search.in-group"
	KeyArchives          = "main.archives"
	KeyNoArchives        = "main.no-archives"
	KeyLastSelection     = "main.last-selection"
	KeyHelpOpenSearch    = "help.open-search"
	KeyHelpNavigate      = "help.navigate"
	KeyHelpSelect        = "help.select"
	KeyHelpClose         = "help.close"
	KeyHelpSwitch        = "help.switch-archive"
	KeyHelpHelp          = "help.help"
	KeyHelpQuit          = "help.quit"
	KeyHelpTitle         = "help.title"
)

var supported = []language.Tag{
	language.English,
	language.German,
}

var matcher = language.NewMatcher(supported)

var messages = map[language.Tag]map[string]string{
	language.English: {
		KeySearchPlaceholder: "Search entries and groups…",
		KeySearchEntries:     "Entries",
		KeySearchGroups:      "Groups",
		KeySearchNoResults:   "No matches",
		KeySearchNoArchive:   "No archive selected",
		KeySearchMore:        "… %d more",
		KeySearchInGroup:     "in %s",
		KeyArchives:          "Archives",
		KeyNoArchives:        "No archives loaded",
		KeyLastSelection:     "Selected: %s",
		KeyHelpOpenSearch:    "open/close search",
		KeyHelpNavigate:      "move",
		KeyHelpSelect:        "select",
		KeyHelpClose:         "close",
		KeyHelpSwitch:        "switch archive",
		KeyHelpHelp:          "help",
		KeyHelpQuit:          "quit",
		KeyHelpTitle:         "vaultsearch keys",
	},
	language.German: {
		KeySearchPlaceholder: "Einträge und Gruppen durchsuchen…",
		KeySearchEntries:     "Einträge",
		KeySearchGroups:      "Gruppen",
		KeySearchNoResults:   "Keine Treffer",
		KeySearchNoArchive:   "Kein Archiv ausgewählt",
		KeySearchMore:        "… %d weitere",
		KeySearchInGroup:     "in %s",
		KeyArchives:          "Archive",
		KeyNoArchives:        "Keine Archive geladen",
		KeyLastSelection:     "Ausgewählt: %s",
		KeyHelpOpenSearch:    "Suche öffnen/schließen",
		KeyHelpNavigate:      "bewegen",
		KeyHelpSelect:        "auswählen",
		KeyHelpClose:         "schließen",
		KeyHelpSwitch:        "Archiv wechseln",
		KeyHelpHelp:          "Hilfe",
		KeyHelpQuit:          "beenden",
		KeyHelpTitle:         "vaultsearch Tasten",
	},
}

var cat = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, strs := range messages {
		for key, text := range strs {
			// only fails for malformed messages, which the tables above don't contain
			_ = b.SetString(tag, key, text)
		}
	}
	return b
}

// Translator resolves label keys for one language
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a translator for lang (BCP 47, e.g. "de-AT").
// Unknown or unsupported languages fall back to English.
func New(lang string) *Translator {
	tag := language.English
	if parsed, err := language.Parse(lang); err == nil {
		_, index, _ := matcher.Match(parsed)
		tag = supported[index]
	}
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Language returns the language labels are rendered in
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T returns the label for key, formatted with args. Unknown keys are returned as-is.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}
