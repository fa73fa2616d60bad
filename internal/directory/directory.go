// Package directory groups a contact list into alphabetical sections for
// indexed display.
//
// Grouping and ordering are locale-aware: section titles are upper-cased
// with the casing rules of the configured language and both titles and
// entries are ordered by that language's collation. The functions are pure
// and deterministic; callers pass in a snapshot and get a new value back.
package directory

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-phonebook/models"
)

// OtherTitle is the title of the section holding contacts whose names do
// not start with a letter.
const OtherTitle = "#"

// Indexer builds sections using the collation and casing of one language.
// The zero value is not usable; construct it with [NewIndexer].
type Indexer struct {
	tag language.Tag
}

// NewIndexer returns an Indexer for tag. language.Und selects the root
// collation.
func NewIndexer(tag language.Tag) *Indexer {
	return &Indexer{tag: tag}
}

// BuildSections groups contacts with the root collation. See
// [Indexer.BuildSections].
func BuildSections(contacts []models.Contact) []models.DirectorySection {
	return NewIndexer(language.Und).BuildSections(contacts)
}

type sortEntry struct {
	key     string
	contact models.Contact
}

// BuildSections groups contacts by the first letter of their first name,
// falling back to the last name and then to [OtherTitle]. Sections are
// ordered by title and entries by full name; entries with equal names keep
// their input order. Every input contact appears exactly once in the output
// and no section is empty.
func (ix *Indexer) BuildSections(contacts []models.Contact) []models.DirectorySection {
	if len(contacts) == 0 {
		return []models.DirectorySection{}
	}

	// collators and casers keep internal buffers, so they are built per call
	col := collate.New(ix.tag)
	upper := cases.Upper(ix.tag)

	groups := make(map[string][]sortEntry)
	titles := make([]string, 0, 27)
	for _, c := range contacts {
		title := sectionTitle(c, upper)
		if _, ok := groups[title]; !ok {
			titles = append(titles, title)
		}
		groups[title] = append(groups[title], sortEntry{key: c.FullName(), contact: c})
	}

	slices.SortFunc(titles, func(a, b string) int {
		return compare(col, a, b)
	})

	sections := make([]models.DirectorySection, 0, len(titles))
	for _, title := range titles {
		entries := groups[title]
		slices.SortStableFunc(entries, func(a, b sortEntry) int {
			return col.CompareString(a.key, b.key)
		})

		section := models.DirectorySection{
			Title:   title,
			Entries: make([]models.Contact, 0, len(entries)),
		}
		for _, e := range entries {
			section.Entries = append(section.Entries, e.contact)
		}
		sections = append(sections, section)
	}

	return sections
}

// compare orders a and b by collation and breaks collation ties by byte
// order, so distinct titles never compare equal.
func compare(col *collate.Collator, a, b string) int {
	if c := col.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func sectionTitle(c models.Contact, upper cases.Caser) string {
	name := strings.TrimSpace(c.FirstName)
	if name == "" {
		name = strings.TrimSpace(c.LastName)
	}
	if name == "" {
		return OtherTitle
	}

	r, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsLetter(r) {
		return OtherTitle
	}

	title := upper.String(string(r))
	if utf8.RuneCountInString(title) != 1 {
		// multi-rune expansions such as ß -> SS
		return string(unicode.ToUpper(r))
	}
	return title
}
