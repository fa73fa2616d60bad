package directory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-phonebook/models"
)

func contact(id, first, last string) models.Contact {
	return models.Contact{ID: id, FirstName: first, LastName: last}
}

func titles(sections []models.DirectorySection) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Title)
	}
	return out
}

func ids(entries []models.Contact) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestBuildSections_Empty(t *testing.T) {
	sections := BuildSections(nil)
	require.NotNil(t, sections)
	assert.Empty(t, sections)
}

func TestBuildSections_GroupingKey(t *testing.T) {
	contacts := []models.Contact{
		contact("1", "ada", "Lovelace"),
		contact("2", "", "byron"),
		contact("3", "", ""),
		contact("4", "  ", "  "),
		contact("5", "42", "Answer"),
		contact("6", "  zoe", "Z"),
	}

	sections := BuildSections(contacts)

	assert.Equal(t, []string{"#", "A", "B", "Z"}, titles(sections))
	assert.Equal(t, []string{"3", "4", "5"}, ids(sections[0].Entries))
	assert.Equal(t, []string{"1"}, ids(sections[1].Entries))
	assert.Equal(t, []string{"2"}, ids(sections[2].Entries))
	assert.Equal(t, []string{"6"}, ids(sections[3].Entries))
}

func TestBuildSections_EntryOrder(t *testing.T) {
	contacts := []models.Contact{
		contact("1", "Ada", "Lovelace"),
		contact("2", "ada", "Byron"),
		contact("3", "Alan", "Turing"),
		contact("4", "Ada", "Lovelace"),
	}

	sections := BuildSections(contacts)

	require.Len(t, sections, 1)
	assert.Equal(t, "A", sections[0].Title)
	// equal names keep input order
	assert.Equal(t, []string{"2", "1", "4", "3"}, ids(sections[0].Entries))
}

func TestBuildSections_LocaleAwareTitles(t *testing.T) {
	contacts := []models.Contact{
		contact("1", "Zeynep", "Kaya"),
		contact("2", "émile", "Zola"),
		contact("3", "Fatma", "Demir"),
		contact("4", "Ece", "Yılmaz"),
	}

	sections := BuildSections(contacts)

	assert.Equal(t, []string{"E", "É", "F", "Z"}, titles(sections))
}

func TestIndexer_TurkishCasing(t *testing.T) {
	contacts := []models.Contact{
		contact("1", "ismail", "Kaya"),
		contact("2", "ırmak", "Demir"),
	}

	sections := NewIndexer(language.Turkish).BuildSections(contacts)

	assert.ElementsMatch(t, []string{"İ", "I"}, titles(sections))
}

func TestBuildSections_Properties(t *testing.T) {
	names := [][2]string{
		{"Ada", "Lovelace"}, {"", "Byron"}, {"", ""}, {"bob", ""}, {"Bob", "Marley"},
		{"çağla", "Su"}, {"Çınar", "Ak"}, {"9lives", ""}, {"Émile", "Zola"}, {"emma", "Stone"},
		{"Zoë", "Kravitz"}, {"ß", "Strauss"}, {"Ölmez", "Can"}, {"Ada", "Lovelace"},
	}
	contacts := make([]models.Contact, 0, len(names))
	for i, n := range names {
		contacts = append(contacts, contact(fmt.Sprint(i), n[0], n[1]))
	}

	sections := BuildSections(contacts)
	col := collate.New(language.Und)

	seen := make(map[string]int)
	seenTitles := make(map[string]bool)
	for i, s := range sections {
		assert.NotEmpty(t, s.Entries, "section %q is empty", s.Title)
		assert.False(t, seenTitles[s.Title], "duplicate title %q", s.Title)
		seenTitles[s.Title] = true
		if i > 0 {
			assert.Negative(t, compare(col, sections[i-1].Title, s.Title), "titles out of order")
		}
		for _, e := range s.Entries {
			seen[e.ID]++
		}
	}

	require.Len(t, seen, len(contacts))
	for id, n := range seen {
		assert.Equal(t, 1, n, "contact %s appears %d times", id, n)
	}
}

func TestBuildSections_DoesNotMutateInput(t *testing.T) {
	contacts := []models.Contact{
		contact("1", "Zed", ""),
		contact("2", "Amy", ""),
	}

	_ = BuildSections(contacts)

	assert.Equal(t, "1", contacts[0].ID)
	assert.Equal(t, "2", contacts[1].ID)
}
