// Package search implements the directory search engine: a tokenized
// substring filter over contacts, a bounded recency-ordered search history
// and the per-view [Session] that commits typed queries to the history after
// a quiet period.
package search

import (
	"strings"

	"github.com/MKhiriev/go-phonebook/models"
)

// Tokens splits the lowercased, trimmed query on whitespace.
// A blank query yields no tokens.
func Tokens(query string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(query)))
}

// Matches reports whether every token is a substring of the contact's
// lowercased full name. No tokens match everything.
func Matches(c models.Contact, tokens []string) bool {
	name := c.FullName()
	for _, tok := range tokens {
		if !strings.Contains(name, tok) {
			return false
		}
	}
	return true
}

// Filter returns the contacts matching query in their input order.
// A blank query returns contacts unchanged.
func Filter(contacts []models.Contact, query string) []models.Contact {
	tokens := Tokens(query)
	if len(tokens) == 0 {
		return contacts
	}

	matched := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if Matches(c, tokens) {
			matched = append(matched, c)
		}
	}
	return matched
}
