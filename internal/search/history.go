package search

import (
	"slices"
	"strings"
	"time"
)

const (
	// HistoryCapacity is the maximum number of remembered queries.
	HistoryCapacity = 10

	// HistoryKey is the storage key the history list is persisted under.
	HistoryKey = "contacts_search_history"

	// DefaultDebounce is the idle period after the last keystroke before a
	// typed query is committed to the history.
	DefaultDebounce = 2 * time.Second
)

// Record returns a new history with the trimmed query at the front.
// An existing equal entry is moved rather than duplicated and the result is
// truncated to [HistoryCapacity]. A blank query returns an unchanged copy.
func Record(history []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return slices.Clone(history)
	}

	next := make([]string, 0, min(len(history)+1, HistoryCapacity))
	next = append(next, query)
	for _, entry := range history {
		if len(next) == HistoryCapacity {
			break
		}
		if entry == query {
			continue
		}
		next = append(next, entry)
	}
	return next
}

// Remove returns a new history without entry.
func Remove(history []string, entry string) []string {
	next := make([]string, 0, len(history))
	for _, e := range history {
		if e != entry {
			next = append(next, e)
		}
	}
	return next
}

// Clear returns an empty history.
func Clear() []string {
	return []string{}
}

// Sanitize drops blank and duplicate entries from a stored list, keeping the
// first occurrence, and truncates it to [HistoryCapacity].
func Sanitize(stored []string) []string {
	next := make([]string, 0, min(len(stored), HistoryCapacity))
	seen := make(map[string]struct{}, len(stored))
	for _, e := range stored {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		next = append(next, e)
		if len(next) == HistoryCapacity {
			break
		}
	}
	return next
}
