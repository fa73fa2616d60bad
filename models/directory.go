package models

// DirectorySection is an alphabetical group of contacts used for indexed
// display. Sections are rebuilt on every fetch or mutation and never
// persisted.
type DirectorySection struct {
	// Title is a single upper-case letter or "#".
	Title string `json:"title"`

	// Entries are ordered by the locale-aware comparison of the contacts'
	// lowercased full names.
	Entries []Contact `json:"entries"`
}

// DirectoryView is the searchable, sectioned view produced by one pass of
// the fetch, match, index and search pipeline.
type DirectoryView struct {
	// Query is the active query the view was filtered with.
	Query string `json:"query"`

	// Total is the number of contacts before filtering.
	Total int `json:"total"`

	// Matched is the number of contacts that passed the filter.
	Matched int `json:"matched"`

	Sections []DirectorySection `json:"sections"`
}
