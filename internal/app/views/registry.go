// Package views models the registry table's client-side behavior as pure
// state transitions: a search/sort view state with reducer functions, a form
// state for edits, and CSV serialization of whatever the current view shows.
package views

import (
	"sort"
	"strconv"
	"strings"

	"github.com/juko/registry/internal/app/models"
)

// SortKey identifies the column an active sort applies to.
type SortKey string

const (
	SortNone SortKey = ""
	SortName SortKey = "name"
	SortGwa  SortKey = "gwa"
)

// SortDirection is the direction of the active sort.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ViewState captures the registry table's search and sort settings. Values
// are immutable; reducers return a modified copy.
type ViewState struct {
	Query   string
	SortKey SortKey
	SortDir SortDirection
}

// NewViewState returns the initial view: no filter, no active sort.
func NewViewState() ViewState {
	return ViewState{SortDir: Ascending}
}

// WithSearch returns the view with the search query replaced.
func (v ViewState) WithSearch(query string) ViewState {
	v.Query = query
	return v
}

// ToggleSort returns the view after a sort request. Requesting the active key
// flips the direction; requesting a different key selects it ascending.
func (v ViewState) ToggleSort(key SortKey) ViewState {
	if v.SortKey == key && v.SortDir == Ascending {
		v.SortDir = Descending
		return v
	}
	v.SortKey = key
	v.SortDir = Ascending
	return v
}

// Apply filters and sorts the records per the view state, returning a new
// slice. The input is never mutated.
func (v ViewState) Apply(students []models.Student) []models.Student {
	result := filter(students, v.Query)

	if v.SortKey == SortNone {
		return result
	}

	less := func(a, b models.Student) bool {
		switch v.SortKey {
		case SortGwa:
			return a.GWA < b.GWA
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if v.SortDir == Descending {
			return less(result[j], result[i])
		}
		return less(result[i], result[j])
	})
	return result
}

// filter keeps records whose name or student ID contains the query,
// case-insensitively. An empty query keeps everything.
func filter(students []models.Student, query string) []models.Student {
	result := make([]models.Student, 0, len(students))
	q := strings.ToLower(query)
	for _, s := range students {
		if q == "" ||
			strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.StudentID), q) {
			result = append(result, s)
		}
	}
	return result
}

// ExportCSV serializes the given records (the current filtered and sorted
// view, not the raw collection) with the registry's fixed 6-column header.
// Name, college and course are wrapped in quotes so embedded commas don't
// break the row layout; embedded quote characters are not escaped.
func ExportCSV(students []models.Student) string {
	var b strings.Builder
	b.WriteString("Student ID,Name,Email,College,Course,GWA\n")
	for _, s := range students {
		b.WriteString(s.StudentID)
		b.WriteByte(',')
		b.WriteString(`"` + s.Name + `"`)
		b.WriteByte(',')
		b.WriteString(s.Email)
		b.WriteByte(',')
		b.WriteString(`"` + s.College + `"`)
		b.WriteByte(',')
		b.WriteString(`"` + s.Course + `"`)
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(s.GWA, 'f', -1, 64))
		b.WriteByte('\n')
	}
	return b.String()
}
