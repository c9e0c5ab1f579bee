package views

import (
	"strconv"

	"github.com/juko/registry/internal/app/models"
)

// FormState holds the registry form's in-progress field values. Fields are
// strings because the form captures raw input before validation.
type FormState struct {
	StudentID string
	Name      string
	Email     string
	College   string
	Course    string
	Gwa       string

	EditingID string
	Editing   bool
}

// NewFormState returns an empty form in create mode.
func NewFormState() FormState {
	return FormState{}
}

// LoadStudent returns the form populated with a record's current values,
// switching it into edit mode.
func (f FormState) LoadStudent(s models.Student) FormState {
	return FormState{
		StudentID: s.StudentID,
		Name:      s.Name,
		Email:     s.Email,
		College:   s.College,
		Course:    s.Course,
		Gwa:       strconv.FormatFloat(s.GWA, 'f', -1, 64),
		EditingID: s.ID,
		Editing:   true,
	}
}

// SelectCollege returns the form with the college replaced and the course
// reset to the first offering of that college, mirroring the cascading
// dropdown behavior.
func (f FormState) SelectCollege(college string) FormState {
	f.College = college
	f.Course = ""
	if courses, ok := models.CollegeCourses[college]; ok && len(courses) > 0 {
		f.Course = courses[0]
	}
	return f
}

// Reset discards all in-progress values and leaves edit mode. Cancelling an
// edit never mutates the store.
func (f FormState) Reset() FormState {
	return FormState{}
}
