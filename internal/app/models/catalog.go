package models

// CollegeCourses is the fixed catalog of colleges and the courses they offer.
// A student's college must be one of these keys and the course must belong to
// the selected college's list.
var CollegeCourses = map[string][]string{
	"College of Computer Studies": {
		"BS Information Technology",
		"BS Computer Science",
		"BS Information Systems",
		"Associate in Computer Technology",
	},
	"College of Engineering": {
		"BS Civil Engineering",
		"BS Electrical Engineering",
		"BS Computer Engineering",
	},
	"College of Business": {
		"BS Accountancy",
		"BS Business Administration",
		"BS Real Estate Management",
	},
	"College of Arts and Sciences": {
		"BA Communication",
		"BS Psychology",
		"BS Biology",
	},
}

// IsValidCollege reports whether the college is part of the catalog.
func IsValidCollege(college string) bool {
	_, ok := CollegeCourses[college]
	return ok
}

// IsValidCourse reports whether the course belongs to the given college.
func IsValidCourse(college, course string) bool {
	for _, c := range CollegeCourses[college] {
		if c == course {
			return true
		}
	}
	return false
}
