package dto

// StudentInput carries the mutable fields of a student record for create and
// update requests. GWA is a pointer so a missing value can be told apart from
// zero.
type StudentInput struct {
	StudentID string   `json:"studentId" example:"2023-001"`
	Name      string   `json:"name" example:"Maria Santos"`
	Email     string   `json:"email" example:"maria.santos@juko.edu"`
	College   string   `json:"college" example:"College of Computer Studies"`
	Course    string   `json:"course" example:"BS Information Technology"`
	GWA       *float64 `json:"gwa" example:"1.75"`
}
