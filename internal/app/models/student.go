package models

import "time"

// Student defines the student record model based on the 'students' table
type Student struct {
	ID        string    `json:"id" db:"id" example:"8f2b9a44-1c3e-4d8a-9f0b-2e6c7d5a1b90"` // System-generated identifier
	StudentID string    `json:"studentId" db:"student_id" example:"2023-001"`              // Business identifier, unique
	Name      string    `json:"name" db:"name" example:"Maria Santos"`
	Email     string    `json:"email" db:"email" example:"maria.santos@juko.edu"` // Stored lower-cased, unique
	College   string    `json:"college" db:"college" example:"College of Computer Studies"`
	Course    string    `json:"course" db:"course" example:"BS Information Technology"`
	GWA       float64   `json:"gwa" db:"gwa" example:"1.75"` // General weighted average, 1.00 (best) to 5.00
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
