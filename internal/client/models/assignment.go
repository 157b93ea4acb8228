package models

import "time"

// Assignment is a piece of coursework published by a teacher.
type Assignment struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	// File is the URL of an attached brief, if any.
	File string `json:"file,omitempty"`
}

// AssignmentInput holds the form fields of a new assignment.
type AssignmentInput struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	// DueDate is YYYY-MM-DD.
	DueDate string `validate:"required,datetime=2006-01-02"`
}
