package models

// File is a document attached to a section.
type File struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Section is a titled piece of content inside a unit.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Files   []File `json:"files,omitempty"`
}

// Unit is a teaching unit of a subject.
type Unit struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections,omitempty"`
}

// Subject is a course taught by a teacher to a degree/department cohort.
type Subject struct {
	ID         string `json:"_id"`
	Title      string `json:"title" validate:"required"`
	Degree     string `json:"degree,omitempty"`
	Department string `json:"department,omitempty"`
	Units      []Unit `json:"units,omitempty"`
}
