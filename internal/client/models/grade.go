package models

import (
	"bytes"
	"encoding/json"

	"github.com/dmitrijs2005/studentdiary/internal/grades"
)

// SubjectRef is how a grade record points at its subject. The backend sends
// either a bare id or a populated {_id, title} object.
type SubjectRef struct {
	ID    string `json:"_id"`
	Title string `json:"title,omitempty"`
}

func (s *SubjectRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = SubjectRef{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*s = SubjectRef{ID: id}
		return nil
	}
	type plain SubjectRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = SubjectRef(p)
	return nil
}

// GradeRecord holds the raw marks of one student in one subject. Totals and
// letters are derived on display and never stored.
type GradeRecord struct {
	ID          string     `json:"_id,omitempty"`
	StudentID   string     `json:"student,omitempty"`
	Subject     SubjectRef `json:"subject"`
	CycleTest1  float64    `json:"cycleTest1"`
	CycleTest2  float64    `json:"cycleTest2"`
	Assignments float64    `json:"assignments"`
}

// Components implements grades.Scores. A nil record scores zero.
func (g *GradeRecord) Components() (float64, float64, float64) {
	if g == nil {
		return 0, 0, 0
	}
	return g.CycleTest1, g.CycleTest2, g.Assignments
}

func (g *GradeRecord) Total() float64 {
	return grades.Total(g.Components())
}

func (g *GradeRecord) Letter() string {
	return grades.Letter(g.Total())
}

// Student is a roster row in the teacher's grade view.
type Student struct {
	ID     string       `json:"_id"`
	Name   string       `json:"name"`
	Grades *GradeRecord `json:"grades,omitempty"`
}

// GradeInput is the payload of POST /api/grades.
type GradeInput struct {
	StudentID   string  `json:"student" validate:"required"`
	SubjectID   string  `json:"subject" validate:"required"`
	CycleTest1  float64 `json:"cycleTest1"`
	CycleTest2  float64 `json:"cycleTest2"`
	Assignments float64 `json:"assignments"`
}

// Roster converts students into chart entries.
func Roster(students []Student) []grades.Named {
	out := make([]grades.Named, 0, len(students))
	for _, s := range students {
		var sc grades.Scores
		if s.Grades != nil {
			sc = s.Grades
		}
		out = append(out, grades.Named{Name: s.Name, Scores: sc})
	}
	return out
}
