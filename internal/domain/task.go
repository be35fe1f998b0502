package domain

import (
	"time"
)

// Task represents a tracked task in the domain model.
// Tasks carry no synthetic identifier; identity is positional within the
// loaded collection, with field-for-field equality used to locate a task
// selected from a filtered view (first match wins).
type Task struct {
	Title        string
	Username     string
	Description  string
	AssignedDate time.Time
	DueDate      time.Time
	Completed    bool
}

// NewTask creates a new, incomplete Task assigned to the given user.
func NewTask(title, username, description string, assigned, due time.Time) Task {
	return Task{
		Title:        title,
		Username:     username,
		Description:  description,
		AssignedDate: assigned,
		DueDate:      due,
	}
}

// Equal reports whether two tasks match field for field, with dates
// compared at day granularity (the granularity at which they persist).
func (t Task) Equal(other Task) bool {
	return t.Title == other.Title &&
		t.Username == other.Username &&
		t.Description == other.Description &&
		SameDay(t.AssignedDate, other.AssignedDate) &&
		SameDay(t.DueDate, other.DueDate) &&
		t.Completed == other.Completed
}

// IsOverdue reports whether the task is incomplete with a due date before
// the day of the given reference time.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	due := DayOf(t.DueDate)
	return due.Before(DayOf(now))
}

// IsValid checks if the task has all required fields populated.
func (t Task) IsValid() bool {
	return t.Title != "" && t.Username != "" &&
		!t.AssignedDate.IsZero() && !t.DueDate.IsZero()
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// DayOf truncates a time to midnight of its calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
