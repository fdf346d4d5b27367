package model

import "time"

// EntryType classifies a leave entry
type EntryType string

const (
	TypeVacation EntryType = "vacation"
	TypeSick     EntryType = "sick"
	TypeHoliday  EntryType = "holiday"
	TypeTraining EntryType = "training"
	TypeOther    EntryType = "other"
)

func (t EntryType) IsValid() bool {
	switch t {
	case TypeVacation, TypeSick, TypeHoliday, TypeTraining, TypeOther:
		return true
	}
	return false
}

// Entry represents a single out-of-office request
type Entry struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Start     string         `json:"start"` // Date format (2006-01-02)
	End       string         `json:"end"`   // Date format (2006-01-02)
	Type      EntryType      `json:"type"`
	Notes     string         `json:"notes,omitempty"`
	Coverage  []CoverageItem `json:"coverage,omitempty"`
	CreatedBy string         `json:"created_by,omitempty"`
	CreatedAt string         `json:"created_at,omitempty"` // RFC3339
}

// CoverageItem represents one piece of work needing ownership while the
// entry's owner is away
type CoverageItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link,omitempty"`
	Notes string `json:"notes,omitempty"`
	Tasks []Task `json:"tasks,omitempty"`
}

// Task represents a checklist action under a coverage item
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// EntryDraft is the validated input shape for creating an entry.
// Date ordering (start <= end) is checked separately in the service layer
// because it spans two fields.
type EntryDraft struct {
	Name     string         `json:"name" validate:"required"`
	Start    string         `json:"start" validate:"required,datetime=2006-01-02"`
	End      string         `json:"end" validate:"required,datetime=2006-01-02"`
	Type     EntryType      `json:"type"`
	Notes    string         `json:"notes"`
	Coverage []CoverageItem `json:"coverage"`
}

// StartDate parses the entry's start date
func (e *Entry) StartDate() (time.Time, error) {
	return ParseDate(e.Start)
}

// EndDate parses the entry's end date
func (e *Entry) EndDate() (time.Time, error) {
	return ParseDate(e.End)
}
