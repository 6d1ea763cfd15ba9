package domain

import "fmt"

// ProjectStatus represents which list a project belongs to.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusFinished ProjectStatus = "finished"
)

// ParseProjectStatus converts the wire form of a status into a ProjectStatus.
// The match is exact: "active" or "finished".
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch status := ProjectStatus(s); status {
	case ProjectStatusActive, ProjectStatusFinished:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown project status %q", ErrInvalidInput, s)
	}
}

// Project represents a unit of work tracked on the board.
type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	People      int           `json:"people"`
	Status      ProjectStatus `json:"status"`
}

// WithStatus returns a copy of the project with the given status.
func (p Project) WithStatus(status ProjectStatus) Project {
	p.Status = status
	return p
}

// Persons formats the headcount for display.
func (p Project) Persons() string {
	if p.People == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d persons", p.People)
}

// FilterByStatus returns the projects of snapshot whose status matches, in order.
func FilterByStatus(snapshot []Project, status ProjectStatus) []Project {
	out := make([]Project, 0, len(snapshot))
	for _, p := range snapshot {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}
