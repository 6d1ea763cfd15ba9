package service

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sumire/projects/internal/domain"
	"github.com/sumire/projects/internal/validation"
)

// ProjectStore defines the store operations consumed by ProjectService.
type ProjectStore interface {
	AddProject(title, description string, people int) domain.Project
	MoveProject(id string, status domain.ProjectStatus) bool
	Projects() []domain.Project
}

// SubmitInput holds the raw fields of the new-project form.
type SubmitInput struct {
	Title       string
	Description string
	People      string
}

// ProjectService validates user input before handing it to the store.
type ProjectService struct {
	store ProjectStore
}

// NewProjectService creates a new ProjectService.
func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

// Submit validates the form fields and adds the project on success.
// Invalid input yields a *domain.ValidationError naming the first bad field.
func (s *ProjectService) Submit(in SubmitInput) (domain.Project, error) {
	people, err := s.gather(in)
	if err != nil {
		return domain.Project{}, err
	}

	p := s.store.AddProject(in.Title, in.Description, people)
	slog.Info("project added", "project_id", p.ID, "people", p.People)
	return p, nil
}

// Move transitions a project to the list identified by status. Unknown ids
// and drops onto the list a project is already in are silently ignored.
func (s *ProjectService) Move(id, status string) error {
	target, err := domain.ParseProjectStatus(status)
	if err != nil {
		return err
	}

	if s.store.MoveProject(id, target) {
		slog.Info("project moved", "project_id", id, "status", target)
	}
	return nil
}

// Projects returns the current snapshot.
func (s *ProjectService) Projects() []domain.Project {
	return s.store.Projects()
}

// Project returns the project with the given id from the current snapshot.
func (s *ProjectService) Project(id string) (domain.Project, error) {
	for _, p := range s.store.Projects() {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
}

func (s *ProjectService) gather(in SubmitInput) (int, error) {
	if !validation.Validate(validation.Rule{Value: in.Title, Required: true}) {
		return 0, &domain.ValidationError{Field: "title", Message: "title is required"}
	}

	if !validation.Validate(validation.Rule{
		Value:     in.Description,
		Required:  true,
		MinLength: validation.Bound(5),
	}) {
		return 0, &domain.ValidationError{Field: "description", Message: "description must be at least 5 characters"}
	}

	people, err := parsePeople(in.People)
	if err != nil || !validation.Validate(validation.Rule{
		Value:    people,
		Required: true,
		Min:      validation.Bound(1.0),
		Max:      validation.Bound(5.0),
	}) {
		return 0, &domain.ValidationError{Field: "people", Message: "people must be a whole number from 1 to 4"}
	}

	return people, nil
}

func parsePeople(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse people %q: %w", raw, err)
	}
	return n, nil
}
