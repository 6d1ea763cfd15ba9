// Package store holds the live project collection and notifies listeners
// whenever it changes.
package store

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/sumire/projects/internal/domain"
)

// ProjectStore owns the ordered project sequence. Construct one per process
// and share it by reference.
//
// Mutations and their notification rounds are serialized, so listeners see
// rounds in mutation order. A listener may read the store through Projects
// but must not call AddProject or MoveProject synchronously.
type ProjectStore struct {
	listeners[domain.Project]

	// notifyMu is held from a mutation until its round has finished.
	notifyMu sync.Mutex
	mu       sync.Mutex
	projects []domain.Project
	newID    func() string
}

// Option configures a ProjectStore.
type Option func(*ProjectStore)

// WithIDGenerator replaces the UUID generator used for new projects.
func WithIDGenerator(gen func() string) Option {
	return func(s *ProjectStore) {
		s.newID = gen
	}
}

// NewProjectStore creates an empty ProjectStore.
func NewProjectStore(opts ...Option) *ProjectStore {
	s := &ProjectStore{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddProject appends a new active project and notifies every listener.
// Inputs are expected to be validated by the caller.
func (s *ProjectStore) AddProject(title, description string, people int) domain.Project {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	p := domain.Project{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      domain.ProjectStatusActive,
	}
	s.projects = append(s.projects, p)
	snapshot := s.snapshot()
	s.mu.Unlock()

	s.broadcast(domain.ChangeProjectAdded, p.ID, snapshot)
	return p
}

// MoveProject sets the status of the project with the given id. An unknown id
// or an unchanged status is a no-op and notifies nobody. It reports whether
// the status changed.
func (s *ProjectStore) MoveProject(id string, status domain.ProjectStatus) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	snapshot, moved := s.move(id, status)
	if !moved {
		return false
	}
	s.broadcast(domain.ChangeProjectMoved, id, snapshot)
	return true
}

func (s *ProjectStore) move(id string, status domain.ProjectStatus) ([]domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.projects {
		if p.ID != id {
			continue
		}
		if p.Status == status {
			return nil, false
		}
		s.projects[i] = p.WithStatus(status)
		return s.snapshot(), true
	}
	return nil, false
}

// Watch registers fn and returns the current snapshot. No notification round
// runs between the two, so fn receives every change after the snapshot.
func (s *ProjectStore) Watch(fn Listener[domain.Project]) []domain.Project {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.AddListener(fn)
	return s.Projects()
}

// Projects returns a snapshot of every project in insertion order.
func (s *ProjectStore) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot must be called with s.mu held.
func (s *ProjectStore) snapshot() []domain.Project {
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// broadcast must be called with s.notifyMu held and s.mu released.
func (s *ProjectStore) broadcast(kind domain.ChangeKind, id string, snapshot []domain.Project) {
	slog.Debug("notifying project listeners", "change", kind, "project_id", id, "projects", len(snapshot))
	s.notify(snapshot)
}
