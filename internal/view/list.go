package view

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/a-h/templ"

	"github.com/sumire/projects/internal/domain"
)

// Publisher receives re-rendered list fragments.
type Publisher interface {
	Publish(e Event)
}

// ProjectList shows the projects of one status and re-renders whenever the
// store changes.
type ProjectList struct {
	status domain.ProjectStatus
	source ProjectSource
	out    Publisher

	mu       sync.RWMutex
	assigned []domain.Project
}

// NewProjectList creates the list for status. Call Configure to subscribe it.
func NewProjectList(status domain.ProjectStatus, source ProjectSource, out Publisher) *ProjectList {
	return &ProjectList{status: status, source: source, out: out}
}

// ListID is the element id of the list's <ul>, also used as the event name.
func (l *ProjectList) ListID() string {
	return string(l.status) + "-projects-list"
}

// Configure subscribes to changes and loads the snapshot they start from.
func (l *ProjectList) Configure() {
	l.setAssigned(l.source.Watch(l.onChange))
}

// Fragment renders the list items as an event addressed to the list.
func (l *ProjectList) Fragment(ctx context.Context) (Event, error) {
	html, err := renderString(ctx, l.renderItems())
	if err != nil {
		return Event{}, err
	}
	return Event{Name: l.ListID(), Data: html}, nil
}

// Assigned returns the projects currently shown by the list.
func (l *ProjectList) Assigned() []domain.Project {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Project, len(l.assigned))
	copy(out, l.assigned)
	return out
}

// RenderContent renders the whole list section, including its drop target.
func (l *ProjectList) RenderContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		heading := strings.ToUpper(string(l.status)) + " PROJECTS"
		if err := writef(w,
			`<section class="projects" id="%s-projects" data-status="%s"><header><h2>%s</h2></header><ul id="%s">`,
			l.status, l.status, templ.EscapeString(heading), l.ListID(),
		); err != nil {
			return err
		}
		if err := l.renderItems().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</ul></section>`)
		return err
	})
}

func (l *ProjectList) renderItems() templ.Component {
	items := l.Assigned()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, p := range items {
			if err := NewProjectItem(p).RenderContent().Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func (l *ProjectList) onChange(projects []domain.Project) {
	l.setAssigned(projects)

	e, err := l.Fragment(context.Background())
	if err != nil {
		slog.Error("render project list", "list", l.ListID(), "error", err)
		return
	}
	l.out.Publish(e)
}

func (l *ProjectList) setAssigned(projects []domain.Project) {
	relevant := domain.FilterByStatus(projects, l.status)

	l.mu.Lock()
	l.assigned = relevant
	l.mu.Unlock()
}
