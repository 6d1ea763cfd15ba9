package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/sumire/projects/internal/domain"
)

// ProjectItem renders one draggable project card.
type ProjectItem struct {
	project domain.Project
}

// NewProjectItem creates a ProjectItem for p.
func NewProjectItem(p domain.Project) ProjectItem {
	return ProjectItem{project: p}
}

// Configure is a no-op: drag start is handled by the page script through the
// data-project-id attribute.
func (ProjectItem) Configure() {}

// RenderContent renders the card.
func (i ProjectItem) RenderContent() templ.Component {
	p := i.project
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writef(w,
			`<li draggable="true" id="%s" data-project-id="%s"><h2>%s</h2><h3>%s assigned</h3><p>%s</p></li>`,
			templ.EscapeString(p.ID),
			templ.EscapeString(p.ID),
			templ.EscapeString(p.Title),
			templ.EscapeString(p.Persons()),
			templ.EscapeString(p.Description),
		)
	})
}
