// Package view renders the project board and keeps the browser in sync with
// the store.
package view

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/sumire/projects/internal/domain"
	"github.com/sumire/projects/internal/store"
)

// View is implemented by every piece of the board.
type View interface {
	// Configure wires the view to its data source.
	Configure()
	// RenderContent returns the component for the view's current state.
	RenderContent() templ.Component
}

// ProjectSource is the subset of the store a view reads from.
type ProjectSource interface {
	// Watch registers fn and returns the snapshot it starts from.
	Watch(fn store.Listener[domain.Project]) []domain.Project
}

var (
	_ View = (*ProjectInput)(nil)
	_ View = (*ProjectList)(nil)
	_ View = ProjectItem{}
)

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func renderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
