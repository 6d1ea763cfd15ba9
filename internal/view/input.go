package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ProjectInput renders the new-project form.
type ProjectInput struct {
	action string
}

// NewProjectInput creates the form posting to action.
func NewProjectInput(action string) *ProjectInput {
	return &ProjectInput{action: action}
}

// Configure is a no-op: submission goes straight to the form's action.
func (*ProjectInput) Configure() {}

// RenderContent renders the form.
func (f *ProjectInput) RenderContent() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writef(w, `<form id="user-input" method="post" action="%s">
<div class="form-control"><label for="title">Title</label><input type="text" id="title" name="title"></div>
<div class="form-control"><label for="description">Description</label><textarea id="description" name="description" rows="3"></textarea></div>
<div class="form-control"><label for="people">People</label><input type="number" id="people" name="people" step="1" min="1" max="4"></div>
<button type="submit">ADD PROJECT</button>
</form>`, templ.EscapeString(f.action))
	})
}
