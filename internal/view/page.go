package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/sumire/projects/internal/domain"
)

// Board groups the views that make up the page.
type Board struct {
	Input    *ProjectInput
	Active   *ProjectList
	Finished *ProjectList
}

// NewBoard creates the form and both lists. Call Configure before serving.
func NewBoard(source ProjectSource, out Publisher, submitURL string) *Board {
	return &Board{
		Input:    NewProjectInput(submitURL),
		Active:   NewProjectList(domain.ProjectStatusActive, source, out),
		Finished: NewProjectList(domain.ProjectStatusFinished, source, out),
	}
}

// Views returns every view in page order.
func (b *Board) Views() []View {
	return []View{b.Input, b.Active, b.Finished}
}

// Configure configures every view.
func (b *Board) Configure() {
	for _, v := range b.Views() {
		v.Configure()
	}
}

// Fragments renders the current items of every list, in page order.
func (b *Board) Fragments(ctx context.Context) ([]Event, error) {
	lists := []*ProjectList{b.Active, b.Finished}
	out := make([]Event, 0, len(lists))
	for _, l := range lists {
		e, err := l.Fragment(ctx)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", l.ListID(), err)
		}
		out = append(out, e)
	}
	return out, nil
}

// Page renders the full HTML document.
func (b *Board) Page() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		for _, v := range b.Views() {
			if err := v.RenderContent().Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, pageTail)
		return err
	})
}

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>ProjectManager</title>
<style>
body { font-family: sans-serif; margin: 0; }
#app { max-width: 40rem; margin: 2rem auto; }
.form-control { margin: 0.5rem 0; }
.form-control label, .form-control input, .form-control textarea { display: block; width: 100%; }
.projects ul { list-style: none; min-height: 4rem; padding: 0.5rem; border: 1px solid #ccc; }
.projects ul.droppable { background: #ffe3ff; }
.projects li { border: 1px solid #999; margin: 0.5rem 0; padding: 0.5rem; cursor: move; }
</style>
</head>
<body>
<div id="app">
`

const pageTail = `</div>
<script>
(function () {
  const lists = document.querySelectorAll('section[data-status]');

  document.addEventListener('dragstart', function (e) {
    const item = e.target.closest('li[data-project-id]');
    if (!item) return;
    e.dataTransfer.setData('text/plain', item.dataset.projectId);
    e.dataTransfer.effectAllowed = 'move';
  });

  lists.forEach(function (section) {
    const ul = section.querySelector('ul');
    section.addEventListener('dragover', function (e) {
      if (e.dataTransfer && e.dataTransfer.types[0] === 'text/plain') {
        e.preventDefault();
        ul.classList.add('droppable');
      }
    });
    section.addEventListener('dragleave', function () {
      ul.classList.remove('droppable');
    });
    section.addEventListener('drop', function (e) {
      e.preventDefault();
      ul.classList.remove('droppable');
      const id = e.dataTransfer.getData('text/plain');
      fetch('/api/v1/projects/' + encodeURIComponent(id) + '/move', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ status: section.dataset.status })
      });
    });
  });

  const form = document.getElementById('user-input');
  form.addEventListener('submit', async function (e) {
    e.preventDefault();
    const res = await fetch(form.action, { method: 'POST', body: new URLSearchParams(new FormData(form)) });
    if (res.ok) {
      form.reset();
      return;
    }
    alert('Invalid input, please try again!');
  });

  const events = new EventSource('/events');
  lists.forEach(function (section) {
    const ul = section.querySelector('ul');
    events.addEventListener(ul.id, function (e) {
      ul.innerHTML = e.data;
    });
  });
})();
</script>
</body>
</html>
`
