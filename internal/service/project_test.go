package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumire/projects/internal/domain"
	"github.com/sumire/projects/internal/service"
	"github.com/sumire/projects/internal/store"
)

func TestSubmit_Valid(t *testing.T) {
	s := store.NewProjectStore()
	svc := service.NewProjectService(s)

	p, err := svc.Submit(service.SubmitInput{Title: "Board", Description: "Drag and drop", People: " 3 "})

	require.NoError(t, err)
	assert.Equal(t, 3, p.People)
	assert.Equal(t, domain.ProjectStatusActive, p.Status)
	assert.Equal(t, []domain.Project{p}, svc.Projects())
}

func TestSubmit_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		in    service.SubmitInput
		field string
	}{
		{"missing title", service.SubmitInput{Title: " ", Description: "long enough", People: "2"}, "title"},
		{"missing description", service.SubmitInput{Title: "T", Description: "", People: "2"}, "description"},
		{"short description", service.SubmitInput{Title: "T", Description: "four", People: "2"}, "description"},
		{"missing people", service.SubmitInput{Title: "T", Description: "long enough", People: ""}, "people"},
		{"zero people", service.SubmitInput{Title: "T", Description: "long enough", People: "0"}, "people"},
		{"five people is exclusive", service.SubmitInput{Title: "T", Description: "long enough", People: "5"}, "people"},
		{"not a number", service.SubmitInput{Title: "T", Description: "long enough", People: "many"}, "people"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewProjectStore()
			svc := service.NewProjectService(s)

			_, err := svc.Submit(tt.in)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Empty(t, s.Projects())
		})
	}
}

func TestMove(t *testing.T) {
	s := store.NewProjectStore()
	svc := service.NewProjectService(s)
	p, err := svc.Submit(service.SubmitInput{Title: "Board", Description: "Drag and drop", People: "1"})
	require.NoError(t, err)

	require.NoError(t, svc.Move(p.ID, "finished"))
	assert.Equal(t, domain.ProjectStatusFinished, svc.Projects()[0].Status)

	require.NoError(t, svc.Move("unknown", "active"))
	assert.Equal(t, domain.ProjectStatusFinished, svc.Projects()[0].Status)
}

func TestMove_UnknownStatus(t *testing.T) {
	svc := service.NewProjectService(store.NewProjectStore())

	err := svc.Move("any", "archived")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProject(t *testing.T) {
	svc := service.NewProjectService(store.NewProjectStore())
	p, err := svc.Submit(service.SubmitInput{Title: "Board", Description: "Drag and drop", People: "2"})
	require.NoError(t, err)

	got, err := svc.Project(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = svc.Project("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
