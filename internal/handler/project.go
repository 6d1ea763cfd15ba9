package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/projects/internal/service"
)

// ProjectHandler handles the project command and query endpoints.
type ProjectHandler struct {
	projects *service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// headcount accepts the people field as a JSON number, a JSON string or a form value.
type headcount string

func (h *headcount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*h = headcount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*h = headcount(n)
	return nil
}

type createProjectRequest struct {
	Title       string    `json:"title" form:"title"`
	Description string    `json:"description" form:"description"`
	People      headcount `json:"people" form:"people"`
}

type moveProjectRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=active finished"`
}

// List returns every project in insertion order.
func (h *ProjectHandler) List(c echo.Context) error {
	return JSON(c, http.StatusOK, h.projects.Projects())
}

// Get returns a single project.
func (h *ProjectHandler) Get(c echo.Context) error {
	p, err := h.projects.Project(c.Param("id"))
	if err != nil {
		return err
	}
	return JSON(c, http.StatusOK, p)
}

// Create validates the submitted form and adds a new active project.
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	p, err := h.projects.Submit(service.SubmitInput{
		Title:       req.Title,
		Description: req.Description,
		People:      string(req.People),
	})
	if err != nil {
		return err
	}

	return JSON(c, http.StatusCreated, p)
}

// Move handles a drop onto a list. Unknown ids and drops onto the list the
// project is already in succeed without changing anything.
func (h *ProjectHandler) Move(c echo.Context) error {
	var req moveProjectRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.projects.Move(c.Param("id"), req.Status); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
