package api

import (
	"errors"
	"net/http"

	"github.com/Spok95/project-assistant/internal/domain/projects"
	"github.com/labstack/echo/v4"
)

type projectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

type validationResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func toProjectResponse(p projects.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Start:       p.Start.Format(projects.DateLayout),
		End:         p.End.Format(projects.DateLayout),
	}
}

func (a *API) handleListProjects(c echo.Context) error {
	list, err := a.projects.List(c.Request().Context(), uidOf(c))
	if err != nil {
		return a.fail(c, err)
	}
	out := make([]projectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

func (a *API) handleCreateProject(c echo.Context) error {
	var d projects.Draft
	if err := c.Bind(&d); err != nil {
		return badRequest(c, "invalid request")
	}
	p, err := a.projects.Create(c.Request().Context(), uidOf(c), d)
	var verr *projects.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, validationResponse{Error: verr.Error(), Fields: verr.Fields})
	}
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toProjectResponse(p))
}

func (a *API) handleDeleteProject(c echo.Context) error {
	if err := a.projects.Delete(c.Request().Context(), uidOf(c), c.Param("id")); err != nil {
		return a.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
