package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	"todo-list-api.com/todo-list-api/internal/http/validators"
)

func (h *Handler) ListProjects(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.ListProjects(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projects)
}

func (h *Handler) CreateProject(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateProjectRequest(&req); err != nil {
		return err
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), req, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, project)
}

func (h *Handler) GetProject(c echo.Context) error {
	id, err := pathID(c, "project")
	if err != nil {
		return err
	}
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.GetProject(c.Request().Context(), id, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	id, err := pathID(c, "project")
	if err != nil {
		return err
	}
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateProjectRequest(&req); err != nil {
		return err
	}

	project, err := h.projectService.UpdateProject(c.Request().Context(), id, req, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	id, err := pathID(c, "project")
	if err != nil {
		return err
	}
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	if err := h.projectService.DeleteProject(c.Request().Context(), id, owner); err != nil {
		return err
	}

	return deleted(c, "Project")
}
