package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	"todo-list-api.com/todo-list-api/internal/http/validators"
)

func (h *Handler) ListTasks(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := pathID(c, "task")
	if err != nil {
		return err
	}
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := pathID(c, "task")
	if err != nil {
		return err
	}
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := pathID(c, "task")
	if err != nil {
		return err
	}
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id, owner); err != nil {
		return err
	}

	return deleted(c, "Task")
}
