package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	"todo-list-api.com/todo-list-api/internal/http/validators"
)

func (h *Handler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateUserRequest(&req); err != nil {
		return err
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}

	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateUserRequest(&req); err != nil {
		return err
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}

	return deleted(c, "User")
}
