package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-list-api.com/todo-list-api/internal/data_models"
	"todo-list-api.com/todo-list-api/internal/http/validators"
)

func (h *Handler) ListCategories(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	categories, err := h.categoryService.ListCategories(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *Handler) CreateCategory(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateCategoryRequest(&req); err != nil {
		return err
	}

	category, err := h.categoryService.CreateCategory(c.Request().Context(), req, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *Handler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "category")
	if err != nil {
		return err
	}
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	category, err := h.categoryService.GetCategory(c.Request().Context(), id, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, category)
}

func (h *Handler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "category")
	if err != nil {
		return err
	}
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateCategoryRequest(&req); err != nil {
		return err
	}

	category, err := h.categoryService.UpdateCategory(c.Request().Context(), id, req, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "category")
	if err != nil {
		return err
	}
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	if err := h.categoryService.DeleteCategory(c.Request().Context(), id, owner); err != nil {
		return err
	}

	return deleted(c, "Category")
}
