package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperr "todo-list-api.com/todo-list-api/internal/errors"
	"todo-list-api.com/todo-list-api/internal/services"
)

type Handler struct {
	userService     *services.UserService
	categoryService *services.CategoryService
	projectService  *services.ProjectService
	taskService     *services.TaskService
}

func NewHandler(
	userService *services.UserService,
	categoryService *services.CategoryService,
	projectService *services.ProjectService,
	taskService *services.TaskService,
) *Handler {
	return &Handler{
		userService:     userService,
		categoryService: categoryService,
		projectService:  projectService,
		taskService:     taskService,
	}
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"Hello": "World"})
}

// ownerID reads the user_id scope key from the query string.
func ownerID(c echo.Context) (string, error) {
	raw := c.QueryParam("user_id")
	if raw == "" {
		return "", apperr.ErrUserIDRequired
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperr.ErrInvalidUserID
	}
	return id.String(), nil
}

func pathID(c echo.Context, entity string) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", apperr.Validation(entity + " id must be a valid UUID")
	}
	return id.String(), nil
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusUnsupportedMediaType {
			return apperr.Validation("content type must be application/json")
		}
		return apperr.ErrInvalidJSON
	}
	return nil
}

func deleted(c echo.Context, entity string) error {
	return c.JSON(http.StatusOK, echo.Map{"message": entity + " deleted"})
}
