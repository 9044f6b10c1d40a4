package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	config "todo-list-api.com/todo-list-api/internal/configs"
	dto "todo-list-api.com/todo-list-api/internal/data_models"
	apperr "todo-list-api.com/todo-list-api/internal/errors"
	repository "todo-list-api.com/todo-list-api/internal/repositories"
	"todo-list-api.com/todo-list-api/internal/security"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.NewDatabase(config.DriverSQLite, ":memory:", zap.NewNop())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

type fixture struct {
	users      *UserService
	categories *CategoryService
	projects   *ProjectService
	tasks      *TaskService
	hasher     security.PasswordHasher
}

func newFixture(t *testing.T) fixture {
	db := setupTestDB(t)
	categoryRepo := repository.NewCategoryRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	return fixture{
		users:      NewUserService(repository.NewUserRepository(db), hasher),
		categories: NewCategoryService(categoryRepo),
		projects:   NewProjectService(projectRepo),
		tasks:      NewTaskService(repository.NewTaskRepository(db), categoryRepo, projectRepo),
		hasher:     hasher,
	}
}

func (f fixture) user(t *testing.T, email string) string {
	t.Helper()
	u, err := f.users.CreateUser(context.Background(), dto.CreateUserRequest{Email: email, Password: "s3cret"})
	require.NoError(t, err)
	return u.ID
}

func TestUserService_PasswordIsHashed(t *testing.T) {
	f := newFixture(t)

	u, err := f.users.CreateUser(context.Background(), dto.CreateUserRequest{Email: "x@example.com", Password: "s3cret"})
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NoError(t, f.hasher.Compare(u.PasswordHash, "s3cret"))
}

func TestUserService_DuplicateEmailConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.user(t, "a@example.com")
	_, err := f.users.CreateUser(ctx, dto.CreateUserRequest{Email: "a@example.com", Password: "other"})

	assert.ErrorIs(t, err, apperr.ErrEmailAlreadyRegistered)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUserService_ConcurrentDuplicateEmail(t *testing.T) {
	f := newFixture(t)

	const attempts = 5
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.users.CreateUser(context.Background(), dto.CreateUserRequest{Email: "race@example.com", Password: "pw"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, apperr.ErrEmailAlreadyRegistered)
	}
	assert.Equal(t, 1, created)
}

func TestUserService_UpdateRehashesOnlyWithPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.users.CreateUser(ctx, dto.CreateUserRequest{Email: "a@example.com", Password: "s3cret"})
	require.NoError(t, err)

	emailOnly, err := f.users.UpdateUser(ctx, u.ID, dto.UpdateUserRequest{Email: dto.Some("b@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", emailOnly.Email)
	assert.Equal(t, u.PasswordHash, emailOnly.PasswordHash)

	noop, err := f.users.UpdateUser(ctx, u.ID, dto.UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, u.PasswordHash, noop.PasswordHash)

	rotated, err := f.users.UpdateUser(ctx, u.ID, dto.UpdateUserRequest{Password: dto.Some("n3w")})
	require.NoError(t, err)
	assert.NotEqual(t, u.PasswordHash, rotated.PasswordHash)
	assert.NotEqual(t, "n3w", rotated.PasswordHash)
	assert.NoError(t, f.hasher.Compare(rotated.PasswordHash, "n3w"))
}

func TestUserService_UpdateToTakenEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.user(t, "a@example.com")
	b := f.user(t, "b@example.com")

	_, err := f.users.UpdateUser(ctx, b, dto.UpdateUserRequest{Email: dto.Some("a@example.com")})
	assert.ErrorIs(t, err, apperr.ErrEmailAlreadyRegistered)
}

func TestUserService_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	missing := uuid.NewString()

	_, err := f.users.GetUser(ctx, missing)
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)

	_, err = f.users.UpdateUser(ctx, missing, dto.UpdateUserRequest{Email: dto.Some("z@example.com")})
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)

	assert.ErrorIs(t, f.users.DeleteUser(ctx, missing), apperr.ErrUserNotFound)
}

func TestTaskScenario_CategoryDeleteClearsReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "u@example.com")
	other := f.user(t, "o@example.com")

	work, err := f.categories.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Work"}, owner)
	require.NoError(t, err)

	task, err := f.tasks.CreateTask(ctx, dto.CreateTaskRequest{Title: "Buy milk", CategoryID: &work.ID}, owner)
	require.NoError(t, err)
	require.NotNil(t, task.CategoryID)
	assert.Equal(t, work.ID, *task.CategoryID)

	_, err = f.tasks.GetTask(ctx, task.ID, other)
	assert.ErrorIs(t, err, apperr.ErrTaskNotFound)

	require.NoError(t, f.categories.DeleteCategory(ctx, work.ID, owner))

	refetched, err := f.tasks.GetTask(ctx, task.ID, owner)
	require.NoError(t, err)
	assert.Nil(t, refetched.CategoryID)
}

func TestProjectScenario_ProgressUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "u@example.com")

	due := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)
	p, err := f.projects.CreateProject(ctx, dto.CreateProjectRequest{Name: "Launch", DueDate: &due}, owner)
	require.NoError(t, err)
	require.Equal(t, 0, p.Progress)

	updated, err := f.projects.UpdateProject(ctx, p.ID, dto.UpdateProjectRequest{Progress: dto.Some(50)}, owner)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Progress)
	assert.Equal(t, "Launch", updated.Name)
	require.NotNil(t, updated.DueDate)
	assert.True(t, due.Equal(*updated.DueDate))
}

func TestTaskService_RejectsForeignReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "u@example.com")
	other := f.user(t, "o@example.com")

	theirs, err := f.categories.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Private"}, other)
	require.NoError(t, err)
	theirProject, err := f.projects.CreateProject(ctx, dto.CreateProjectRequest{Name: "Secret"}, other)
	require.NoError(t, err)

	_, err = f.tasks.CreateTask(ctx, dto.CreateTaskRequest{Title: "Sneaky", CategoryID: &theirs.ID}, owner)
	assert.ErrorIs(t, err, apperr.ErrCategoryReference)

	task, err := f.tasks.CreateTask(ctx, dto.CreateTaskRequest{Title: "Honest"}, owner)
	require.NoError(t, err)

	_, err = f.tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{ProjectID: dto.Some(theirProject.ID)}, owner)
	assert.ErrorIs(t, err, apperr.ErrProjectReference)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestTaskService_ClearReferenceWithNull(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "u@example.com")

	p, err := f.projects.CreateProject(ctx, dto.CreateProjectRequest{Name: "Launch"}, owner)
	require.NoError(t, err)
	task, err := f.tasks.CreateTask(ctx, dto.CreateTaskRequest{Title: "Ship", ProjectID: &p.ID}, owner)
	require.NoError(t, err)

	updated, err := f.tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{ProjectID: dto.Null[string]()}, owner)
	require.NoError(t, err)
	assert.Nil(t, updated.ProjectID)
}

func TestOwnedServices_NotFoundErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "u@example.com")
	missing := uuid.NewString()

	_, err := f.categories.GetCategory(ctx, missing, owner)
	assert.ErrorIs(t, err, apperr.ErrCategoryNotFound)
	_, err = f.categories.UpdateCategory(ctx, missing, dto.UpdateCategoryRequest{Name: dto.Some("x")}, owner)
	assert.ErrorIs(t, err, apperr.ErrCategoryNotFound)
	assert.ErrorIs(t, f.categories.DeleteCategory(ctx, missing, owner), apperr.ErrCategoryNotFound)

	_, err = f.projects.GetProject(ctx, missing, owner)
	assert.ErrorIs(t, err, apperr.ErrProjectNotFound)
	assert.ErrorIs(t, f.projects.DeleteProject(ctx, missing, owner), apperr.ErrProjectNotFound)

	_, err = f.tasks.GetTask(ctx, missing, owner)
	assert.ErrorIs(t, err, apperr.ErrTaskNotFound)
	_, err = f.tasks.UpdateTask(ctx, missing, dto.UpdateTaskRequest{}, owner)
	assert.ErrorIs(t, err, apperr.ErrTaskNotFound)
	assert.ErrorIs(t, f.tasks.DeleteTask(ctx, missing, owner), apperr.ErrTaskNotFound)
}

func TestOwnedServices_DeleteTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "u@example.com")

	c, err := f.categories.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Home"}, owner)
	require.NoError(t, err)

	require.NoError(t, f.categories.DeleteCategory(ctx, c.ID, owner))
	assert.ErrorIs(t, f.categories.DeleteCategory(ctx, c.ID, owner), apperr.ErrCategoryNotFound)
}

func TestCategoryService_UnknownOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.categories.CreateCategory(context.Background(), dto.CreateCategoryRequest{Name: "Ghost"}, uuid.NewString())
	assert.ErrorIs(t, err, apperr.ErrInvalidReference)
}

func TestTaskService_ConcurrentCreates(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "u@example.com")

	const count = 20
	var wg sync.WaitGroup
	errs := make(chan error, count)
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.tasks.CreateTask(context.Background(), dto.CreateTaskRequest{Title: "Title"}, owner); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent creation failed: %v", err)
	}

	tasks, err := f.tasks.ListTasks(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, tasks, count)
}
