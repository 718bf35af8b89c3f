package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/mocks"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSessionMiddleware(t *testing.T) {
	t.Run("should set the session from the user id header", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(UserIDHeader, " user-1 ")
		c := e.NewContext(req, httptest.NewRecorder())

		var called bool
		err := SessionMiddleware()(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, "user-1", shared.GetSession(ctx).GetUserID())
			return nil
		})(c)

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should return 401 without the header", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		err := SessionMiddleware()(func(ctx echo.Context) error {
			t.Fatal("next must not be called")
			return nil
		})(c)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, 401, he.Code)
	})
}

func TestProjectAccessControl(t *testing.T) {
	projectID := uuid.New()

	newContext := func(param string) echo.Context {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("projectID")
		c.SetParamValues(param)
		shared.SetSession(c, shared.NewSession("user-1"))
		return c
	}

	codeOf := func(err error) int {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he.Code
		}
		return 0
	}

	t.Run("should set the project for its owner", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("Read", projectID).Return(models.Project{Model: models.Model{ID: projectID}, OwnerID: "user-1"}, nil)

		c := newContext(projectID.String())
		err := ProjectAccessControl(projectRepository)(func(ctx echo.Context) error {
			assert.Equal(t, projectID, shared.GetProject(ctx).ID)
			return nil
		})(c)
		assert.NoError(t, err)
	})

	t.Run("should return 403 for somebody else", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("Read", projectID).Return(models.Project{Model: models.Model{ID: projectID}, OwnerID: "user-2"}, nil)

		err := ProjectAccessControl(projectRepository)(func(ctx echo.Context) error { return nil })(newContext(projectID.String()))
		assert.Equal(t, 403, codeOf(err))
	})

	t.Run("should return 404 for an unknown project", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("Read", projectID).Return(models.Project{}, gorm.ErrRecordNotFound)

		err := ProjectAccessControl(projectRepository)(func(ctx echo.Context) error { return nil })(newContext(projectID.String()))
		assert.Equal(t, 404, codeOf(err))
	})

	t.Run("should return 400 for an invalid id", func(t *testing.T) {
		err := ProjectAccessControl(mocks.NewProjectRepository(t))(func(ctx echo.Context) error { return nil })(newContext("not-a-uuid"))
		assert.Equal(t, 400, codeOf(err))
	})
}

func TestToHTTPError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{shared.NewNotFoundError("x"), 404},
		{shared.NewForbiddenError("x"), 403},
		{shared.NewConflictError("x"), 409},
		{shared.NewBadRequestError("x"), 400},
		{echo.NewHTTPError(418, "teapot"), 418},
		{errors.New("database exploded"), 500},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, ToHTTPError(tc.err).Code, tc.err.Error())
	}

	assert.Equal(t, http.StatusText(500), ToHTTPError(errors.New("secret")).Message)
}

func TestServer(t *testing.T) {
	e := Server("fixflow-test", []string{"http://localhost:3000"})
	e.GET("/conflict/", func(ctx echo.Context) error {
		return shared.NewConflictError("fix already processed")
	})
	e.GET("/panic/", func(ctx echo.Context) error {
		panic("boom")
	})

	t.Run("should render typed errors as json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/conflict/", nil))

		assert.Equal(t, 409, rec.Code)
		assert.JSONEq(t, `{"message":"fix already processed"}`, rec.Body.String())
	})

	t.Run("should turn a panic into a 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic/", nil))

		assert.Equal(t, 500, rec.Code)
	})

	t.Run("should add the trailing slash", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/conflict", nil))

		assert.Equal(t, 409, rec.Code)
	})
}
