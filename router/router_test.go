package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/controllers"
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/integrationtestutil"
	"github.com/l3montree-dev/fixflow/middlewares"
	"github.com/l3montree-dev/fixflow/mocks"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testServer struct {
	e                 *echo.Echo
	projectRepository *mocks.ProjectRepository
	approvalService   *mocks.ApprovalService
}

func newTestServer(t *testing.T) testServer {
	db := integrationtestutil.InitSQLiteDatabase(t)
	s := testServer{
		e:                 middlewares.Server("fixflow-test", []string{"*"}),
		projectRepository: mocks.NewProjectRepository(t),
		approvalService:   mocks.NewApprovalService(t),
	}

	apiV1 := NewAPIV1Router(s.e, controllers.NewHealthController(db))
	sessionRouter := NewSessionRouter(apiV1)
	approvalController := controllers.NewApprovalController(s.approvalService)
	NewProjectRouter(
		sessionRouter,
		controllers.NewProjectController(s.projectRepository, mocks.NewProjectService(t)),
		controllers.NewMessageController(mocks.NewMessageRepository(t), mocks.NewGenerationService(t)),
		approvalController,
		s.projectRepository,
	)
	NewFixRouter(sessionRouter, approvalController)
	return s
}

func (s testServer) do(method, path, userID, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != "" {
		req.Header.Set(middlewares.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	t.Run("health and metrics do not need a session", func(t *testing.T) {
		s := newTestServer(t)

		assert.Equal(t, 200, s.do(http.MethodGet, "/api/v1/health/", "", "").Code)
		assert.Equal(t, 200, s.do(http.MethodGet, "/api/v1/info/", "", "").Code)
		assert.Equal(t, 200, s.do(http.MethodGet, "/metrics", "", "").Code)
	})

	t.Run("every other route needs a session", func(t *testing.T) {
		s := newTestServer(t)

		assert.Equal(t, 401, s.do(http.MethodGet, "/api/v1/projects/", "", "").Code)
		assert.Equal(t, 401, s.do(http.MethodPost, "/api/v1/fixes/"+uuid.NewString()+"/approve/", "", "").Code)
	})

	t.Run("project routes are only available to the owner", func(t *testing.T) {
		s := newTestServer(t)
		projectID := uuid.New()
		s.projectRepository.On("Read", projectID).Return(models.Project{Model: models.Model{ID: projectID}, OwnerID: "user-1"}, nil)

		assert.Equal(t, 403, s.do(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/approvals/pending/", "user-2", "").Code)

		s.approvalService.On("ListPending", projectID, "user-1").Return([]models.ProposedFix{}, nil)
		assert.Equal(t, 200, s.do(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/approvals/pending/", "user-1", "").Code)
	})

	t.Run("a stale review is a conflict", func(t *testing.T) {
		s := newTestServer(t)
		fixID := uuid.New()
		s.approvalService.On("Reject", mock.Anything, fixID, "user-1", "no").Return(models.ProposedFix{}, shared.NewConflictError("fix already processed"))

		rec := s.do(http.MethodPost, "/api/v1/fixes/"+fixID.String()+"/reject", "user-1", `{"feedback":"no"}`)
		assert.Equal(t, 409, rec.Code)
		assert.JSONEq(t, `{"message":"fix already processed"}`, rec.Body.String())
	})

	t.Run("approve reports the execution outcome", func(t *testing.T) {
		s := newTestServer(t)
		fixID := uuid.New()
		s.approvalService.On("Approve", mock.Anything, fixID, "user-1", (*string)(nil)).Return(models.ProposedFix{Model: models.Model{ID: fixID}, Status: dtos.FixStatusApproved}, dtos.ExecutionResult{Success: true}, nil)

		rec := s.do(http.MethodPost, "/api/v1/fixes/"+fixID.String()+"/approve/", "user-1", "")
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), `"applied":false`)
	})
}

