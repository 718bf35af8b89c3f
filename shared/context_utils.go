package shared

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/database/models"
)

type AuthSession interface {
	GetUserID() string
}

type userSession struct {
	userID string
}

func NewSession(userID string) AuthSession {
	return userSession{userID: userID}
}

func (s userSession) GetUserID() string {
	return s.userID
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetProject(ctx Context) models.Project {
	return ctx.Get("project").(models.Project)
}

func SetProject(ctx Context, project models.Project) {
	ctx.Set("project", project)
}

func HasProject(ctx Context) bool {
	_, ok := ctx.Get("project").(models.Project)
	return ok
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return v
}

func getUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	raw := SanitizeParam(GetParam(ctx, param))
	if raw == "" {
		return uuid.Nil, fmt.Errorf("could not get %s", param)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", param, err)
	}
	return id, nil
}

func GetProjectID(ctx Context) (uuid.UUID, error) {
	return getUUIDParam(ctx, "projectID")
}

func GetFixID(ctx Context) (uuid.UUID, error) {
	return getUUIDParam(ctx, "fixID")
}
