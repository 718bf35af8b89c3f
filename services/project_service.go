package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gosimple/slug"
	"github.com/l3montree-dev/fixflow/database"
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/shared"
	"gorm.io/gorm"
)

type projectService struct {
	projectRepository shared.ProjectRepository
}

var _ shared.ProjectService = (*projectService)(nil)

func NewProjectService(projectRepository shared.ProjectRepository) *projectService {
	return &projectService{
		projectRepository: projectRepository,
	}
}

// uniqueSlug appends -1, -2 ... until the slug is free for the owner.
func (s *projectService) uniqueSlug(ownerID string, base string) (string, error) {
	candidate := base
	for i := 1; ; i++ {
		_, err := s.projectRepository.ReadBySlug(ownerID, candidate)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *projectService) Create(ownerID string, req dtos.ProjectCreateRequest) (models.Project, error) {
	name := strings.TrimSpace(req.Name)
	base := slug.Make(name)
	if base == "" {
		return models.Project{}, shared.NewBadRequestError("project name must contain at least one letter or digit")
	}

	projectSlug, err := s.uniqueSlug(ownerID, base)
	if err != nil {
		return models.Project{}, fmt.Errorf("could not check project slug: %w", err)
	}

	project := models.Project{
		Name:        name,
		Slug:        projectSlug,
		Description: req.Description,
		OwnerID:     ownerID,
	}
	if err := s.projectRepository.Create(nil, &project); err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.Project{}, shared.NewConflictError("a project with this slug already exists")
		}
		return models.Project{}, fmt.Errorf("could not create project: %w", err)
	}

	slog.Info("project created", "projectID", project.ID, "projectSlug", project.Slug, "owner", ownerID)
	return project, nil
}
