package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/utils"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Project, *gorm.DB]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (g *projectRepository) ListByOwner(ownerID string) ([]models.Project, error) {
	var projects []models.Project
	err := g.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (g *projectRepository) ReadBySlug(ownerID string, slug string) (models.Project, error) {
	var project models.Project
	err := g.db.Where("owner_id = ? AND slug = ?", ownerID, slug).First(&project).Error
	return project, err
}

// GetProjectByProposedFixID resolves the project a fix belongs to by walking
// fix -> error log -> message -> project.
func (g *projectRepository) GetProjectByProposedFixID(fixID uuid.UUID) (models.Project, error) {
	var project models.Project
	err := g.db.Model(&models.Project{}).
		Select("projects.*").
		Joins("JOIN messages ON messages.project_id = projects.id").
		Joins("JOIN error_logs ON error_logs.message_id = messages.id").
		Joins("JOIN proposed_fixes ON proposed_fixes.error_log_id = error_logs.id").
		Where("proposed_fixes.id = ?", fixID).
		First(&project).Error
	return project, err
}
