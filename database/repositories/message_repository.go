package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/utils"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Message, *gorm.DB]
}

func NewMessageRepository(db *gorm.DB) *messageRepository {
	return &messageRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Message](db),
	}
}

// ListByProject returns the conversation of a project in chronological order.
func (r *messageRepository) ListByProject(projectID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Fragment").Preload("ErrorLog").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// CreateWithFragment persists the result message of a successful attempt together with its artifacts.
func (r *messageRepository) CreateWithFragment(tx *gorm.DB, message *models.Message, fragment *models.Fragment) error {
	return r.GetDB(tx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Fragment", "ErrorLog").Create(message).Error; err != nil {
			return err
		}
		fragment.MessageID = message.ID
		return tx.Create(fragment).Error
	})
}

func (r *messageRepository) CountByProject(projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}
