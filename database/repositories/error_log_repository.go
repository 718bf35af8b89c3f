package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/dtos"
	"gorm.io/gorm"
)

// errorLogRepository exposes no update. Error logs are an append-only audit record.
type errorLogRepository struct {
	db *gorm.DB
}

func NewErrorLogRepository(db *gorm.DB) *errorLogRepository {
	return &errorLogRepository{
		db: db,
	}
}

func (r *errorLogRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// CreateWithMessage persists the ERROR message and the error log hanging off it in one transaction.
func (r *errorLogRepository) CreateWithMessage(tx *gorm.DB, message *models.Message, errorLog *models.ErrorLog) error {
	return r.getDB(tx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Fragment", "ErrorLog").Create(message).Error; err != nil {
			return err
		}
		errorLog.MessageID = message.ID
		return tx.Omit("ProposedFix").Create(errorLog).Error
	})
}

func (r *errorLogRepository) Read(id uuid.UUID) (models.ErrorLog, error) {
	var errorLog models.ErrorLog
	err := r.db.First(&errorLog, "id = ?", id).Error
	return errorLog, err
}

func (r *errorLogRepository) ReadByMessageID(messageID uuid.UUID) (models.ErrorLog, error) {
	var errorLog models.ErrorLog
	err := r.db.First(&errorLog, "message_id = ?", messageID).Error
	return errorLog, err
}

func (r *errorLogRepository) CountByCategoryAndSeverity(projectID uuid.UUID) ([]dtos.CategorySeverityCount, error) {
	var counts []dtos.CategorySeverityCount
	err := r.db.Model(&models.ErrorLog{}).
		Select("error_logs.category AS category, error_logs.severity AS severity, COUNT(*) AS count").
		Joins("JOIN messages ON messages.id = error_logs.message_id").
		Where("messages.project_id = ?", projectID).
		Group("error_logs.category, error_logs.severity").
		Order("error_logs.category, error_logs.severity").
		Scan(&counts).Error
	return counts, err
}
