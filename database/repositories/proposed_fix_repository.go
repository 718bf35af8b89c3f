// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/l3montree-dev/fixflow/utils"
	"gorm.io/gorm"
)

type proposedFixRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ProposedFix, *gorm.DB]
}

var _ shared.ProposedFixRepository = (*proposedFixRepository)(nil)

func NewProposedFixRepository(db *gorm.DB) *proposedFixRepository {
	return &proposedFixRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ProposedFix](db),
	}
}

func (r *proposedFixRepository) Create(tx *gorm.DB, fix *models.ProposedFix) error {
	return r.GetDB(tx).Omit("ErrorLog").Create(fix).Error
}

// CreateWithMessage persists a fix together with the conversation entry announcing it.
func (r *proposedFixRepository) CreateWithMessage(tx *gorm.DB, fix *models.ProposedFix, message *models.Message) error {
	return r.GetDB(tx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("ErrorLog").Create(fix).Error; err != nil {
			return err
		}
		return tx.Omit("Fragment", "ErrorLog").Create(message).Error
	})
}

func (r *proposedFixRepository) Read(id uuid.UUID) (models.ProposedFix, error) {
	var fix models.ProposedFix
	err := r.db.Preload("ErrorLog").First(&fix, "id = ?", id).Error
	return fix, err
}

func (r *proposedFixRepository) ReadByErrorLogID(errorLogID uuid.UUID) (models.ProposedFix, error) {
	var fix models.ProposedFix
	err := r.db.First(&fix, "error_log_id = ?", errorLogID).Error
	return fix, err
}

func (r *proposedFixRepository) projectScope(projectID uuid.UUID) *gorm.DB {
	return r.db.Model(&models.ProposedFix{}).
		Joins("JOIN error_logs ON error_logs.id = proposed_fixes.error_log_id").
		Joins("JOIN messages ON messages.id = error_logs.message_id").
		Where("messages.project_id = ?", projectID)
}

// ListByProject returns the fixes of a project newest first. A nil status returns all of them.
func (r *proposedFixRepository) ListByProject(projectID uuid.UUID, status *dtos.FixStatus) ([]models.ProposedFix, error) {
	var fixes []models.ProposedFix
	q := r.projectScope(projectID).Preload("ErrorLog")
	if status != nil {
		q = q.Where("proposed_fixes.status = ?", *status)
	}
	err := q.Order("proposed_fixes.created_at DESC").Find(&fixes).Error
	return fixes, err
}

func (r *proposedFixRepository) CountByStatus(projectID uuid.UUID) ([]dtos.FixStatusCount, error) {
	var counts []dtos.FixStatusCount
	err := r.projectScope(projectID).
		Select("proposed_fixes.status AS status, COUNT(*) AS count").
		Group("proposed_fixes.status").
		Order("proposed_fixes.status").
		Scan(&counts).Error
	return counts, err
}

// CompareAndSwap applies updates to the fix only if it is still in expectedStatus at
// expectedVersion, bumping the version in the same statement. Exactly one of several
// concurrent callers holding the same version succeeds; the others get shared.ErrStaleProposedFix.
func (r *proposedFixRepository) CompareAndSwap(tx *gorm.DB, fixID uuid.UUID, expectedStatus dtos.FixStatus, expectedVersion int, updates map[string]any) error {
	values := make(map[string]any, len(updates)+2)
	for k, v := range updates {
		values[k] = v
	}
	values["version"] = expectedVersion + 1
	values["updated_at"] = time.Now()

	res := r.GetDB(tx).Model(&models.ProposedFix{}).
		Where("id = ? AND status = ? AND version = ?", fixID, expectedStatus, expectedVersion).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrStaleProposedFix
	}
	return nil
}

// ListFailedPendingBefore returns pending fixes whose apply failed at least once,
// which were last touched before the given time and were not escalated yet.
func (r *proposedFixRepository) ListFailedPendingBefore(before time.Time) ([]models.ProposedFix, error) {
	var fixes []models.ProposedFix
	err := r.db.Preload("ErrorLog").
		Where("status = ? AND apply_attempts > 0 AND escalated_at IS NULL AND updated_at < ?", dtos.FixStatusPending, before).
		Order("updated_at ASC").
		Find(&fixes).Error
	return fixes, err
}
