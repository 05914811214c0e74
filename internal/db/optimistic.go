package db

import (
	"atlas_inventory_server/pkg/errs"

	"gorm.io/gorm"
)

// OptimisticUpdate applies updates to the row identified by id only when
// its version column still matches expected, bumping the version in the
// same statement. A zero row count means a concurrent writer won the
// race; the caller must re-read and retry.
func OptimisticUpdate(tx *gorm.DB, model interface{}, id uint, expected uint, updates map[string]interface{}) error {
	updates["version"] = expected + 1

	result := tx.Model(model).
		Where("id = ? AND version = ?", id, expected).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrStaleVersion
	}
	return nil
}
