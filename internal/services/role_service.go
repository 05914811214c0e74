package services

import (
	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"
	"atlas_inventory_server/pkg/errs"

	"gorm.io/gorm"
)

// RoleService manages element roles. Roles referenced by elements are
// protected from removal; force removal reassigns the referencing
// elements to a replacement role first.
type RoleService struct{}

// NewRoleService creates a new role service
func NewRoleService() *RoleService {
	return &RoleService{}
}

// RemoveRole deletes a role, failing with a conflict while any element
// references it.
func (rs *RoleService) RemoveRole(roleID string) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		role, err := providers.GetRole(tx, roleID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Element{}).Where("role_id = ?", role.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.Conflict("role %s is referenced by %d element(s)", role.Name, count)
		}

		return tx.Delete(role).Error
	})
}

// ForceRemoveRole deletes a role even when elements reference it, moving
// those elements to the named replacement role first.
func (rs *RoleService) ForceRemoveRole(roleID, replacementRole string) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		role, err := providers.GetRole(tx, roleID)
		if err != nil {
			return err
		}
		replacement, err := providers.GetRoleByName(tx, replacementRole)
		if err != nil {
			return err
		}
		if replacement.ID == role.ID {
			return errs.Conflict("replacement role %s is the role being removed", replacementRole)
		}

		if err := tx.Model(&models.Element{}).
			Where("role_id = ?", role.ID).
			Updates(map[string]interface{}{
				"role_id": replacement.ID,
				"version": gorm.Expr("version + 1"),
			}).Error; err != nil {
			return err
		}

		return tx.Delete(role).Error
	})
}
