package services

import (
	"errors"
	"time"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/events"
	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/internal/providers"
	"atlas_inventory_server/pkg/colors"
	"atlas_inventory_server/pkg/errs"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ElementService orchestrates the element lifecycle: settings
// submission, removal and operational state transitions. All mutations
// run inside one transaction; cross-aggregate checks (role, group,
// platform, dependents) happen before any write.
type ElementService struct {
	validate *validator.Validate
}

// NewElementService creates a new element lifecycle service
func NewElementService() *ElementService {
	return &ElementService{
		validate: validator.New(),
	}
}

// ElementSettings is a settings submission for one element, as reported
// by the device or entered by an operator. GroupID and Role must resolve
// to existing records; the platform is found or created.
type ElementSettings struct {
	ElementID  string                     `json:"element_id"`
	Name       string                     `json:"name" validate:"required,max=100"`
	Alias      string                     `json:"alias" validate:"max=100"`
	AdminState models.AdministrativeState `json:"admin_state" validate:"omitempty,oneof=UP DOWN"`
	GroupID    string                     `json:"group_id" validate:"required"`
	Role       string                     `json:"role" validate:"required"`

	// Platform resolution: id + name creates a stub when unknown,
	// name alone is lookup-only, neither leaves the element without
	// a platform.
	PlatformID   string `json:"platform_id"`
	PlatformName string `json:"platform_name"`
	Chipset      string `json:"chipset"`
	UnitHeight   int    `json:"unit_height"`
	HalfRack     bool   `json:"half_rack"`
}

// StoreElementSettings creates or updates the element described by the
// settings. Returns true when a new element was created, false when an
// existing one was updated.
func (es *ElementService) StoreElementSettings(settings *ElementSettings) (bool, error) {
	if err := es.validate.Struct(settings); err != nil {
		return false, err
	}

	created := false
	var broadcastElement *models.Element

	err := db.GetDB().Transaction(func(tx *gorm.DB) error {
		group, err := providers.GetGroup(tx, settings.GroupID)
		if err != nil {
			return err
		}
		role, err := providers.GetRoleByName(tx, settings.Role)
		if err != nil {
			return err
		}
		platform, err := es.resolvePlatform(tx, settings)
		if err != nil {
			return err
		}

		var platformRef *uint
		if platform != nil {
			platformRef = &platform.ID
		}

		adminState := settings.AdminState
		if adminState == "" {
			adminState = models.AdminStateDown
		}

		var existing *models.Element
		if settings.ElementID != "" {
			existing, _, err = providers.FindElement(tx, settings.ElementID)
			if err != nil {
				return err
			}
		}

		if existing != nil {
			// the unique name must not collide with another element
			other, ok, err := providers.FindElementByName(tx, settings.Name)
			if err != nil {
				return err
			}
			if ok && other.ID != existing.ID {
				return errs.Conflict("element name %q already in use", settings.Name)
			}

			updates := map[string]interface{}{
				"name":          settings.Name,
				"alias":         settings.Alias,
				"admin_state":   adminState,
				"role_id":       role.ID,
				"group_id":      group.ID,
				"platform_id":   platformRef,
				"last_modified": time.Now(),
			}
			if err := db.OptimisticUpdate(tx, &models.Element{}, existing.ID, existing.Version, updates); err != nil {
				return err
			}

			updated, err := providers.GetElement(tx, existing.ElementID)
			if err != nil {
				return err
			}
			broadcastElement = updated
			return nil
		}

		// creating: the name must be free
		if _, ok, err := providers.FindElementByName(tx, settings.Name); err != nil {
			return err
		} else if ok {
			return errs.Conflict("element name %q already in use", settings.Name)
		}

		element := &models.Element{
			ElementID:    settings.ElementID,
			Name:         settings.Name,
			Alias:        settings.Alias,
			AdminState:   adminState,
			OperState:    models.OperStateUnknown,
			RoleID:       role.ID,
			GroupID:      group.ID,
			PlatformID:   platformRef,
			LastModified: time.Now(),
		}
		if err := tx.Create(element).Error; err != nil {
			// two submissions raced past the name check
			return translateCreateError(err, settings.Name)
		}

		created = true
		broadcastElement = element
		return nil
	})
	if err != nil {
		return false, err
	}

	if events.WSHub != nil && broadcastElement != nil {
		if created {
			events.WSHub.BroadcastElementEvent("element_added", broadcastElement)
		} else {
			events.WSHub.BroadcastElementEvent("element_updated", broadcastElement)
		}
	}

	return created, nil
}

// translateCreateError maps a unique-index violation on element create
// to a conflict the caller can retry
func translateCreateError(err error, name string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.Conflict("element name %q already in use", name)
	}
	return err
}

// resolvePlatform applies the find-or-create platform rules: a known id
// is reused, an unknown id with a name creates a stub, a bare name is a
// lookup that may come back empty.
func (es *ElementService) resolvePlatform(tx *gorm.DB, settings *ElementSettings) (*models.Platform, error) {
	if settings.PlatformID != "" {
		platform, ok, err := providers.FindPlatform(tx, settings.PlatformID)
		if err != nil {
			return nil, err
		}
		if ok {
			return platform, nil
		}

		if settings.PlatformName != "" {
			stub := &models.Platform{
				PlatformID: settings.PlatformID,
				Name:       settings.PlatformName,
				Chipset:    settings.Chipset,
				UnitHeight: settings.UnitHeight,
				HalfRack:   settings.HalfRack,
				Stub:       true,
			}
			if err := tx.Create(stub).Error; err != nil {
				return nil, err
			}
			colors.PrintInfo("Created stub platform %s for unknown platform id %s", stub.Name, stub.PlatformID)
			return stub, nil
		}
		return nil, nil
	}

	if settings.PlatformName != "" {
		platform, ok, err := providers.FindPlatformByName(tx, settings.PlatformName)
		if err != nil {
			return nil, err
		}
		if ok {
			return platform, nil
		}
	}
	return nil, nil
}

// RemoveElement removes an element, failing with a conflict while live
// dependents remain (rack placement, installed images, modules, service
// contexts).
func (es *ElementService) RemoveElement(elementID string) error {
	return es.remove(elementID, false)
}

// ForceRemoveElement removes an element and cascades removal of all its
// dependent records.
func (es *ElementService) ForceRemoveElement(elementID string) error {
	return es.remove(elementID, true)
}

func (es *ElementService) remove(elementID string, force bool) error {
	var removed *models.Element

	err := db.GetDB().Transaction(func(tx *gorm.DB) error {
		element, err := providers.GetElement(tx, elementID)
		if err != nil {
			return err
		}

		if !force {
			dependents := map[string]int64{}
			var count int64

			if err := tx.Model(&models.RackPlacement{}).Where("element_id = ?", element.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				dependents["rack placement"] = count
			}
			if err := tx.Model(&models.InstalledImage{}).Where("element_id = ?", element.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				dependents["installed images"] = count
			}
			if err := tx.Model(&models.ElementModule{}).Where("element_id = ?", element.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				dependents["modules"] = count
			}
			if err := tx.Model(&models.ServiceContext{}).Where("element_id = ?", element.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				dependents["service contexts"] = count
			}

			if len(dependents) > 0 {
				return errs.Conflict("element %s still has dependents %v", element.Name, dependents)
			}
		} else {
			for _, child := range []interface{}{
				&models.RackPlacement{},
				&models.InstalledImage{},
				&models.ElementModule{},
				&models.ServiceContext{},
			} {
				if err := tx.Where("element_id = ?", element.ID).Delete(child).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Delete(element).Error; err != nil {
			return err
		}
		removed = element
		return nil
	})
	if err != nil {
		return err
	}

	if events.WSHub != nil && removed != nil {
		events.WSHub.BroadcastElementEvent("element_removed", removed)
	}
	return nil
}

// UpdateOperationalState sets the operational state and refreshes the
// heartbeat timestamp. Always succeeds when the element exists.
func (es *ElementService) UpdateOperationalState(elementID string, state models.OperationalState) error {
	var updated *models.Element

	err := db.GetDB().Transaction(func(tx *gorm.DB) error {
		element, err := providers.GetElement(tx, elementID)
		if err != nil {
			return err
		}

		result := tx.Model(&models.Element{}).
			Where("id = ?", element.ID).
			Updates(map[string]interface{}{
				"oper_state":    state,
				"last_modified": time.Now(),
				"version":       gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}

		element.OperState = state
		updated = element
		return nil
	})
	if err != nil {
		return err
	}

	if events.WSHub != nil && updated != nil {
		events.WSHub.BroadcastElementEvent("element_state_changed", updated)
	}
	return nil
}

// RecordHeartbeat marks the element operationally UP and refreshes its
// heartbeat timestamp, keeping it out of the watchdog's staleness window.
func (es *ElementService) RecordHeartbeat(elementID string) error {
	return es.UpdateOperationalState(elementID, models.OperStateUp)
}
