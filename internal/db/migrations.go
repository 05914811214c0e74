package db

import (
	"fmt"

	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/pkg/colors"
)

// RunMigrations runs all database migrations
func RunMigrations() error {
	colors.PrintSubHeader("Running Database Migrations")

	// Create base tables first (no foreign keys), then dependent tables
	err := DB.AutoMigrate(&models.User{})
	if err != nil {
		return fmt.Errorf("user table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Users table ready")

	err = DB.AutoMigrate(&models.Facility{})
	if err != nil {
		return fmt.Errorf("facility table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Facilities table ready")

	err = DB.AutoMigrate(&models.ElementGroup{})
	if err != nil {
		return fmt.Errorf("element group table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Element groups table ready")

	err = DB.AutoMigrate(&models.Platform{})
	if err != nil {
		return fmt.Errorf("platform table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Platforms table ready")

	err = DB.AutoMigrate(&models.ElementRole{})
	if err != nil {
		return fmt.Errorf("element role table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Element roles table ready")

	err = DB.AutoMigrate(&models.Rack{})
	if err != nil {
		return fmt.Errorf("rack table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Racks table ready")

	err = DB.AutoMigrate(&models.Element{})
	if err != nil {
		return fmt.Errorf("element table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Elements table ready")

	err = DB.AutoMigrate(&models.RackPlacement{})
	if err != nil {
		return fmt.Errorf("rack placement table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Rack placements table ready")

	err = DB.AutoMigrate(&models.Image{})
	if err != nil {
		return fmt.Errorf("image table migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Images table ready")

	err = DB.AutoMigrate(&models.InstalledImage{}, &models.ElementModule{}, &models.ServiceContext{})
	if err != nil {
		return fmt.Errorf("element child tables migration failed: %v", err)
	}
	colors.PrintSuccess("✓ Element child tables ready")

	colors.PrintHeader("DATABASE MIGRATIONS COMPLETED SUCCESSFULLY")
	return nil
}
