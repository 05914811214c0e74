package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"atlas_inventory_server/internal/db"
	"atlas_inventory_server/internal/services"
	"atlas_inventory_server/pkg/colors"

	"github.com/joho/godotenv"
)

// snapshot exports rack contents to a JSON document or re-applies a
// previously exported document, for backup and migration.
func main() {
	exportPath := flag.String("export", "", "write a rack snapshot to this file")
	importPath := flag.String("import", "", "apply the rack snapshot from this file")
	flag.Parse()

	if (*exportPath == "") == (*importPath == "") {
		log.Fatal("exactly one of -export or -import is required")
	}

	if err := godotenv.Load(); err != nil {
		colors.PrintWarning("No .env file found, using system environment variables")
	}

	if err := db.Initialize(); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer db.Close()

	exportService := services.NewExportService(services.NewRackService())

	if *exportPath != "" {
		snapshot, err := exportService.ExportAll()
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}

		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode snapshot: %v", err)
		}
		if err := os.WriteFile(*exportPath, data, 0o644); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		colors.PrintSuccess("Exported %d rack(s) to %s", len(snapshot.Racks), *exportPath)
		return
	}

	data, err := os.ReadFile(*importPath)
	if err != nil {
		log.Fatalf("Failed to read snapshot: %v", err)
	}

	var snapshot services.InventorySnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Fatalf("Failed to decode snapshot: %v", err)
	}

	if err := exportService.ImportSnapshot(&snapshot); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	colors.PrintSuccess("Imported %d rack(s) from %s", len(snapshot.Racks), *importPath)
}
