package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/campus-mis/attendance-backend-go/internal/config"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
	"github.com/campus-mis/attendance-backend-go/internal/repository/postgresql"
	"github.com/campus-mis/attendance-backend-go/internal/service/punchimport"
)

// Importer CLI: loads device punch log exports into the logs table.
// Usage: importer <file> [<file>...]
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: importer <file> [<file>...]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	punchRepo := postgresql.NewPunchRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	importer := punchimport.NewImporter(punchRepo, staffRepo, logger)

	ctx := context.Background()
	for _, path := range os.Args[1:] {
		result, err := importer.ImportFile(ctx, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "import %s: %v\n", path, err)
			os.Exit(1)
		}

		fmt.Printf("%s: read %d, inserted %d, malformed %d\n",
			path, result.Read, result.Inserted, result.SkippedMalformed)
		for _, staffID := range result.SkippedUnknown {
			fmt.Printf("  skipped unknown staff %s\n", staffID)
		}
	}
}
