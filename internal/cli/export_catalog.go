package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bookhaven/bookhaven/internal/backup"
	"github.com/bookhaven/bookhaven/internal/catalog"
	"github.com/bookhaven/bookhaven/internal/config"
	"github.com/bookhaven/bookhaven/internal/database"
	"github.com/bookhaven/bookhaven/internal/kvstore"
)

// ExportCatalogCommand writes the catalog state to a JSON snapshot file
type ExportCatalogCommand struct {
	DatabasePath string
	OutputDir    string
}

// NewExportCatalogCommand creates a new ExportCatalogCommand
func NewExportCatalogCommand() *ExportCatalogCommand {
	return &ExportCatalogCommand{}
}

// ParseFlags parses command line flags
func (cmd *ExportCatalogCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-catalog", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.OutputDir, "out", "./backups", "Directory to write the snapshot file to")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-catalog [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export the book collection and favourites to a timestamped JSON file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export-catalog\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export-catalog -db ./bookhaven.db -out ~/backups\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the export command
func (cmd *ExportCatalogCommand) Run() error {
	absOutputDir, err := filepath.Abs(cmd.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store, err := catalog.New(catalog.Options{KV: kvstore.New(db)})
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	path, err := backup.WriteSnapshot(store, absOutputDir, time.Now())
	if err != nil {
		return err
	}

	snapshot := store.Snapshot()
	fmt.Printf("Exported %d books and %d favourites to %s\n",
		len(snapshot.Books), len(snapshot.FavoriteBookIDs), path)
	return nil
}
