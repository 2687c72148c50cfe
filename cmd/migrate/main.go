// Command migrate applies the declarative schema to the configured database
// with the atlas CLI. It plans against a throwaway dev database, so the
// docker dev URL needs a running Docker daemon.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"campus-parking/internal/infra/db"
	"campus-parking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const applyTimeout = 2 * time.Minute

func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned statements without applying them")
	devURL := flag.String("dev-url", "docker://postgres/17/dev?search_path=public", "atlas dev database used for planning")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg.DB, *atlasBin, *devURL, *dryRun); err != nil {
		slog.Error("Schema apply failed", "error", err)
		os.Exit(1)
	}
}

func run(dbCfg config.DBConfig, atlasBin, devURL string, dryRun bool) error {
	dir, err := os.MkdirTemp("", "campus-parking-schema")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	schemaPath := filepath.Join(dir, "schema.sql")
	if err := os.WriteFile(schemaPath, []byte(db.Schema), 0o600); err != nil {
		return err
	}

	client, err := atlasexec.NewClient(dir, atlasBin)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:    dbCfg.BuildDSN(),
		To:     "file://" + schemaPath,
		DevURL: devURL,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	if dryRun {
		slog.Info("Planned schema changes", "pending", res.Changes.Pending)
		return nil
	}
	slog.Info("Schema applied", "statements", len(res.Changes.Applied))
	return nil
}
