package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ExpectedVersion is the schema version this build reads and writes.
const ExpectedVersion = 3

// VersionKey is the settings key holding the applied schema version.
const VersionKey = "schema-version"

//go:embed sql/*.sql
var files embed.FS

const baseSchema = "sql/001_create_game.sql"

// steps maps a schema version to the script that upgrades it to the next one.
var steps = map[int]string{
	1: "sql/002_add_condition.sql",
	2: "sql/003_add_igdb_slug.sql",
}

// Settings stores the schema version marker.
type Settings interface {
	GetInt(key string) int
	Set(key string, value any) error
}

// Run brings the game table up to ExpectedVersion. A missing table is
// created at version 1 and migrated forward whatever the stored marker
// says. A marker below 1 next to an existing table counts as version 1.
func Run(ctx context.Context, db *sql.DB, settings Settings) error {
	log := zap.S().Named("migrations")

	exists, err := tableExists(ctx, db, "game")
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	from := settings.GetInt(VersionKey)
	if !exists {
		log.Infow("creating game table", "version", 1)
		if err := apply(ctx, db, baseSchema); err != nil {
			return fmt.Errorf("failed to create game table: %w", err)
		}
		from = 1
	}
	if from < 1 {
		from = 1
	}

	if from > ExpectedVersion {
		return fmt.Errorf("schema version %d is newer than supported version %d", from, ExpectedVersion)
	}

	if from == ExpectedVersion {
		log.Debugw("schema is up to date", "version", from)
		return nil
	}

	for v := from; v < ExpectedVersion; v++ {
		log.Infow("applying migration", "from", v, "to", v+1)
		if err := apply(ctx, db, steps[v]); err != nil {
			return fmt.Errorf("migration from version %d failed: %w", v, err)
		}
	}

	if err := settings.Set(VersionKey, ExpectedVersion); err != nil {
		return fmt.Errorf("failed to persist schema version: %w", err)
	}

	log.Infow("schema migrated", "from", from, "to", ExpectedVersion)
	return nil
}

func apply(ctx context.Context, db *sql.DB, name string) error {
	content, err := files.ReadFile(name)
	if err != nil {
		return err
	}

	for _, stmt := range strings.Split(string(content), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func tableExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM information_schema.tables WHERE table_name = ?`, name).Scan(&n)
	return n > 0, err
}
