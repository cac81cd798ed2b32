package resource

import (
	"context"
	"database/sql"
	"os"

	"github.com/mwantia/flatvfs/data/errors"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS resources (
	type   TEXT NOT NULL,
	name   TEXT NOT NULL,
	locale TEXT NOT NULL DEFAULT '',
	data   BLOB NOT NULL,
	PRIMARY KEY (type, name, locale)
);`

// Resource is one entry of a resource module.
type Resource struct {
	Type   string
	Name   string
	Locale string
	Data   []byte
}

// CreateModule writes a new module file at path holding resources.
// An existing file is never replaced.
func CreateModule(ctx context.Context, path string, resources ...Resource) error {
	if _, err := os.Stat(path); err == nil {
		return errors.AlreadyExists(path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range resources {
		if r.Type == "" || r.Name == "" {
			return errors.Invalid("resource requires type and name, got '%s/%s'", r.Type, r.Name)
		}

		content := r.Data
		if content == nil {
			content = []byte{}
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO resources (type, name, locale, data) VALUES (?, ?, ?, ?)",
			r.Type, r.Name, r.Locale, content); err != nil {
			return err
		}
	}

	return tx.Commit()
}
