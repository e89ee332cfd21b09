package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// ledgerTable records which migrations have run. It lives in public because
// the first migration is what creates the archive schema itself.
const ledgerTable = "public.archive_migrations"

// Migrator applies the SQL files under dir in lexical order. Files follow
// the {version}_{name}.up.sql / .down.sql naming scheme; each file runs in
// one transaction together with its ledger row.
type Migrator struct {
	db  *sql.DB
	dir string
	log zerolog.Logger
}

func NewMigrator(db *sql.DB, dir string, log zerolog.Logger) *Migrator {
	return &Migrator{db: db, dir: dir, log: log}
}

// Up applies every up-migration not yet in the ledger.
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.ensureLedger(ctx); err != nil {
		return err
	}

	pending, err := m.pending(ctx)
	if err != nil {
		return err
	}

	for _, name := range pending {
		err := m.inTx(ctx, func(tx *sql.Tx) error {
			if err := execFile(ctx, tx, filepath.Join(m.dir, name)); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO `+ledgerTable+` (version, filename) VALUES ($1, $2)`,
				versionOf(name), name)
			return err
		})
		if err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		m.log.Info().Str("migration", name).Msg("applied")
	}
	return nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down(ctx context.Context) error {
	if err := m.ensureLedger(ctx); err != nil {
		return err
	}

	var version, name string
	err := m.db.QueryRowContext(ctx,
		`SELECT version, filename FROM `+ledgerTable+` ORDER BY version DESC LIMIT 1`,
	).Scan(&version, &name)
	if errors.Is(err, sql.ErrNoRows) {
		m.log.Info().Msg("nothing to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("latest migration: %w", err)
	}

	down := strings.TrimSuffix(name, ".up.sql") + ".down.sql"
	err = m.inTx(ctx, func(tx *sql.Tx) error {
		if err := execFile(ctx, tx, filepath.Join(m.dir, down)); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`DELETE FROM `+ledgerTable+` WHERE version = $1`, version)
		return err
	})
	if err != nil {
		return fmt.Errorf("roll back %s: %w", down, err)
	}
	m.log.Info().Str("migration", down).Msg("rolled back")
	return nil
}

func (m *Migrator) ensureLedger(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+ledgerTable+` (
			version    TEXT PRIMARY KEY,
			filename   TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("ensure migration ledger: %w", err)
	}
	return nil
}

// pending returns the up-files whose version is not in the ledger, ordered.
func (m *Migrator) pending(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT version FROM `+ledgerTable)
	if err != nil {
		return nil, fmt.Errorf("read migration ledger: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	all, err := upFiles(m.dir)
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	var out []string
	for _, name := range all {
		if !applied[versionOf(name)] {
			out = append(out, name)
		}
	}
	return out, nil
}

func (m *Migrator) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func execFile(ctx context.Context, tx *sql.Tx, path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, string(script))
	return err
}

// upFiles lists the *.up.sql entries in dir in lexical (version) order.
func upFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func versionOf(name string) string {
	if i := strings.IndexByte(name, '_'); i > 0 {
		return name[:i]
	}
	return name
}
