// Package sqlite persists generated records as SQLite fixtures.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fablegen/fable/internal/generator"
	"github.com/fablegen/fable/internal/storage/sqlitemigrate"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store implements generator.Sink over a SQLite file, so fixture batches
// can be queried and diffed after generation.
type Store struct {
	sqlDB *sql.DB
	seed  int64
}

// Open opens (or creates) a fixture database at path and applies bundled
// migrations. The session seed is stored with every row, so a fixture set
// can always be traced back to the run that produced it.
func Open(path string, seed int64) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("bundled migrations: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB, seed: seed}, nil
}

const insertRecordQuery = `
INSERT INTO records (
    seed, first_name, last_name, email, user_name, company, catch_phrase,
    ip_address, mac_address, port, age, score, serial, cohort, bio,
    created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

// Write inserts one generated record.
func (s *Store) Write(ctx context.Context, rec generator.Record) error {
	_, err := s.sqlDB.ExecContext(ctx, insertRecordQuery,
		s.seed,
		rec.FirstName,
		rec.LastName,
		rec.Email,
		rec.UserName,
		rec.Company,
		rec.CatchPhrase,
		rec.IPAddress,
		rec.MACAddress,
		rec.Port,
		rec.Age,
		rec.Score,
		rec.Serial,
		rec.Cohort,
		rec.Bio,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// Count returns the number of stored records for the session seed.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	row := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM records WHERE seed = ?", s.seed)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.sqlDB.Close()
}
