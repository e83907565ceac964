// Package bolt provides a BoltDB-backed fixture sink. Records are stored
// as JSON payloads keyed by seed and insertion sequence, which keeps
// fixtures from independent runs addressable side by side in one file.
package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/fablegen/fable/internal/generator"
)

const recordBucket = "records"

// Store writes generated records to a BoltDB file.
type Store struct {
	db   *bbolt.DB
	seed int64
	seq  uint64
}

// Open opens a BoltDB-backed store at the provided path. Records written
// through the returned store are grouped under the given seed.
func Open(path string, seed int64) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db, seed: seed}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Write persists a single generated record.
func (s *Store) Write(ctx context.Context, rec generator.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(recordBucket))
		if bucket == nil {
			return fmt.Errorf("record bucket is missing")
		}
		s.seq++
		return bucket.Put(recordKey(s.seed, s.seq), payload)
	})
}

// Count reports how many records are stored for the given seed.
func (s *Store) Count(seed int64) (int, error) {
	if s == nil || s.db == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	prefix := seedPrefix(seed)
	count := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(recordBucket))
		if bucket == nil {
			return fmt.Errorf("record bucket is missing")
		}
		c := bucket.Cursor()
		for k, _ := c.Seek(prefix); k != nil && strings.HasPrefix(string(k), string(prefix)); k, _ = c.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(recordBucket))
		if err != nil {
			return fmt.Errorf("create record bucket: %w", err)
		}
		return nil
	})
}

// recordKey orders records by seed then insertion sequence. The sequence is
// encoded big-endian so a cursor scan yields records in generation order.
func recordKey(seed int64, seq uint64) []byte {
	key := seedPrefix(seed)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seq)
	return append(key, buf[:]...)
}

func seedPrefix(seed int64) []byte {
	return []byte(fmt.Sprintf("seed/%d/", seed))
}
