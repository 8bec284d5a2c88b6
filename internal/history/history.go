// Package history persists the (input line, outcome) pairs of a session to
// a local bbolt database. The core interpreter never sees this package; it
// is a persisted-state handle, opaque to the core, wired in only by the
// REPL layer.
package history

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var bucketName = []byte("history")

// Record is one completed statement: the line as typed and the text the
// REPL printed for it (a value, a solver block, or "Error: ...").
type Record struct {
	Seq       uint64    `json:"seq"`
	Line      string    `json:"line"`
	Outcome   string    `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}

// Store is a single bbolt handle owned by one interpreter session; the
// interpreter is single-threaded so Store needs no locking of its own
// beyond what bbolt already serializes internally.
type Store struct {
	db *bbolt.DB
}

// Open creates or reopens the history database at path, ensuring the
// history bucket exists.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init history bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Append records one completed statement, keyed by bbolt's auto-incrementing
// per-bucket sequence so iteration order matches input order.
func (s *Store) Append(line, outcome string, when time.Time) error {
	if s == nil {
		return nil
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		rec := Record{Seq: seq, Line: line, Outcome: outcome, Timestamp: when}
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put(seqKey(seq), data)
	})
}

// Recent returns the last n records in chronological order (oldest first).
// If n <= 0 or the store is nil, it returns no records without error.
func (s *Store) Recent(n int) ([]Record, error) {
	if s == nil || n <= 0 {
		return nil, nil
	}
	var records []Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		c := b.Cursor()
		for k, v := c.Last(); k != nil && len(records) < n; k, v = c.Prev() {
			var rec Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decode history record: %w", err)
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
