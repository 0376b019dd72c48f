// Package arcstore keeps captured archive items in a local pebble database
// and hands them back as decoded rows, keyed by their source location
// (archive file name and offset) so scans come back in capture order.
package arcstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	json "github.com/goccy/go-json"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	arcserde "github.com/skelhorn/arcserde"
	"github.com/skelhorn/arcserde/arc"
)

// ErrNotFound is returned by Get when no item is stored at the requested
// location.
var ErrNotFound = errors.New("arcstore: item not found")

const itemKeyPrefix = "item/"

// Options configure a Store.
type Options struct {
	// Logger receives ingest and scan telemetry; nil means no logging.
	Logger *zap.Logger
	// Sync makes writes durable before returning.
	Sync bool
}

// Store is a pebble-backed collection of captured items plus the codec
// that turns them into rows.
type Store struct {
	db     *pebble.DB
	codec  *arcserde.Codec
	log    *zap.Logger
	writes *pebble.WriteOptions
}

// Open opens (creating if needed) the store at path.
func Open(path string, codec *arcserde.Codec, opts Options) (*Store, error) {
	if codec == nil {
		return nil, errors.New("arcstore: nil codec")
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("arcstore: open %s: %w", path, err)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	writes := pebble.NoSync
	if opts.Sync {
		writes = pebble.Sync
	}
	return &Store{db: db, codec: codec, log: log, writes: writes}, nil
}

// itemKey orders items by archive file, then by position within it. The
// offset is zero-padded so byte order matches numeric order.
func itemKey(arcFileName string, arcFilePos int32) []byte {
	return []byte(fmt.Sprintf("%s%s/%010d", itemKeyPrefix, arcFileName, arcFilePos))
}

// Put stores one item at its source location, overwriting any previous
// capture of the same location.
func (s *Store) Put(item *arc.FileItem) error {
	if item == nil {
		return errors.New("arcstore: nil item")
	}
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("arcstore: marshal item: %w", err)
	}
	if err := s.db.Set(itemKey(item.ArcFileName, item.ArcFilePos), data, s.writes); err != nil {
		return fmt.Errorf("arcstore: put: %w", err)
	}
	return nil
}

// Ingest stores a batch of items under one batch ID, stopping at the first
// failure or context cancellation. It returns the batch ID and the number
// of items stored.
func (s *Store) Ingest(ctx context.Context, items ...*arc.FileItem) (string, int, error) {
	batchID := ksuid.New().String()
	stored := 0
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			s.log.Warn("ingest interrupted",
				zap.String("batch", batchID),
				zap.Int("stored", stored),
				zap.Error(err))
			return batchID, stored, err
		}
		if err := s.Put(item); err != nil {
			s.log.Error("ingest failed",
				zap.String("batch", batchID),
				zap.Int("stored", stored),
				zap.Error(err))
			return batchID, stored, err
		}
		stored++
	}
	s.log.Info("ingest complete",
		zap.String("batch", batchID),
		zap.Int("stored", stored))
	return batchID, stored, nil
}

// Get loads the item captured at the given archive location.
func (s *Store) Get(arcFileName string, arcFilePos int32) (*arc.FileItem, error) {
	data, closer, err := s.db.Get(itemKey(arcFileName, arcFilePos))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("arcstore: get: %w", err)
	}
	defer closer.Close()

	var item arc.FileItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("arcstore: unmarshal item: %w", err)
	}
	return &item, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
