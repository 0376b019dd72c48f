package arcstore

import (
	"context"
	"fmt"

	"github.com/cockroachdb/pebble"
	json "github.com/goccy/go-json"

	arcserde "github.com/skelhorn/arcserde"
	"github.com/skelhorn/arcserde/arc"
)

// RowIterator walks the stored items in key order, decoding each through
// the store's codec. Usage follows the usual scan shape:
//
//	it, err := store.Rows(ctx)
//	for it.Next() {
//		row := it.Row()
//		...
//	}
//	err = it.Err()
//	it.Close()
type RowIterator struct {
	ctx   context.Context
	iter  *pebble.Iterator
	codec *arcserde.Codec
	row   arcserde.Row
	err   error
	first bool
}

// Rows scans every stored item as a decoded row, in key order.
func (s *Store) Rows(ctx context.Context) (*RowIterator, error) {
	lower := []byte(itemKeyPrefix)
	upper := []byte(itemKeyPrefix)
	upper[len(upper)-1]++
	iter, err := s.db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: upper})
	if err != nil {
		return nil, fmt.Errorf("arcstore: scan: %w", err)
	}
	return &RowIterator{ctx: ctx, iter: iter, codec: s.codec, first: true}, nil
}

// Next advances to the next row. It returns false at the end of the scan
// or on the first error; Err distinguishes the two.
func (it *RowIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if err := it.ctx.Err(); err != nil {
		it.err = err
		return false
	}
	var ok bool
	if it.first {
		ok = it.iter.First()
		it.first = false
	} else {
		ok = it.iter.Next()
	}
	if !ok {
		it.err = it.iter.Error()
		return false
	}

	var item arc.FileItem
	if err := json.Unmarshal(it.iter.Value(), &item); err != nil {
		it.err = fmt.Errorf("arcstore: unmarshal item at %s: %w", it.iter.Key(), err)
		return false
	}
	row, err := it.codec.Decode(&item)
	if err != nil {
		it.err = fmt.Errorf("arcstore: decode item at %s: %w", it.iter.Key(), err)
		return false
	}
	it.row = row
	return true
}

// Row returns the row decoded by the last successful Next. The caller owns
// the returned row.
func (it *RowIterator) Row() arcserde.Row { return it.row }

// Err returns the error that ended the scan, if any.
func (it *RowIterator) Err() error { return it.err }

// Close releases the underlying iterator.
func (it *RowIterator) Close() error { return it.iter.Close() }
