package store

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/agentstation/bookshelf/internal/persistence"
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// shelfKeyPrefix namespaces genre records. Keys carry the store position
// zero padded, so badger's sorted iteration returns them in save order.
const shelfKeyPrefix = "shelf/"

var _ Store = (*BadgerStore)(nil)

// BadgerStore keeps one JSON encoded shelf per genre in a badger database.
type BadgerStore struct {
	db      *badger.DB
	dir     string
	catOpts []catalogs.Option
}

// OpenBadgerStore opens (or creates) the database in dir.
func OpenBadgerStore(dir string, opts ...catalogs.Option) (*BadgerStore, error) {
	bopts := badger.DefaultOptions(dir)
	bopts.Logger = nil
	bopts.SyncWrites = true

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, errors.WrapIO("open", dir, err)
	}
	return &BadgerStore{db: db, dir: dir, catOpts: opts}, nil
}

// Location returns the database directory.
func (s *BadgerStore) Location() string {
	return s.dir
}

func shelfKey(pos int) []byte {
	return []byte(fmt.Sprintf("%s%08d", shelfKeyPrefix, pos))
}

// Load implements Store. An empty database counts as missing.
func (s *BadgerStore) Load(ctx context.Context) (*catalogs.Catalog, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	var shelves []catalogs.Shelf
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(shelfKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var shelf catalogs.Shelf
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &shelf)
			}); err != nil {
				return errors.NewParseError("json", s.dir, "decode "+string(it.Item().Key()), err)
			}
			shelves = append(shelves, shelf)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", s.dir, err)
	}

	if len(shelves) == 0 {
		return catalogs.New(s.catOpts...), errors.NewIOError("open", s.dir, errNoCatalog)
	}

	cat, err := persistence.FromShelves(shelves, s.catOpts...)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("dir", s.dir).
		Int("genres", cat.Len()).
		Int("books", cat.BookCount()).
		Msg("Loaded catalog from badger")
	return cat, nil
}

// Save implements Store. All previous shelves are replaced in one
// transaction.
func (s *BadgerStore) Save(ctx context.Context, cat *catalogs.Catalog) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		var stale [][]byte
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		prefix := []byte(shelfKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}

		for pos, shelf := range cat.List() {
			data, err := json.Marshal(shelf)
			if err != nil {
				return fmt.Errorf("marshal shelf %q: %w", shelf.Genre, err)
			}
			if err := txn.Set(shelfKey(pos), data); err != nil {
				return fmt.Errorf("set shelf %q: %w", shelf.Genre, err)
			}
		}
		return nil
	})
	if err != nil {
		return errors.WrapResource("save", "catalog", s.dir, err)
	}

	logging.FromContext(ctx).Debug().
		Str("dir", s.dir).
		Int("books", cat.BookCount()).
		Msg("Saved catalog to badger")
	return nil
}

// Close implements Store.
func (s *BadgerStore) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.WrapIO("close", s.dir, err)
	}
	return nil
}
