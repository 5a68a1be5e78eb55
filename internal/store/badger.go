package store

import (
	"encoding/json"
	"fmt"

	"samko/internal/model"

	"github.com/dgraph-io/badger/v4"
)

const postPrefix = "post:"

// BadgerJournal keeps a JSON copy of every post in Badger.
type BadgerJournal struct {
	db *badger.DB
}

// OpenBadgerJournal opens Badger at path. Pass path="" to keep everything in memory,
// which gives the same reset-on-restart behaviour as running without a journal.
func OpenBadgerJournal(path string) (*BadgerJournal, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Silence default logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return &BadgerJournal{db: db}, nil
}

func (j *BadgerJournal) Close() error {
	return j.db.Close()
}

// Load reads every stored post. Order is unspecified.
func (j *BadgerJournal) Load() ([]model.BlogPost, error) {
	var posts []model.BlogPost
	err := j.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(postPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var post model.BlogPost
				if err := json.Unmarshal(val, &post); err != nil {
					return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
				}
				posts = append(posts, post)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return posts, err
}

func (j *BadgerJournal) Put(post model.BlogPost) error {
	data, err := json.Marshal(post)
	if err != nil {
		return err
	}
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(postPrefix+post.ID), data)
	})
}

func (j *BadgerJournal) Remove(id string) error {
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(postPrefix + id))
	})
}
