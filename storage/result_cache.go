// Package storage provides the Badger-backed implementation of the
// sentiment result cache. Cache misses are always safe: any read or
// decode failure is reported as a miss, never as a different result.
package storage

import (
	"encoding/json"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"signal-lab/domain"
)

const keyPrefix = "sentiment:"

// ResultCache stores aggregate sentiment keyed by session content hash.
type ResultCache struct {
	db  *badger.DB
	log *slog.Logger
}

func NewResultCache(db *badger.DB, log *slog.Logger) *ResultCache {
	return &ResultCache{db: db, log: log}
}

// Open opens the cache database. An empty path selects the in-memory
// mode used by tests and the default CLI setup.
func Open(path string) (*badger.DB, error) {
	if path == "" {
		return badger.Open(badger.DefaultOptions("").
			WithInMemory(true).
			WithLoggingLevel(badger.ERROR))
	}
	return badger.Open(badger.DefaultOptions(path).
		WithLoggingLevel(badger.ERROR))
}

func (c *ResultCache) Get(key string) (domain.AggregateSentiment, bool) {
	var result domain.AggregateSentiment
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &result)
		})
	})
	if err != nil {
		if err != badger.ErrKeyNotFound {
			c.log.Debug("Cache read failed, treating as miss", "key", key, "err", err)
		}
		return domain.AggregateSentiment{}, false
	}
	return result, true
}

func (c *ResultCache) Set(key string, value domain.AggregateSentiment) {
	bytes, err := json.Marshal(value)
	if err != nil {
		c.log.Error("Cache encode failed", "key", key, "err", err)
		return
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), bytes)
	})
	if err != nil {
		c.log.Error("Cache write failed", "key", key, "err", err)
	}
}
