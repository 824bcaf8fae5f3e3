package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/studyplan/internal/encoding"
	"github.com/inovacc/studyplan/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketState   = "state"   // key: "current" -> State JSON
	boltBucketHistory = "history" // key: big-endian sequence -> State JSON

	boltKeyCurrent = "current"
)

type Bolt struct {
	storage *bbolt.DB
}

// NewBolt opens (or creates) a Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	instance, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketState)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketHistory)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(boltBucketState)) == nil {
			return errors.New("state bucket missing")
		}

		return nil
	})
}

func (b *Bolt) LoadState() (*model.State, error) {
	st := &model.State{}

	err := b.storage.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketState)).Get([]byte(boltKeyCurrent))
		if v == nil {
			return nil
		}

		return json.Unmarshal(v, st)
	})
	if err != nil {
		return nil, err
	}

	return st, nil
}

func (b *Bolt) SaveState(st *model.State) error {
	if st == nil {
		return errors.New("state is required")
	}

	st.Revision = uuid.New().String()
	st.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(st)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(boltBucketState)).Put([]byte(boltKeyCurrent), data); err != nil {
			return err
		}

		history := tx.Bucket([]byte(boltBucketHistory))

		seq, err := history.NextSequence()
		if err != nil {
			return err
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		return history.Put(key, data)
	})
}

func (b *Bolt) ClearState() error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketState)).Delete([]byte(boltKeyCurrent))
	})
}

func (b *Bolt) History(limit int) ([]model.State, error) {
	var out []model.State

	err := b.storage.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(boltBucketHistory)).Cursor()

		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) >= limit {
				break
			}

			var st model.State
			if err := json.Unmarshal(v, &st); err != nil {
				return err
			}

			out = append(out, st)
		}

		return nil
	})

	return out, err
}
