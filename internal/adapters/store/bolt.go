package store

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"

	"dev.rubentxu.step7-service/internal/core/domain"
	"dev.rubentxu.step7-service/internal/core/ports"
)

var (
	callsBucket = []byte("calls")
	orderBucket = []byte("order")
)

// Bolt persiste los registros en un fichero bolt. El bucket "calls" indexa
// por ID y el bucket "order" guarda la secuencia de inserción.
type Bolt struct {
	db       *bolt.DB
	capacity int
	logger   ports.Logger
}

var _ ports.CallJournal = (*Bolt)(nil)

func NewBolt(path string, capacity int, logger ports.Logger) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{callsBucket, orderBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return errors.Wrapf(err, "create bucket %s", name)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bolt{db: db, capacity: capacity, logger: logger}, nil
}

func (b *Bolt) Notify(rec domain.CallRecord) { notify(b, b.logger, rec) }

func (b *Bolt) Append(rec domain.CallRecord) error {
	buf, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "unable to encode call record")
	}
	id := []byte(rec.ID.String())

	return b.db.Update(func(tx *bolt.Tx) error {
		calls, order := tx.Bucket(callsBucket), tx.Bucket(orderBucket)
		seq, err := order.NextSequence()
		if err != nil {
			return err
		}
		if err := order.Put(itob(seq), id); err != nil {
			return err
		}
		if err := calls.Put(id, buf); err != nil {
			return err
		}

		// Descarta los más antiguos por encima de la capacidad.
		var keys, ids [][]byte
		c := order.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
			ids = append(ids, append([]byte(nil), v...))
		}
		for i := 0; i < len(keys)-b.capacity; i++ {
			if err := calls.Delete(ids[i]); err != nil {
				return err
			}
			if err := order.Delete(keys[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *Bolt) Get(id string) (domain.CallRecord, error) {
	var rec domain.CallRecord
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(callsBucket).Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &rec)
	})
	return rec, err
}

func (b *Bolt) Recent(limit int) ([]domain.CallRecord, error) {
	out := []domain.CallRecord{}
	err := b.db.View(func(tx *bolt.Tx) error {
		calls := tx.Bucket(callsBucket)
		c := tx.Bucket(orderBucket).Cursor()
		for k, id := c.Last(); k != nil; k, id = c.Prev() {
			if limit > 0 && len(out) >= limit {
				break
			}
			v := calls.Get(id)
			if v == nil {
				continue
			}
			var rec domain.CallRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return errors.Wrapf(err, "unable to decode call record %s", id)
			}
			out = append(out, rec)
		}
		return nil
	})
	return out, err
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
