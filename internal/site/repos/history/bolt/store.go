package bolt

import (
	"bytes"
	"context"
	"encoding/binary"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/haukened/sitewatch/internal/site/domain"
	"github.com/haukened/sitewatch/internal/site/repos/history"
)

var bucketVisits = []byte("visits")

// keys are an 8-byte big-endian unix-nano timestamp followed by the URL,
// so a cursor walks visits in time order.
const tsLen = 8

// boltStore implements history.Store using bbolt.
type boltStore struct {
	db *bbolt.DB
}

// New opens (or creates) a Bolt database at path and ensures buckets exist.
func New(path string) (history.Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketVisits)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Close() error { return s.db.Close() }

func (s *boltStore) Record(item domain.HistoryItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketVisits).Put(visitKey(item.VisitTime, item.URL), []byte{1})
	})
}

func (s *boltStore) Search(ctx context.Context, start, end time.Time) ([]domain.HistoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []domain.HistoryItem
	if end.Before(start) {
		return out, nil
	}
	last := timeKey(end)
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketVisits).Cursor()
		for k, _ := c.Seek(timeKey(start)); k != nil && bytes.Compare(k[:tsLen], last) <= 0; k, _ = c.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			out = append(out, decodeKey(k))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *boltStore) Prune(before time.Time) (int, error) {
	limit := timeKey(before)
	removed := 0
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketVisits)
		var stale [][]byte
		c := b.Cursor()
		for k, _ := c.First(); k != nil && bytes.Compare(k[:tsLen], limit) < 0; k, _ = c.Next() {
			kk := make([]byte, len(k))
			copy(kk, k)
			stale = append(stale, kk)
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	return removed, err
}

func (s *boltStore) Stats() history.StoreStats {
	st := history.StoreStats{}
	_ = s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketVisits)
		st.Visits = uint64(b.Stats().KeyN)
		c := b.Cursor()
		if k, _ := c.First(); k != nil {
			st.OldestUnix = decodeKey(k).VisitTime.Unix()
		}
		if k, _ := c.Last(); k != nil {
			st.NewestUnix = decodeKey(k).VisitTime.Unix()
		}
		return nil
	})
	return st
}

func timeKey(t time.Time) []byte {
	buf := make([]byte, tsLen)
	binary.BigEndian.PutUint64(buf, uint64(t.UnixNano()))
	return buf
}

func visitKey(t time.Time, url string) []byte {
	return append(timeKey(t), url...)
}

func decodeKey(k []byte) domain.HistoryItem {
	ns := int64(binary.BigEndian.Uint64(k[:tsLen]))
	return domain.HistoryItem{URL: string(k[tsLen:]), VisitTime: time.Unix(0, ns)}
}
