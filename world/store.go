package world

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/boltdb/bolt"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

var (
	metaBucket   = []byte("meta")
	cameraBucket = []byte("camera")

	seedKey = []byte("seed")
)

// Store keeps session state between runs. Chunk data is never stored; it is
// regenerated from the seed.
type Store interface {
	UpdateViewer(p Position) error
	GetViewer() (Position, bool)
	UpdateSeed(seed int64) error
	GetSeed() (int64, bool)
	Close() error
}

type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(p string) (*BoltStore, error) {
	if p == "" {
		return nil, errors.New("empty db path")
	}
	db, err := bolt.Open(p, 0666, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", p)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(metaBucket)
		if err != nil {
			return err
		}
		_, err = tx.CreateBucketIfNotExists(cameraBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create buckets")
	}
	db.NoSync = true
	return &BoltStore{
		db: db,
	}, nil
}

func (s *BoltStore) UpdateViewer(p Position) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(cameraBucket)
		return bkt.Put(cameraBucket, encodePosition(p))
	})
}

func (s *BoltStore) GetViewer() (Position, bool) {
	var (
		p  Position
		ok bool
	)
	s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(cameraBucket).Get(cameraBucket)
		if value == nil {
			return nil
		}
		p, ok = decodePosition(value)
		return nil
	})
	return p, ok
}

func (s *BoltStore) UpdateSeed(seed int64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, uint64(seed))
		return tx.Bucket(metaBucket).Put(seedKey, buf)
	})
}

func (s *BoltStore) GetSeed() (int64, bool) {
	var (
		seed int64
		ok   bool
	)
	s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(metaBucket).Get(seedKey)
		if len(v) != 8 {
			return nil
		}
		seed, ok = int64(binary.LittleEndian.Uint64(v)), true
		return nil
	})
	return seed, ok
}

func (s *BoltStore) Close() error {
	s.db.Sync()
	return s.db.Close()
}

func encodePosition(p Position) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, [...]float32{p.X(), p.Y(), p.Z(), p.Rx, p.Ry})
	return buf.Bytes()
}

func decodePosition(b []byte) (Position, bool) {
	if len(b) != 4*5 {
		return Position{}, false
	}
	var arr [5]float32
	binary.Read(bytes.NewReader(b), binary.LittleEndian, &arr)
	for _, f := range arr {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return Position{}, false
		}
	}
	return Position{Vec3: mgl32.Vec3{arr[0], arr[1], arr[2]}, Rx: arr[3], Ry: arr[4]}, true
}
