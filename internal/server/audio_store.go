package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// audioStore keeps synthesized WAV files addressable by id until they expire
// or are revoked.
type audioStore struct {
	items *cache.Cache
}

func newAudioStore(ttl time.Duration) *audioStore {
	// Expired entries are swept on each put instead of by a janitor goroutine.
	return &audioStore{items: cache.New(ttl, 0)}
}

func (s *audioStore) put(wav []byte) string {
	s.items.DeleteExpired()
	id := uuid.NewString()
	s.items.SetDefault(id, wav)
	return id
}

func (s *audioStore) get(id string) ([]byte, bool) {
	v, ok := s.items.Get(id)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// revoke reports whether id was present.
func (s *audioStore) revoke(id string) bool {
	if _, ok := s.items.Get(id); !ok {
		return false
	}
	s.items.Delete(id)
	return true
}

func (s *audioStore) len() int {
	return s.items.ItemCount()
}
