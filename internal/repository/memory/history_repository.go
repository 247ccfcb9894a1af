package memory

import (
	"github.com/patrickmn/go-cache"

	"complaint-assistant-be/internal/repository/contract"
	"complaint-assistant-be/pkg/llm"
)

// HistoryRepository keeps conversation histories in process memory. Entries
// never expire; they are dropped only by Clear or a process restart.
type HistoryRepository struct {
	cache *cache.Cache
}

var _ contract.HistoryRepository = (*HistoryRepository)(nil)

func NewHistoryRepository() *HistoryRepository {
	// No default expiration, no janitor. History lives for the process.
	return &HistoryRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *HistoryRepository) Get(key string) []llm.Message {
	if x, found := r.cache.Get(key); found {
		stored := x.([]llm.Message)
		msgs := make([]llm.Message, len(stored))
		copy(msgs, stored)
		return msgs
	}
	return nil
}

func (r *HistoryRepository) Append(key string, msg llm.Message) {
	existing := r.Get(key)
	// Copy so earlier Get results stay stable.
	msgs := make([]llm.Message, 0, len(existing)+1)
	msgs = append(msgs, existing...)
	msgs = append(msgs, msg)
	r.cache.Set(key, msgs, cache.NoExpiration)
}

func (r *HistoryRepository) Replace(key string, msgs []llm.Message) {
	copied := make([]llm.Message, len(msgs))
	copy(copied, msgs)
	r.cache.Set(key, copied, cache.NoExpiration)
}

func (r *HistoryRepository) Clear(key string) {
	r.cache.Delete(key)
}
