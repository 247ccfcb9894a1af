package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"complaint-assistant-be/internal/entity"
	"complaint-assistant-be/internal/repository/contract"
)

// SessionRepository keeps active agent sessions in memory. Sessions idle for
// twelve hours are purged; saved cases on disk are unaffected.
type SessionRepository struct {
	cache *cache.Cache
}

var _ contract.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository() *SessionRepository {
	c := cache.New(12*time.Hour, 1*time.Hour)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *entity.AgentSession) {
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionId string) (*entity.AgentSession, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*entity.AgentSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}
