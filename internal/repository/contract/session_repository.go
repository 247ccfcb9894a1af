package contract

import (
	"complaint-assistant-be/internal/entity"
)

// SessionRepository holds the active agent sessions in memory. A missing
// session is the logged-out state.
type SessionRepository interface {
	Save(session *entity.AgentSession)
	Get(sessionId string) (*entity.AgentSession, bool)
	Delete(sessionId string)
}
