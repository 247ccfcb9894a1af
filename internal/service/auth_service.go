package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"complaint-assistant-be/internal/dto"
	"complaint-assistant-be/internal/entity"
	"complaint-assistant-be/internal/pkg/logger"
	"complaint-assistant-be/internal/repository/contract"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionId string) error
}

type authService struct {
	sessionRepo contract.SessionRepository
	historyRepo contract.HistoryRepository
	jwtSecret   string
	log         logger.ILogger
}

func NewAuthService(sessionRepo contract.SessionRepository, historyRepo contract.HistoryRepository, jwtSecret string, log logger.ILogger) IAuthService {
	return &authService{
		sessionRepo: sessionRepo,
		historyRepo: historyRepo,
		jwtSecret:   jwtSecret,
		log:         log,
	}
}

var agentCodePattern = regexp.MustCompile(`^\d{4}$`)

func (s *authService) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)
	if name == "" || !agentCodePattern.MatchString(code) {
		return nil, ErrInvalidLogin
	}

	// The session id carries the agent name so history keys stay readable
	// in logs; the uuid keeps concurrent logins under the same name apart.
	session := &entity.AgentSession{
		Id:        name + "_" + uuid.NewString(),
		AgentName: name,
		AgentCode: code,
		State:     entity.StateIntake,
		CreatedAt: time.Now(),
	}
	s.sessionRepo.Save(session)

	claims := jwt.MapClaims{
		"session_id": session.Id,
		"agent_name": session.AgentName,
		"agent_code": session.AgentCode,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(12 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	s.log.Info("Auth", "Agent logged in", map[string]interface{}{
		"session_id": session.Id,
	})

	return &dto.LoginResponse{
		Token:     token,
		SessionId: session.Id,
		AgentName: session.AgentName,
	}, nil
}

func (s *authService) Logout(_ context.Context, sessionId string) error {
	if _, ok := s.sessionRepo.Get(sessionId); !ok {
		return ErrNotLoggedIn
	}

	for _, kind := range []string{contract.HistoryKindScript, contract.HistoryKindChat, contract.HistoryKindDraft} {
		s.historyRepo.Clear(contract.HistoryKey(sessionId, kind))
	}
	s.sessionRepo.Delete(sessionId)

	s.log.Info("Auth", "Agent logged out", map[string]interface{}{
		"session_id": sessionId,
	})
	return nil
}
