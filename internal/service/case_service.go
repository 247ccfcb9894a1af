package service

import (
	"context"
	"fmt"
	"strings"

	"complaint-assistant-be/internal/constant"
	"complaint-assistant-be/internal/dto"
	"complaint-assistant-be/internal/entity"
	"complaint-assistant-be/internal/pkg/logger"
	"complaint-assistant-be/internal/repository/casefile"
	"complaint-assistant-be/internal/repository/contract"
	"complaint-assistant-be/pkg/llm"
)

type ICaseService interface {
	Current(ctx context.Context, sessionId string) (*dto.CaseStateResponse, error)
	NewCase(ctx context.Context, sessionId string) (*dto.CaseStateResponse, error)
	Save(ctx context.Context, sessionId string) (*dto.SaveCaseResponse, error)
	List(ctx context.Context, sessionId, customerFilter string) ([]dto.SavedCaseSummary, error)
	Load(ctx context.Context, sessionId string, req *dto.LoadCaseRequest) (*dto.CaseStateResponse, error)
	Delete(ctx context.Context, sessionId, file string) error
	ToggleChecklist(ctx context.Context, sessionId string, open bool) (*dto.CaseStateResponse, error)
}

type caseService struct {
	sessionRepo  contract.SessionRepository
	historyRepo  contract.HistoryRepository
	caseFileRepo contract.CaseFileRepository
	log          logger.ILogger
}

func NewCaseService(sessionRepo contract.SessionRepository, historyRepo contract.HistoryRepository, caseFileRepo contract.CaseFileRepository, log logger.ILogger) ICaseService {
	return &caseService{
		sessionRepo:  sessionRepo,
		historyRepo:  historyRepo,
		caseFileRepo: caseFileRepo,
		log:          log,
	}
}

func (s *caseService) Current(_ context.Context, sessionId string) (*dto.CaseStateResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrNotLoggedIn
	}
	return caseStateResponse(session), nil
}

// NewCase drops the current case and returns the session to the intake page.
// Saved files are untouched.
func (s *caseService) NewCase(_ context.Context, sessionId string) (*dto.CaseStateResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrNotLoggedIn
	}

	session.ResetCase()
	for _, kind := range []string{contract.HistoryKindScript, contract.HistoryKindChat, contract.HistoryKindDraft} {
		s.historyRepo.Clear(contract.HistoryKey(sessionId, kind))
	}
	s.sessionRepo.Save(session)

	return caseStateResponse(session), nil
}

// Save writes the current case to disk. Re-saving the same case writes a
// fresh timestamped file and removes the previous one.
func (s *caseService) Save(ctx context.Context, sessionId string) (*dto.SaveCaseResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrNotLoggedIn
	}
	if session.State != entity.StateConversation {
		return nil, ErrWrongState
	}
	if len(session.Turns) == 0 {
		return nil, ErrNoTurns
	}

	saved := &entity.SavedCase{
		CustomerName:         session.Customer.Name,
		CustomerEmotionLabel: session.Customer.EmotionLabel,
		CustomerSituation:    session.Customer.Situation,
		ExtraInfo:            session.Customer.ExtraInfo,
		ScriptContext:        session.ScriptContext,
		MessageList:          session.Turns,
	}

	file, err := s.caseFileRepo.Save(ctx, session.Folder(), session.CurrentFile, saved)
	if err != nil {
		return nil, fmt.Errorf("save case: %w", err)
	}

	session.CurrentFile = file
	s.sessionRepo.Save(session)

	s.log.Info("Case", "Case saved", map[string]interface{}{
		"session_id": sessionId,
		"file":       file,
	})
	return &dto.SaveCaseResponse{File: file}, nil
}

// List returns the agent's saved cases, newest first, optionally filtered by
// customer name (case-insensitive substring).
func (s *caseService) List(ctx context.Context, sessionId, customerFilter string) ([]dto.SavedCaseSummary, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrNotLoggedIn
	}

	files, err := s.caseFileRepo.List(ctx, session.Folder())
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}

	filter := strings.ToLower(strings.TrimSpace(customerFilter))
	summaries := make([]dto.SavedCaseSummary, 0, len(files))
	for _, file := range files {
		name := casefile.CustomerNameFromFile(file)
		if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
			continue
		}
		summaries = append(summaries, dto.SavedCaseSummary{File: file, CustomerName: name})
	}
	return summaries, nil
}

// Load replaces the in-memory case with a saved one and resumes it on the
// conversation page. The chat history is rebuilt from the saved turns; script
// and draft chains start fresh.
func (s *caseService) Load(ctx context.Context, sessionId string, req *dto.LoadCaseRequest) (*dto.CaseStateResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrNotLoggedIn
	}

	saved, err := s.caseFileRepo.Load(ctx, session.Folder(), req.File)
	if err != nil {
		return nil, err
	}

	level := constant.EmotionLevelFromDisplayLabel(saved.CustomerEmotionLabel)
	session.Customer = entity.CustomerInfo{
		Name:         saved.CustomerName,
		Situation:    saved.CustomerSituation,
		EmotionLevel: level,
		EmotionLabel: saved.CustomerEmotionLabel,
		ExtraInfo:    saved.ExtraInfo,
	}
	session.ScriptContext = saved.ScriptContext
	session.Turns = saved.MessageList
	session.CurrentFile = req.File
	session.State = entity.StateConversation
	session.ChecklistOpen = false
	s.sessionRepo.Save(session)

	chat := make([]llm.Message, 0, len(saved.MessageList))
	for _, t := range saved.MessageList {
		role := llm.RoleUser
		if t.Role == entity.RoleAssistant {
			role = llm.RoleAssistant
		}
		chat = append(chat, llm.Message{Role: role, Content: t.Content})
	}
	s.historyRepo.Replace(contract.HistoryKey(sessionId, contract.HistoryKindChat), chat)
	s.historyRepo.Clear(contract.HistoryKey(sessionId, contract.HistoryKindScript))
	s.historyRepo.Clear(contract.HistoryKey(sessionId, contract.HistoryKindDraft))

	return caseStateResponse(session), nil
}

// Delete removes a saved case file. Deleting the file backing the current
// case detaches it: the next save writes a new file.
func (s *caseService) Delete(ctx context.Context, sessionId, file string) error {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return ErrNotLoggedIn
	}

	if err := s.caseFileRepo.Delete(ctx, session.Folder(), file); err != nil {
		return err
	}

	if session.CurrentFile == file {
		session.CurrentFile = ""
		s.sessionRepo.Save(session)
	}
	return nil
}

func (s *caseService) ToggleChecklist(_ context.Context, sessionId string, open bool) (*dto.CaseStateResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrNotLoggedIn
	}
	if session.State != entity.StateConversation {
		return nil, ErrWrongState
	}

	session.ChecklistOpen = open
	s.sessionRepo.Save(session)
	return caseStateResponse(session), nil
}
