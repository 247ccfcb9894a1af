package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"complaint-assistant-be/internal/constant"
	"complaint-assistant-be/internal/dto"
	"complaint-assistant-be/internal/entity"
	"complaint-assistant-be/internal/pkg/logger"
	"complaint-assistant-be/internal/prompt"
	"complaint-assistant-be/internal/repository/contract"
	"complaint-assistant-be/pkg/llm"
)

type IChatService interface {
	Intake(ctx context.Context, sessionId string, req *dto.IntakeRequest) (*dto.CaseStateResponse, error)
	Ask(ctx context.Context, sessionId string, req *dto.AskRequest) (*dto.AskResponse, error)
	Draft(ctx context.Context, sessionId string) (*dto.DraftResponse, error)
	RandomCustomer(ctx context.Context) (*dto.RandomCustomerResponse, error)
}

type chatService struct {
	sessionRepo contract.SessionRepository
	historyRepo contract.HistoryRepository
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewChatService(sessionRepo contract.SessionRepository, historyRepo contract.HistoryRepository, llmProvider llm.LLMProvider, log logger.ILogger) IChatService {
	return &chatService{
		sessionRepo: sessionRepo,
		historyRepo: historyRepo,
		llmProvider: llmProvider,
		log:         log,
	}
}

// Intake records the customer info, generates the initial phone script, and
// moves the session to the conversation page. A provider failure still
// completes the transition: the fallback text stands in for the script.
func (s *chatService) Intake(ctx context.Context, sessionId string, req *dto.IntakeRequest) (*dto.CaseStateResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrNotLoggedIn
	}
	if session.State != entity.StateIntake {
		return nil, ErrWrongState
	}

	// Validate and assemble before touching any session state, so a bad
	// field leaves everything as it was.
	fields := prompt.ScriptFields{
		AgentName:    session.AgentName,
		CustomerName: req.CustomerName,
		Situation:    req.Situation,
		EmotionLevel: req.EmotionLevel,
	}
	scriptKey := contract.HistoryKey(sessionId, contract.HistoryKindScript)
	messages, err := prompt.BuildScriptMessages(fields, s.historyRepo.Get(scriptKey))
	if err != nil {
		return nil, err
	}

	// A fresh intake starts a fresh case.
	for _, kind := range []string{contract.HistoryKindScript, contract.HistoryKindChat, contract.HistoryKindDraft} {
		s.historyRepo.Clear(contract.HistoryKey(sessionId, kind))
	}
	session.CurrentFile = ""
	session.DraftText = ""

	humanTurn := prompt.ComplaintInfo(fields)
	s.historyRepo.Append(scriptKey, llm.Message{Role: llm.RoleUser, Content: humanTurn})

	script, err := s.llmProvider.Chat(ctx, messages)
	if err != nil {
		s.log.Error("Chat", "Script generation failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		script = constant.CompletionFallbackMessage
	} else {
		s.historyRepo.Append(scriptKey, llm.Message{Role: llm.RoleAssistant, Content: script})
	}

	session.Customer = entity.CustomerInfo{
		Name:         req.CustomerName,
		Situation:    req.Situation,
		EmotionLevel: req.EmotionLevel,
		EmotionLabel: constant.EmotionDisplayLabel(req.EmotionLevel),
		ExtraInfo:    req.ExtraInfo,
	}
	session.ScriptContext = script
	session.Turns = []entity.ChatTurn{{Role: entity.RoleAssistant, Content: script}}
	session.State = entity.StateConversation
	s.sessionRepo.Save(session)

	return caseStateResponse(session), nil
}

// Ask answers a follow-up question grounded in the generated script. The
// framed question goes into the chat history; the page shows the bare
// question alongside the reply (or the fallback text on failure).
func (s *chatService) Ask(ctx context.Context, sessionId string, req *dto.AskRequest) (*dto.AskResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrNotLoggedIn
	}
	if session.State != entity.StateConversation {
		return nil, ErrWrongState
	}

	chatKey := contract.HistoryKey(sessionId, contract.HistoryKindChat)
	messages, err := prompt.BuildFollowUpMessages(req.Question, session.ScriptContext, s.historyRepo.Get(chatKey))
	if err != nil {
		return nil, err
	}

	framed := fmt.Sprintf(constant.FollowUpInputTemplate, session.ScriptContext, req.Question)
	s.historyRepo.Append(chatKey, llm.Message{Role: llm.RoleUser, Content: framed})

	reply, err := s.llmProvider.Chat(ctx, messages)
	if err != nil {
		s.log.Error("Chat", "Follow-up completion failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		reply = constant.CompletionFallbackMessage
	} else {
		s.historyRepo.Append(chatKey, llm.Message{Role: llm.RoleAssistant, Content: reply})
	}

	session.Turns = append(session.Turns,
		entity.ChatTurn{Role: entity.RoleUser, Content: req.Question},
		entity.ChatTurn{Role: entity.RoleAssistant, Content: reply},
	)
	s.sessionRepo.Save(session)

	return &dto.AskResponse{
		Sent:  dto.TurnDTO{Role: entity.RoleUser.String(), Content: req.Question},
		Reply: dto.TurnDTO{Role: entity.RoleAssistant.String(), Content: reply},
	}, nil
}

// Draft generates the outbound KakaoTalk message from the script and the
// conversation so far. Regenerating replaces the previous draft.
func (s *chatService) Draft(ctx context.Context, sessionId string) (*dto.DraftResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrNotLoggedIn
	}
	if session.State != entity.StateConversation {
		return nil, ErrWrongState
	}
	if strings.TrimSpace(session.ScriptContext) == "" {
		return nil, ErrNoScript
	}

	draftKey := contract.HistoryKey(sessionId, contract.HistoryKindDraft)
	messages, err := prompt.BuildDraftMessages(session.ScriptContext, session.Turns, s.historyRepo.Get(draftKey))
	if err != nil {
		return nil, err
	}

	s.historyRepo.Append(draftKey, llm.Message{Role: llm.RoleUser, Content: constant.OutboundDraftUserMessage})

	draft, err := s.llmProvider.Chat(ctx, messages)
	if err != nil {
		s.log.Error("Chat", "Draft generation failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		draft = constant.CompletionFallbackMessage
	} else {
		s.historyRepo.Append(draftKey, llm.Message{Role: llm.RoleAssistant, Content: draft})
	}

	session.DraftText = draft
	s.sessionRepo.Save(session)

	return &dto.DraftResponse{DraftText: draft}, nil
}

// RandomCustomer asks the model for a synthetic practice customer. Unlike
// the chat flows there is no fallback text to show, so a failure surfaces
// as an error.
func (s *chatService) RandomCustomer(ctx context.Context) (*dto.RandomCustomerResponse, error) {
	raw, err := s.llmProvider.Chat(ctx, prompt.BuildRandomCustomerMessages(), llm.WithTemperature(1.0))
	if err != nil {
		s.log.Error("Chat", "Random customer generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, ErrProviderUnavailable
	}

	var generated struct {
		Name      string `json:"name"`
		Situation string `json:"situation"`
		Emotion   int    `json:"emotion"`
		ExtraInfo string `json:"extra_info"`
	}
	if err := json.Unmarshal([]byte(extractJSONObject(raw)), &generated); err != nil {
		s.log.Warn("Chat", "Random customer response was not valid JSON", map[string]interface{}{
			"raw": raw,
		})
		return nil, ErrProviderUnavailable
	}

	level := generated.Emotion
	if level < constant.EmotionLevelMin {
		level = constant.EmotionLevelMin
	}
	if level > constant.EmotionLevelMax {
		level = constant.EmotionLevelMax
	}
	return &dto.RandomCustomerResponse{
		Name:         generated.Name,
		Situation:    generated.Situation,
		EmotionLevel: level,
		ExtraInfo:    generated.ExtraInfo,
	}, nil
}

// extractJSONObject trims code fences and surrounding prose, leaving the
// outermost object. Models wrap JSON in markdown often enough to care.
func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return raw
	}
	return raw[start : end+1]
}

func caseStateResponse(session *entity.AgentSession) *dto.CaseStateResponse {
	turns := make([]dto.TurnDTO, 0, len(session.Turns))
	for _, t := range session.Turns {
		turns = append(turns, dto.TurnDTO{Role: t.Role.String(), Content: t.Content})
	}
	return &dto.CaseStateResponse{
		State:         string(session.State),
		ChecklistOpen: session.ChecklistOpen,
		Customer: dto.CustomerInfoDTO{
			Name:         session.Customer.Name,
			Situation:    session.Customer.Situation,
			EmotionLevel: session.Customer.EmotionLevel,
			EmotionLabel: session.Customer.EmotionLabel,
			ExtraInfo:    session.Customer.ExtraInfo,
		},
		ScriptContext: session.ScriptContext,
		Turns:         turns,
		CurrentFile:   session.CurrentFile,
		DraftText:     session.DraftText,
	}
}
