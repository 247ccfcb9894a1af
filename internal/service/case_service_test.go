package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"complaint-assistant-be/internal/dto"
	"complaint-assistant-be/internal/entity"
	"complaint-assistant-be/internal/repository/casefile"
	"complaint-assistant-be/internal/repository/contract"
	"complaint-assistant-be/internal/repository/memory"
	"complaint-assistant-be/pkg/llm"
)

type caseFixture struct {
	sessions contract.SessionRepository
	history  contract.HistoryRepository
	files    *casefile.Repository
	svc      ICaseService
	clock    time.Time
}

func newCaseFixture(t *testing.T) *caseFixture {
	t.Helper()
	f := &caseFixture{
		sessions: memory.NewSessionRepository(),
		history:  memory.NewHistoryRepository(),
		clock:    time.Date(2024, 5, 1, 10, 20, 30, 0, time.UTC),
	}
	f.files = casefile.NewRepository(t.TempDir(), casefile.WithClock(func() time.Time {
		f.clock = f.clock.Add(time.Second)
		return f.clock
	}))
	f.svc = NewCaseService(f.sessions, f.history, f.files, noopLogger{})
	return f
}

func (f *caseFixture) loginWithCase() *entity.AgentSession {
	session := &entity.AgentSession{
		Id:        "홍상담_test-session",
		AgentName: "홍상담",
		AgentCode: "1234",
		State:     entity.StateConversation,
		Customer: entity.CustomerInfo{
			Name:         "김철수",
			Situation:    "보험금 지급 지연",
			EmotionLevel: 4,
			EmotionLabel: "😠 화남",
		},
		ScriptContext: "상담 스크립트",
		Turns: []entity.ChatTurn{
			{Role: entity.RoleAssistant, Content: "상담 스크립트"},
			{Role: entity.RoleUser, Content: "더 공손하게 바꿔 주세요."},
		},
		CreatedAt: time.Now(),
	}
	f.sessions.Save(session)
	return session
}

func TestCurrentReturnsSessionSnapshot(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()

	res, err := f.svc.Current(context.Background(), session.Id)
	require.NoError(t, err)
	require.Equal(t, string(entity.StateConversation), res.State)
	require.Equal(t, "김철수", res.Customer.Name)
	require.Len(t, res.Turns, 2)
}

func TestCurrentRequiresLogin(t *testing.T) {
	f := newCaseFixture(t)

	_, err := f.svc.Current(context.Background(), "없는세션")
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestNewCaseResetsToIntake(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()
	session.DraftText = "초안"
	session.ChecklistOpen = true
	f.sessions.Save(session)

	chatKey := contract.HistoryKey(session.Id, contract.HistoryKindChat)
	f.history.Append(chatKey, llm.Message{Role: llm.RoleUser, Content: "대화"})

	res, err := f.svc.NewCase(context.Background(), session.Id)
	require.NoError(t, err)

	require.Equal(t, string(entity.StateIntake), res.State)
	require.False(t, res.ChecklistOpen)
	require.Empty(t, res.Turns)
	require.Empty(t, res.ScriptContext)
	require.Empty(t, res.DraftText)
	require.Empty(t, f.history.Get(chatKey))
}

func TestSaveWritesFileAndTracksIt(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()
	ctx := context.Background()

	res, err := f.svc.Save(ctx, session.Id)
	require.NoError(t, err)
	require.NotEmpty(t, res.File)
	require.Contains(t, res.File, "김철수_")

	updated, _ := f.sessions.Get(session.Id)
	require.Equal(t, res.File, updated.CurrentFile)

	loaded, err := f.files.Load(ctx, session.Folder(), res.File)
	require.NoError(t, err)
	require.Equal(t, "김철수", loaded.CustomerName)
	require.Equal(t, "상담 스크립트", loaded.ScriptContext)
	require.Len(t, loaded.MessageList, 2)
}

func TestSaveTwiceReplacesFile(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()
	ctx := context.Background()

	first, err := f.svc.Save(ctx, session.Id)
	require.NoError(t, err)
	second, err := f.svc.Save(ctx, session.Id)
	require.NoError(t, err)
	require.NotEqual(t, first.File, second.File)

	files, err := f.files.List(ctx, session.Folder())
	require.NoError(t, err)
	require.Equal(t, []string{second.File}, files)
}

func TestSaveRequiresTurns(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()
	session.Turns = nil
	f.sessions.Save(session)

	_, err := f.svc.Save(context.Background(), session.Id)
	require.ErrorIs(t, err, ErrNoTurns)
}

func TestSaveRequiresConversationState(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()
	session.State = entity.StateIntake
	f.sessions.Save(session)

	_, err := f.svc.Save(context.Background(), session.Id)
	require.ErrorIs(t, err, ErrWrongState)
}

func TestListFiltersByCustomerName(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()
	ctx := context.Background()

	_, err := f.svc.Save(ctx, session.Id)
	require.NoError(t, err)

	session.Customer.Name = "이영희"
	session.CurrentFile = ""
	f.sessions.Save(session)
	_, err = f.svc.Save(ctx, session.Id)
	require.NoError(t, err)

	all, err := f.svc.List(ctx, session.Id, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := f.svc.List(ctx, session.Id, "김철수")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "김철수", filtered[0].CustomerName)

	none, err := f.svc.List(ctx, session.Id, "박진호")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestLoadRestoresCase(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()
	ctx := context.Background()

	saved, err := f.svc.Save(ctx, session.Id)
	require.NoError(t, err)

	// Start over, then resume the saved case.
	_, err = f.svc.NewCase(ctx, session.Id)
	require.NoError(t, err)

	res, err := f.svc.Load(ctx, session.Id, &dto.LoadCaseRequest{File: saved.File})
	require.NoError(t, err)

	require.Equal(t, string(entity.StateConversation), res.State)
	require.Equal(t, "김철수", res.Customer.Name)
	require.Equal(t, 4, res.Customer.EmotionLevel)
	require.Equal(t, "상담 스크립트", res.ScriptContext)
	require.Len(t, res.Turns, 2)
	require.Equal(t, saved.File, res.CurrentFile)

	// The chat history is rebuilt from the saved turns so follow-ups have
	// full context.
	chat := f.history.Get(contract.HistoryKey(session.Id, contract.HistoryKindChat))
	require.Len(t, chat, 2)
	require.Equal(t, llm.RoleAssistant, chat[0].Role)
	require.Equal(t, llm.RoleUser, chat[1].Role)
}

func TestLoadMissingFile(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()

	_, err := f.svc.Load(context.Background(), session.Id, &dto.LoadCaseRequest{File: "없는파일.json"})
	require.ErrorIs(t, err, contract.ErrCaseFileNotFound)
}

func TestDeleteDetachesCurrentFile(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()
	ctx := context.Background()

	saved, err := f.svc.Save(ctx, session.Id)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, session.Id, saved.File))

	updated, _ := f.sessions.Get(session.Id)
	require.Empty(t, updated.CurrentFile)

	err = f.svc.Delete(ctx, session.Id, saved.File)
	require.ErrorIs(t, err, contract.ErrCaseFileNotFound)
}

func TestDeleteRejectsPathEscape(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()
	ctx := context.Background()

	saved, err := f.svc.Save(ctx, session.Id)
	require.NoError(t, err)

	err = f.svc.Delete(ctx, session.Id, "../"+session.Folder()+"/"+saved.File)
	require.ErrorIs(t, err, contract.ErrInvalidFileName)

	// The crafted name must not have detached or removed anything.
	updated, _ := f.sessions.Get(session.Id)
	require.Equal(t, saved.File, updated.CurrentFile)
	_, err = f.files.Load(ctx, session.Folder(), saved.File)
	require.NoError(t, err)
}

func TestToggleChecklist(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()
	ctx := context.Background()

	res, err := f.svc.ToggleChecklist(ctx, session.Id, true)
	require.NoError(t, err)
	require.True(t, res.ChecklistOpen)

	res, err = f.svc.ToggleChecklist(ctx, session.Id, false)
	require.NoError(t, err)
	require.False(t, res.ChecklistOpen)
}

func TestToggleChecklistRequiresConversationState(t *testing.T) {
	f := newCaseFixture(t)
	session := f.loginWithCase()
	session.State = entity.StateIntake
	f.sessions.Save(session)

	_, err := f.svc.ToggleChecklist(context.Background(), session.Id, true)
	require.ErrorIs(t, err, ErrWrongState)
}
