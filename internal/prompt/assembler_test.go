package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"complaint-assistant-be/internal/constant"
	"complaint-assistant-be/internal/entity"
	"complaint-assistant-be/pkg/llm"
)

func scriptFields() ScriptFields {
	return ScriptFields{
		AgentName:    "홍상담",
		CustomerName: "김철수",
		Situation:    "보험금 지급 지연",
		EmotionLevel: 4,
	}
}

func TestComplaintInfo(t *testing.T) {
	info := ComplaintInfo(scriptFields())
	require.Equal(t, "- 민원인 이름: 김철수\n- 민원 내용: 보험금 지급 지연\n- 고객 감정 상태: 4 (화남)", info)
}

func TestBuildScriptMessages(t *testing.T) {
	msgs, err := BuildScriptMessages(scriptFields(), nil)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	require.Equal(t, llm.RoleSystem, msgs[0].Role)
	require.Contains(t, msgs[0].Content, "홍상담")
	require.NotContains(t, msgs[0].Content, "{{AGENT_NAME}}")

	require.Equal(t, llm.RoleUser, msgs[1].Role)
	require.Contains(t, msgs[1].Content, "김철수")
	require.Contains(t, msgs[1].Content, "4 (화남)")
}

func TestBuildScriptMessagesKeepsHistoryOrder(t *testing.T) {
	history := []llm.Message{
		{Role: llm.RoleUser, Content: "이전 요청"},
		{Role: llm.RoleAssistant, Content: "이전 스크립트"},
	}
	msgs, err := BuildScriptMessages(scriptFields(), history)
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	require.Equal(t, "이전 요청", msgs[1].Content)
	require.Equal(t, "이전 스크립트", msgs[2].Content)
	require.Equal(t, llm.RoleUser, msgs[3].Role)
}

func TestBuildScriptMessagesValidation(t *testing.T) {
	cases := map[string]func(*ScriptFields){
		"empty agent":      func(f *ScriptFields) { f.AgentName = "" },
		"blank customer":   func(f *ScriptFields) { f.CustomerName = "   " },
		"empty situation":  func(f *ScriptFields) { f.Situation = "" },
		"emotion too low":  func(f *ScriptFields) { f.EmotionLevel = 0 },
		"emotion too high": func(f *ScriptFields) { f.EmotionLevel = 6 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := scriptFields()
			mutate(&f)
			_, err := BuildScriptMessages(f, nil)
			require.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestBuildFollowUpMessages(t *testing.T) {
	msgs, err := BuildFollowUpMessages("더 공손하게 바꿔 주세요.", "기존 스크립트", nil)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, constant.SystemPromptFollowUp, msgs[0].Content)
	require.Contains(t, msgs[1].Content, "기존 스크립트")
	require.Contains(t, msgs[1].Content, "더 공손하게 바꿔 주세요.")
}

func TestBuildFollowUpMessagesAllowsEmptyScript(t *testing.T) {
	_, err := BuildFollowUpMessages("질문", "", nil)
	require.NoError(t, err)
}

func TestBuildFollowUpMessagesRequiresQuestion(t *testing.T) {
	_, err := BuildFollowUpMessages("  ", "스크립트", nil)
	require.ErrorIs(t, err, ErrMissingField)
}

func TestBuildDraftMessages(t *testing.T) {
	turns := []entity.ChatTurn{
		{Role: entity.RoleUser, Content: "보장 내용을 강조해 주세요."},
	}
	msgs, err := BuildDraftMessages("상담 스크립트", turns, nil)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Contains(t, msgs[0].Content, "상담 스크립트")
	require.Contains(t, msgs[0].Content, "- 상담원 요청: 보장 내용을 강조해 주세요.")
	require.Equal(t, constant.OutboundDraftUserMessage, msgs[1].Content)
}

func TestBuildDraftMessagesRequiresScript(t *testing.T) {
	_, err := BuildDraftMessages("", nil, nil)
	require.ErrorIs(t, err, ErrMissingField)
}

func TestSummarizeConversation(t *testing.T) {
	turns := []entity.ChatTurn{
		{Role: entity.RoleUser, Content: "좀 더 부드럽게 해 주세요."},
		{Role: entity.RoleAssistant, Content: "👉 상담 멘트 예시\n> 고객님, 불편을 드려 죄송합니다.\n> 바로 확인해 드리겠습니다.\n추가 설명입니다."},
		{Role: entity.RoleAssistant, Content: "마커가 없는 일반 답변입니다."},
	}

	summary := SummarizeConversation(turns)
	lines := strings.Split(summary, "\n")
	require.Equal(t, []string{
		"- 상담원 요청: 좀 더 부드럽게 해 주세요.",
		"- 제안 멘트: 고객님, 불편을 드려 죄송합니다.",
		"- 제안 멘트: 바로 확인해 드리겠습니다.",
	}, lines)
}

func TestSummarizeConversationEmpty(t *testing.T) {
	require.Equal(t, "", SummarizeConversation(nil))
}

func TestBuildRandomCustomerMessages(t *testing.T) {
	msgs := BuildRandomCustomerMessages()
	require.Len(t, msgs, 1)
	require.Equal(t, llm.RoleUser, msgs[0].Role)
	require.Equal(t, constant.RandomCustomerPrompt, msgs[0].Content)
}
