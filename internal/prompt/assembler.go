// Package prompt builds the ordered message sequences sent to the LLM
// provider: one fixed system template, the prior history in order, and the
// new human turn. Required fields are checked here so an incomplete request
// never reaches the provider.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"complaint-assistant-be/internal/constant"
	"complaint-assistant-be/internal/entity"
	"complaint-assistant-be/pkg/llm"
)

// ErrMissingField reports an empty required assembly field.
var ErrMissingField = errors.New("missing required prompt field")

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return nil
}

// ScriptFields are the inputs for the script-request assembly.
type ScriptFields struct {
	AgentName    string
	CustomerName string
	Situation    string
	EmotionLevel int
}

// ComplaintInfo renders the human turn of the script request.
func ComplaintInfo(f ScriptFields) string {
	return fmt.Sprintf("- 민원인 이름: %s\n- 민원 내용: %s\n- 고객 감정 상태: %s",
		f.CustomerName, f.Situation, constant.EmotionDesc(f.EmotionLevel))
}

// BuildScriptMessages assembles the script request. The system template is
// bound to the agent's name so the generated script introduces exactly that
// name.
func BuildScriptMessages(f ScriptFields, history []llm.Message) ([]llm.Message, error) {
	if err := requireField("agent name", f.AgentName); err != nil {
		return nil, err
	}
	if err := requireField("customer name", f.CustomerName); err != nil {
		return nil, err
	}
	if err := requireField("situation", f.Situation); err != nil {
		return nil, err
	}
	if f.EmotionLevel < constant.EmotionLevelMin || f.EmotionLevel > constant.EmotionLevelMax {
		return nil, fmt.Errorf("%w: emotion level %d out of range", ErrMissingField, f.EmotionLevel)
	}

	system := strings.ReplaceAll(constant.SystemPromptScript, "{{AGENT_NAME}}", f.AgentName)
	return assemble(system, history, ComplaintInfo(f)), nil
}

// BuildFollowUpMessages assembles a follow-up question grounded in the
// current script. The script context may be empty; the question may not.
func BuildFollowUpMessages(question, scriptContext string, history []llm.Message) ([]llm.Message, error) {
	if err := requireField("question", question); err != nil {
		return nil, err
	}
	human := fmt.Sprintf(constant.FollowUpInputTemplate, scriptContext, question)
	return assemble(constant.SystemPromptFollowUp, history, human), nil
}

// BuildDraftMessages assembles the outbound-message-draft request from the
// script and a derived summary of the follow-up conversation.
func BuildDraftMessages(scriptContext string, turns []entity.ChatTurn, history []llm.Message) ([]llm.Message, error) {
	if err := requireField("script context", scriptContext); err != nil {
		return nil, err
	}
	system := fmt.Sprintf(constant.OutboundDraftPromptTemplate, scriptContext, SummarizeConversation(turns))
	return assemble(system, history, constant.OutboundDraftUserMessage), nil
}

// BuildRandomCustomerMessages asks for a synthetic practice customer.
func BuildRandomCustomerMessages() []llm.Message {
	return []llm.Message{
		{Role: llm.RoleUser, Content: constant.RandomCustomerPrompt},
	}
}

func assemble(system string, history []llm.Message, human string) []llm.Message {
	msgs := make([]llm.Message, 0, len(history)+2)
	msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: system})
	msgs = append(msgs, history...)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: human})
	return msgs
}

// SummarizeConversation condenses the case turns for the draft prompt:
// every user turn becomes a request line, and assistant turns that carry the
// suggestion marker contribute their quoted lines.
func SummarizeConversation(turns []entity.ChatTurn) string {
	var points []string
	for _, t := range turns {
		switch t.Role {
		case entity.RoleUser:
			points = append(points, "- 상담원 요청: "+t.Content)
		case entity.RoleAssistant:
			if !strings.Contains(t.Content, constant.MentionMarker) {
				continue
			}
			for _, line := range strings.Split(t.Content, "\n") {
				if strings.HasPrefix(line, constant.QuotedLinePrefix) {
					points = append(points, "- 제안 멘트: "+strings.TrimPrefix(line, constant.QuotedLinePrefix))
				}
			}
		}
	}
	return strings.Join(points, "\n")
}
