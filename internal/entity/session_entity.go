package entity

import "time"

// SessionState is the explicit page state of one logged-in agent. A session
// that does not exist in the store is the logged-out state.
type SessionState string

const (
	StateIntake       SessionState = "intake"
	StateConversation SessionState = "conversation"
)

// AgentSession holds all per-login state for one agent: identity, the page
// state machine, the current case, and the outbound draft. It is owned by a
// single logical login and mutated only through the services.
type AgentSession struct {
	Id        string       `json:"id"`
	AgentName string       `json:"agent_name"`
	AgentCode string       `json:"agent_code"`
	State     SessionState `json:"state"`

	// ChecklistOpen is the overlay sub-state; only meaningful while State
	// is StateConversation.
	ChecklistOpen bool `json:"checklist_open"`

	Customer      CustomerInfo `json:"customer"`
	ScriptContext string       `json:"script_context"`
	Turns         []ChatTurn   `json:"turns"`
	CurrentFile   string       `json:"current_file"`
	DraftText     string       `json:"draft_text"`

	CreatedAt time.Time `json:"created_at"`
}

// Folder is the per-agent directory name for saved cases.
func (s *AgentSession) Folder() string {
	return s.AgentName + "_" + s.AgentCode
}

// ResetCase clears all per-case state, returning the session to intake.
func (s *AgentSession) ResetCase() {
	s.State = StateIntake
	s.ChecklistOpen = false
	s.Customer = CustomerInfo{}
	s.ScriptContext = ""
	s.Turns = nil
	s.CurrentFile = ""
	s.DraftText = ""
}
