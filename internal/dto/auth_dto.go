package dto

// LoginRequest identifies an agent. The code is the last four digits of the
// agent's phone number; it scopes the saved-case folder, nothing more.
type LoginRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required,len=4,numeric"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	SessionId string `json:"session_id"`
	AgentName string `json:"agent_name"`
}
