package dto

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

type AskResponse struct {
	Sent  TurnDTO `json:"sent"`
	Reply TurnDTO `json:"reply"`
}

type DraftResponse struct {
	DraftText string `json:"draft_text"`
}
