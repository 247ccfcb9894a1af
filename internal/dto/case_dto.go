package dto

// TurnDTO mirrors entity.ChatTurn with the serialized role tag.
type TurnDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type IntakeRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Situation    string `json:"situation" validate:"required"`
	EmotionLevel int    `json:"emotion_level" validate:"required,min=1,max=5"`
	ExtraInfo    string `json:"extra_info,omitempty"`
}

type CustomerInfoDTO struct {
	Name         string `json:"name"`
	Situation    string `json:"situation"`
	EmotionLevel int    `json:"emotion_level"`
	EmotionLabel string `json:"emotion_label"`
	ExtraInfo    string `json:"extra_info,omitempty"`
}

// CaseStateResponse is the full session snapshot the page renders from.
type CaseStateResponse struct {
	State         string          `json:"state"`
	ChecklistOpen bool            `json:"checklist_open"`
	Customer      CustomerInfoDTO `json:"customer"`
	ScriptContext string          `json:"script_context"`
	Turns         []TurnDTO       `json:"turns"`
	CurrentFile   string          `json:"current_file,omitempty"`
	DraftText     string          `json:"draft_text,omitempty"`
}

type SaveCaseResponse struct {
	File string `json:"file"`
}

type SavedCaseSummary struct {
	File         string `json:"file"`
	CustomerName string `json:"customer_name"`
}

type LoadCaseRequest struct {
	File string `json:"file" validate:"required"`
}

type ChecklistToggleRequest struct {
	Open bool `json:"open"`
}

type RandomCustomerResponse struct {
	Name         string `json:"name"`
	Situation    string `json:"situation"`
	EmotionLevel int    `json:"emotion_level"`
	ExtraInfo    string `json:"extra_info"`
}
