package entity

// CustomerInfo is the transient per-case intake data. It is only persisted
// as part of a SavedCase.
type CustomerInfo struct {
	Name         string `json:"name"`
	Situation    string `json:"situation"`
	EmotionLevel int    `json:"emotion_level"`
	EmotionLabel string `json:"emotion_label"`
	ExtraInfo    string `json:"extra_info"`
}

// SavedCase is the persisted shape of one complaint case: intake metadata,
// the generated script, and the full conversation. The JSON keys are the
// stable on-disk format.
type SavedCase struct {
	CustomerName         string     `json:"customer_name"`
	CustomerEmotionLabel string     `json:"customer_emotion_label"`
	CustomerSituation    string     `json:"customer_situation"`
	ExtraInfo            string     `json:"extra_info"`
	ScriptContext        string     `json:"script_context"`
	MessageList          []ChatTurn `json:"message_list"`
}
