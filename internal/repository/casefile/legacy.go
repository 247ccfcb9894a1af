package casefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"complaint-assistant-be/internal/constant"
	"complaint-assistant-be/internal/entity"
	"complaint-assistant-be/internal/repository/contract"
)

// turnFile is the on-disk turn shape. Pointers detect missing keys so a
// malformed entry is reported instead of silently defaulted.
type turnFile struct {
	Role    *string `json:"role"`
	Content *string `json:"content"`
}

// caseFile is the current on-disk object schema. Metadata fields absent from
// older object files decode to their zero value and are defaulted below.
type caseFile struct {
	CustomerName         string     `json:"customer_name"`
	CustomerEmotionLabel string     `json:"customer_emotion_label"`
	CustomerSituation    string     `json:"customer_situation"`
	ExtraInfo            string     `json:"extra_info"`
	ScriptContext        string     `json:"script_context"`
	MessageList          []turnFile `json:"message_list"`
}

// decodeCase accepts both file shapes: the current object schema and the
// legacy bare array of turns. Anything else is reported as corrupt.
func decodeCase(raw []byte, file string) (*entity.SavedCase, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: %s: empty file", contract.ErrCaseFileCorrupt, file)
	}

	switch trimmed[0] {
	case '{':
		var cf caseFile
		if err := json.Unmarshal(trimmed, &cf); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", contract.ErrCaseFileCorrupt, file, err)
		}
		turns, err := decodeTurns(cf.MessageList, file)
		if err != nil {
			return nil, err
		}
		name := cf.CustomerName
		if name == "" {
			// Older object files carried the name only in the filename.
			name = CustomerNameFromFile(file)
		}
		return &entity.SavedCase{
			CustomerName:         name,
			CustomerEmotionLabel: cf.CustomerEmotionLabel,
			CustomerSituation:    cf.CustomerSituation,
			ExtraInfo:            cf.ExtraInfo,
			ScriptContext:        cf.ScriptContext,
			MessageList:          turns,
		}, nil
	case '[':
		// Legacy format: a bare array of turns, no metadata at all.
		var list []turnFile
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", contract.ErrCaseFileCorrupt, file, err)
		}
		turns, err := decodeTurns(list, file)
		if err != nil {
			return nil, err
		}
		return &entity.SavedCase{
			CustomerName: constant.DefaultCustomerName,
			MessageList:  turns,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s: top-level JSON is neither object nor array", contract.ErrCaseFileCorrupt, file)
	}
}

func decodeTurns(list []turnFile, file string) ([]entity.ChatTurn, error) {
	turns := make([]entity.ChatTurn, 0, len(list))
	for i, t := range list {
		if t.Role == nil || t.Content == nil {
			return nil, fmt.Errorf("%w: %s: turn %d missing role or content", contract.ErrCaseFileCorrupt, file, i)
		}
		role, err := entity.ParseRole(*t.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: turn %d: %v", contract.ErrCaseFileCorrupt, file, i, err)
		}
		turns = append(turns, entity.ChatTurn{Role: role, Content: *t.Content})
	}
	return turns, nil
}

// CustomerNameFromFile recovers the customer name from a saved file name:
// the prefix before the first underscore, per the filename convention.
func CustomerNameFromFile(file string) string {
	if idx := strings.Index(file, "_"); idx > 0 {
		return file[:idx]
	}
	return constant.DefaultCustomerName
}
