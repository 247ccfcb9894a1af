package entity

import (
	"encoding/json"
	"fmt"
)

// Role is a closed enumeration of chat-turn authors. The on-disk format uses
// "user" and "ai"; the enum keeps typos out of the rest of the codebase.
type Role int

const (
	RoleUser Role = iota
	RoleAssistant
)

const (
	roleUserTag      = "user"
	roleAssistantTag = "ai"
)

func (r Role) String() string {
	if r == RoleAssistant {
		return roleAssistantTag
	}
	return roleUserTag
}

// ParseRole maps a serialized role tag to the enum. "assistant" and "model"
// are accepted as aliases for the assistant role.
func ParseRole(tag string) (Role, error) {
	switch tag {
	case roleUserTag:
		return RoleUser, nil
	case roleAssistantTag, "assistant", "model":
		return RoleAssistant, nil
	default:
		return RoleUser, fmt.Errorf("unknown chat role %q", tag)
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	parsed, err := ParseRole(tag)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ChatTurn is one message in a conversation, immutable once created.
// Ordering is chronological; the slice owner appends, never reorders.
type ChatTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
