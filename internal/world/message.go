package world

import "encoding/json"

// Message types carried in the websocket envelope. Outbound the client only
// sends MsgUserInput; everything else is inbound.
const (
	MsgUserInput          = "user_input"
	MsgObjectCreated      = "object_created"
	MsgObjectModified     = "object_modified"
	MsgObjectRemoved      = "object_removed"
	MsgEnvironmentUpdated = "environment_updated"
	MsgTerrainCreated     = "terrain_created"
	MsgNarration          = "narration"
	MsgStatus             = "status"
	MsgError              = "error"
	MsgWorldState         = "world_state"
)

// Message is the {type, data} envelope wrapping every stream message.
// Data stays raw until the dispatcher decodes it by type.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// UserInput is the payload of an outbound user_input message.
type UserInput struct {
	Text string `json:"text"`
}

// NamedRef is the payload of object_removed: just the object's name.
type NamedRef struct {
	Name string `json:"name"`
}

// TextPayload is the payload of narration events.
type TextPayload struct {
	Text string `json:"text"`
}

// StatusPayload is the payload of status and error events.
type StatusPayload struct {
	Message string `json:"message"`
}

// WorldState is the payload of a world_state snapshot, sent once when a
// session opens. Objects are keyed by name.
type WorldState struct {
	Objects          map[string]WorldObject `json:"objects"`
	Environment      EnvironmentSettings    `json:"environment"`
	Terrain          []TerrainParams        `json:"terrain"`
	NarrativeHistory []string               `json:"narrative_history,omitempty"`
	TurnCount        int                    `json:"turn_count,omitempty"`
}

// NewUserInput builds an outbound user_input envelope.
func NewUserInput(text string) (Message, error) {
	data, err := json.Marshal(UserInput{Text: text})
	if err != nil {
		return Message{}, err
	}
	return Message{Type: MsgUserInput, Data: data}, nil
}
