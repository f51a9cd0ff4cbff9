package client

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/slalter/dreamscape/internal/world"
)

// Handlers routes decoded payloads to the scene and HUD. Nil slots mean
// "not interested"; the message is dropped silently.
type Handlers struct {
	ObjectCreated      func(world.WorldObject)
	ObjectModified     func(world.WorldObject)
	ObjectRemoved      func(name string)
	EnvironmentUpdated func(world.EnvironmentSettings)
	TerrainCreated     func(world.TerrainParams)
	Narration          func(text string)
	Status             func(message string)
	ServerError        func(message string)
	WorldState         func(world.WorldState)
}

// Dispatch decodes one envelope and invokes the matching handler. Unknown
// message types and undecodable payloads are logged and dropped; the stream
// keeps flowing.
func Dispatch(log *zap.Logger, msg world.Message, h Handlers) {
	switch msg.Type {
	case world.MsgObjectCreated:
		var obj world.WorldObject
		if !decode(log, msg, &obj) {
			return
		}
		if h.ObjectCreated != nil {
			h.ObjectCreated(obj)
		}
	case world.MsgObjectModified:
		var obj world.WorldObject
		if !decode(log, msg, &obj) {
			return
		}
		if h.ObjectModified != nil {
			h.ObjectModified(obj)
		}
	case world.MsgObjectRemoved:
		var ref world.NamedRef
		if !decode(log, msg, &ref) {
			return
		}
		if h.ObjectRemoved != nil {
			h.ObjectRemoved(ref.Name)
		}
	case world.MsgEnvironmentUpdated:
		var env world.EnvironmentSettings
		if !decode(log, msg, &env) {
			return
		}
		if h.EnvironmentUpdated != nil {
			h.EnvironmentUpdated(env)
		}
	case world.MsgTerrainCreated:
		var terr world.TerrainParams
		if !decode(log, msg, &terr) {
			return
		}
		if h.TerrainCreated != nil {
			h.TerrainCreated(terr)
		}
	case world.MsgNarration:
		var p world.TextPayload
		if !decode(log, msg, &p) {
			return
		}
		if h.Narration != nil {
			h.Narration(p.Text)
		}
	case world.MsgStatus:
		var p world.StatusPayload
		if !decode(log, msg, &p) {
			return
		}
		if h.Status != nil {
			h.Status(p.Message)
		}
	case world.MsgError:
		var p world.StatusPayload
		if !decode(log, msg, &p) {
			return
		}
		if h.ServerError != nil {
			h.ServerError(p.Message)
		}
	case world.MsgWorldState:
		var ws world.WorldState
		if !decode(log, msg, &ws) {
			return
		}
		if h.WorldState != nil {
			h.WorldState(ws)
		}
	default:
		log.Warn("dropping message of unknown type", zap.String("type", msg.Type))
	}
}

func decode(log *zap.Logger, msg world.Message, v any) bool {
	if err := json.Unmarshal(msg.Data, v); err != nil {
		log.Warn("dropping message with malformed payload",
			zap.String("type", msg.Type), zap.Error(err))
		return false
	}
	return true
}
