package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/slalter/dreamscape/internal/world"
)

func TestBackoffDoublesAndCaps(t *testing.T) {
	assert.Equal(t, time.Second, Backoff(1))
	assert.Equal(t, 2*time.Second, Backoff(2))
	assert.Equal(t, 4*time.Second, Backoff(3))
	assert.Equal(t, 16*time.Second, Backoff(5))
	assert.Equal(t, backoffCap, Backoff(10), "backoff never exceeds the cap")
	assert.Equal(t, backoffCap, Backoff(100))
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "connected", StateConnected.String())
	assert.Equal(t, "reconnecting", StateReconnecting.String())
	assert.Equal(t, "disconnected", StateDisconnected.String())
}

func TestSendInputWhileDisconnectedIsDropped(t *testing.T) {
	c := New(zap.NewNop(), "ws://localhost:9", "s")
	// Must not panic or block.
	c.SendInput("hello")
}

func envelope(t *testing.T, typ string, payload any) world.Message {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return world.Message{Type: typ, Data: data}
}

func TestDispatchRoutesByType(t *testing.T) {
	log := zap.NewNop()
	var created, modified []string
	var removed []string
	var narration, status, errors []string
	var envs int
	var terrains []string
	var snapshots int

	h := Handlers{
		ObjectCreated:      func(o world.WorldObject) { created = append(created, o.Name) },
		ObjectModified:     func(o world.WorldObject) { modified = append(modified, o.Name) },
		ObjectRemoved:      func(name string) { removed = append(removed, name) },
		EnvironmentUpdated: func(world.EnvironmentSettings) { envs++ },
		TerrainCreated:     func(p world.TerrainParams) { terrains = append(terrains, p.Type) },
		Narration:          func(s string) { narration = append(narration, s) },
		Status:             func(s string) { status = append(status, s) },
		ServerError:        func(s string) { errors = append(errors, s) },
		WorldState:         func(world.WorldState) { snapshots++ },
	}

	Dispatch(log, envelope(t, world.MsgObjectCreated, world.WorldObject{Name: "tree"}), h)
	Dispatch(log, envelope(t, world.MsgObjectModified, world.WorldObject{Name: "tree"}), h)
	Dispatch(log, envelope(t, world.MsgObjectRemoved, world.NamedRef{Name: "tree"}), h)
	Dispatch(log, envelope(t, world.MsgEnvironmentUpdated, world.EnvironmentSettings{}), h)
	Dispatch(log, envelope(t, world.MsgTerrainCreated, world.TerrainParams{Type: "hills"}), h)
	Dispatch(log, envelope(t, world.MsgNarration, world.TextPayload{Text: "a forest appears"}), h)
	Dispatch(log, envelope(t, world.MsgStatus, world.StatusPayload{Message: "Ready"}), h)
	Dispatch(log, envelope(t, world.MsgError, world.StatusPayload{Message: "boom"}), h)
	Dispatch(log, envelope(t, world.MsgWorldState, world.WorldState{}), h)

	assert.Equal(t, []string{"tree"}, created)
	assert.Equal(t, []string{"tree"}, modified)
	assert.Equal(t, []string{"tree"}, removed)
	assert.Equal(t, 1, envs)
	assert.Equal(t, []string{"hills"}, terrains)
	assert.Equal(t, []string{"a forest appears"}, narration)
	assert.Equal(t, []string{"Ready"}, status)
	assert.Equal(t, []string{"boom"}, errors)
	assert.Equal(t, 1, snapshots)
}

func TestDispatchDropsUnknownAndMalformed(t *testing.T) {
	log := zap.NewNop()
	called := false
	h := Handlers{ObjectCreated: func(world.WorldObject) { called = true }}

	Dispatch(log, world.Message{Type: "model_uploaded", Data: []byte(`{}`)}, h)
	Dispatch(log, world.Message{Type: world.MsgObjectCreated, Data: []byte(`{not json`)}, h)
	assert.False(t, called)
}

func TestDispatchWithNilHandlerIsNoOp(t *testing.T) {
	Dispatch(zap.NewNop(), envelope(t, world.MsgNarration, world.TextPayload{Text: "x"}), Handlers{})
}

var upgrader = websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

func TestClientAgainstLiveServer(t *testing.T) {
	gotInput := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.URL.Path, "/ws/"), "session id travels in the path")
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		status, _ := json.Marshal(world.StatusPayload{Message: "Ready"})
		require.NoError(t, conn.WriteJSON(world.Message{Type: world.MsgStatus, Data: status}))

		// Not an envelope at all; the client must survive it.
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`"just a string"`)))

		obj, _ := json.Marshal(world.WorldObject{Name: "tree"})
		require.NoError(t, conn.WriteJSON(world.Message{Type: world.MsgObjectCreated, Data: obj}))

		var in world.Message
		require.NoError(t, conn.ReadJSON(&in))
		var payload world.UserInput
		require.NoError(t, json.Unmarshal(in.Data, &payload))
		gotInput <- payload.Text
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := New(zap.NewNop(), "ws"+strings.TrimPrefix(srv.URL, "http"), "test-session")
	go c.Run(ctx)

	read := func() world.Message {
		select {
		case m := <-c.Events():
			return m
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for message")
			return world.Message{}
		}
	}

	assert.Equal(t, world.MsgStatus, read().Type)
	assert.Equal(t, world.MsgObjectCreated, read().Type, "malformed frame in between is skipped")
	assert.Equal(t, StateConnected, c.State())

	c.SendInput("make a forest")
	select {
	case text := <-gotInput:
		assert.Equal(t, "make a forest", text)
	case <-time.After(2 * time.Second):
		t.Fatal("server never received user input")
	}
}
