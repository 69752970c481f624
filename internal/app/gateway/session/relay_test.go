package session

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
	mock_wss "github.com/JoeShih716/go-game-gateway/test/mocks/pkg/wss"
)

func newTestRelay() (*Relay, *Manager) {
	mgr := NewManager()
	return NewRelay(mgr, slog.New(slog.NewTextHandler(io.Discard, nil))), mgr
}

func connectClient(ctrl *gomock.Controller, relay *Relay, id, userID, roomCode string) *mock_wss.MockClient {
	client := mock_wss.NewMockClient(ctrl)
	client.EXPECT().ID().Return(id).AnyTimes()
	client.EXPECT().Param(ParamUserID).Return(userID)
	client.EXPECT().Param(ParamRoomCode).Return(roomCode)
	relay.OnConnect(client)
	return client
}

func TestRelay_ConnectDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relay, mgr := newTestRelay()
	client := connectClient(ctrl, relay, "c1", "u1", "")

	sess, ok := mgr.Get("c1")
	require.True(t, ok)
	assert.Equal(t, "u1", sess.UserID)
	assert.Empty(t, sess.RoomCode)

	relay.OnDisconnect(client)
	assert.Equal(t, int64(0), mgr.Count())
}

func TestRelay_Broadcast_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relay, _ := newTestRelay()
	everyone := connectClient(ctrl, relay, "c1", "", "")
	alice := connectClient(ctrl, relay, "c2", "u1", "")
	room := connectClient(ctrl, relay, "c3", "", "ABCD")

	event := domain.NewLifecycleEvent(domain.EventPlayerJoined, "u1", "WXYZ")

	everyone.EXPECT().SendMessage(gomock.Any()).Return(nil).Times(1)
	alice.EXPECT().SendMessage(gomock.Any()).DoAndReturn(func(msg any) error {
		data, ok := msg.([]byte)
		require.True(t, ok)
		assert.Contains(t, string(data), `"type":"player.joined"`)
		assert.Contains(t, string(data), `"user_id":"u1"`)
		return nil
	}).Times(1)
	room.EXPECT().SendMessage(gomock.Any()).Times(0)

	relay.Broadcast(event)
}

func TestRelay_Broadcast_SlowClientDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relay, _ := newTestRelay()
	slow := connectClient(ctrl, relay, "c1", "", "")
	fast := connectClient(ctrl, relay, "c2", "", "")

	slow.EXPECT().SendMessage(gomock.Any()).Return(errors.New("send buffer full"))
	fast.EXPECT().SendMessage(gomock.Any()).Return(nil)

	relay.Broadcast(domain.NewLifecycleEvent(domain.EventRoomDeleted, "u1", "ABCD"))
}

func TestRelay_OnMessage_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relay, _ := newTestRelay()
	client := mock_wss.NewMockClient(ctrl)
	client.EXPECT().SendMessage("pong").Return(nil)

	relay.OnMessage(client, []byte("ping\n"))
	relay.OnMessage(client, []byte(`{"type":"other"}`))
}
