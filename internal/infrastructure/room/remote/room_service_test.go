package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
	"github.com/JoeShih716/go-game-gateway/internal/infrastructure/httpclient"
)

func newService(t *testing.T, handler http.HandlerFunc) *RoomService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := httpclient.New(time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewRoomService(srv.URL, client)
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestRoomService_GetOwnedRoom_Owned(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/u1/getownedroom", r.URL.Path)
		_, _ = w.Write([]byte(`{"room_code":"ABCD","players":[{"user_id":"u1"},{"user_id":"u2"}]}`))
	})

	room, err := svc.GetOwnedRoom(context.Background(), "u1")

	require.NoError(t, err)
	assert.True(t, room.Owned())
	assert.Equal(t, "ABCD", room.RoomCode)
	assert.Equal(t, []string{"u1", "u2"}, room.PlayerIDs())
	assert.NotEmpty(t, room.Raw)
}

func TestRoomService_GetOwnedRoom_NotFoundIsNotAnError(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"No room found"}`))
	})

	room, err := svc.GetOwnedRoom(context.Background(), "u1")

	require.NoError(t, err)
	assert.False(t, room.Owned())
	assert.JSONEq(t, `{"message":"No room found"}`, string(room.Raw))
}

func TestRoomService_GetOwnedRoom_ServerError(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"db down"}`))
	})

	_, err := svc.GetOwnedRoom(context.Background(), "u1")

	e := domain.AsError(err)
	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.Equal(t, "db down", e.Message)
}

func TestRoomService_Join(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ABCD/join", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "u1", body["_id"])
		assert.Equal(t, "alice", body["username"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`"Joined room"`))
	})

	msg, err := svc.Join(context.Background(), "ABCD", domain.NewUserRef("u1", "alice"))

	require.NoError(t, err)
	assert.Equal(t, `"Joined room"`, string(msg))
}

func TestRoomService_Create(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, PathCreate, r.URL.Path)
		_, _ = w.Write([]byte(`{"room_code":"WXYZ"}`))
	})

	out, err := svc.Create(context.Background(), domain.NewUserRef("u1", "alice"))

	require.NoError(t, err)
	assert.JSONEq(t, `{"room_code":"WXYZ"}`, string(out))
}

func TestRoomService_DeleteAndLeave(t *testing.T) {
	var paths []string
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.URL.Path == PathLeave {
			assert.Equal(t, "u1", decodeBody(t, r)["_id"])
		}
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, svc.Delete(context.Background(), "ABCD"))
	require.NoError(t, svc.Leave(context.Background(), "u1"))

	assert.Equal(t, []string{"DELETE /ABCD/delete", "POST /leave"}, paths)
}

func TestRoomService_StartAndEndGame(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, "u1", body["_id"])
		switch r.URL.Path {
		case PathStartGame:
			assert.Equal(t, map[string]any{"rounds": float64(3)}, body["settings"])
			_, _ = w.Write([]byte(`{"started":true}`))
		case PathEndGame:
			_, hasSettings := body["settings"]
			assert.False(t, hasSettings)
			_, _ = w.Write([]byte(`{"ended":true}`))
		}
	})

	started, err := svc.StartGame(context.Background(), "u1", json.RawMessage(`{"rounds":3}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"started":true}`, string(started))

	ended, err := svc.EndGame(context.Background(), "u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ended":true}`, string(ended))
}

func TestRoomService_GetRole(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/u1/getrole", r.URL.Path)
		_, _ = w.Write([]byte(`"host"`))
	})

	role, err := svc.GetRole(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, `"host"`, string(role))
}
