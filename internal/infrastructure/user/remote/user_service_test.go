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

func newService(t *testing.T, handler http.HandlerFunc) *UserService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := httpclient.New(time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewUserService(srv.URL+"/", client)
}

func TestUserService_GetUserByID(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/getuser/u1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"u1","username":"alice","logged_in":false}`))
	})

	user, err := svc.GetUserByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsTemporary())
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"User not found"}`))
	})

	_, err := svc.GetUserByID(context.Background(), "ghost")

	e := domain.AsError(err)
	assert.Equal(t, http.StatusNotFound, e.Status)
	assert.Equal(t, "User not found", e.Message)
}

func TestUserService_GetUserByID_MalformedRecord(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "null", body: `null`},
		{name: "empty object", body: `{}`},
		{name: "missing id", body: `{"username":"alice","logged_in":false}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			user, err := svc.GetUserByID(context.Background(), "u3")

			assert.Nil(t, user)
			e := domain.AsError(err)
			assert.Equal(t, domain.KindUnavailable, e.Kind)
			assert.Equal(t, http.StatusInternalServerError, e.Status)
			assert.Equal(t, domain.InternalErrorMessage, e.Message)
		})
	}
}

func TestUserService_CreateTempAccount(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, PathCreateTemp, r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		_, _ = w.Write([]byte(`{"id":"u1","username":"alice"}`))
	})

	user, err := svc.CreateTempAccount(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUserService_DeleteTempAccount(t *testing.T) {
	var called bool
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/deletetemp/u1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, svc.DeleteTempAccount(context.Background(), "u1"))
	assert.True(t, called)
}

func TestUserService_SignUpPassthrough(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathSignUp, r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"username":"bob","password":"pw"}`, string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	out, err := svc.SignUp(context.Background(), json.RawMessage(`{"username":"bob","password":"pw"}`))

	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(out))
}

func TestUserService_SignInError(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	_, err := svc.SignIn(context.Background(), json.RawMessage(`{}`))

	e := domain.AsError(err)
	assert.Equal(t, http.StatusUnauthorized, e.Status)
	assert.Equal(t, "Invalid credentials", e.Message)
}
