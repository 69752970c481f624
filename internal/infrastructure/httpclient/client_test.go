package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
)

func newTestClient() *Client {
	return New(2*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Do_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-1", r.Header.Get(HeaderRequestID))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		_, _ = w.Write([]byte(`{"id":"u1","username":"alice"}`))
	}))
	defer srv.Close()

	ctx := WithRequestID(context.Background(), "req-1")
	var out domain.UserRecord
	err := newTestClient().Do(ctx, http.MethodPost, srv.URL+"/createtemp", map[string]string{"username": "alice"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "u1", out.ID)
}

func TestClient_Do_RawPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(` {"joined":true} `))
	}))
	defer srv.Close()

	var raw json.RawMessage
	require.NoError(t, newTestClient().Do(context.Background(), http.MethodGet, srv.URL, nil, &raw))
	assert.JSONEq(t, `{"joined":true}`, string(raw))
}

func TestClient_Do_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("host"))
	}))
	defer srv.Close()

	var raw json.RawMessage
	require.NoError(t, newTestClient().Do(context.Background(), http.MethodGet, srv.URL, nil, &raw))
	assert.Equal(t, `"host"`, string(raw))
}

func TestClient_Do_RemoteErrorWithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"room full"}`))
	}))
	defer srv.Close()

	err := newTestClient().Do(context.Background(), http.MethodPost, srv.URL, nil, nil)

	e := domain.AsError(err)
	assert.Equal(t, domain.KindRemote, e.Kind)
	assert.Equal(t, http.StatusConflict, e.Status)
	assert.Equal(t, "room full", e.Message)
}

func TestClient_Do_RemoteErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestClient().Do(context.Background(), http.MethodGet, srv.URL, nil, nil)

	e := domain.AsError(err)
	assert.Equal(t, http.StatusNotFound, e.Status)
	assert.Equal(t, domain.DefaultErrorMessage, e.Message)
	assert.True(t, domain.IsNotFound(err))
}

func TestClient_Do_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestClient().Do(context.Background(), http.MethodGet, url, nil, nil)

	e := domain.AsError(err)
	assert.Equal(t, domain.KindUnavailable, e.Kind)
	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.Equal(t, domain.InternalErrorMessage, e.Message)
}

func TestClient_Do_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not-json`))
	}))
	defer srv.Close()

	var out domain.UserRecord
	err := newTestClient().Do(context.Background(), http.MethodGet, srv.URL, nil, &out)

	assert.True(t, domain.IsKind(err, domain.KindUnavailable))
}

func TestClient_Do_OversizedBody(t *testing.T) {
	payload := `"` + strings.Repeat("a", maxBodySize) + `"`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	var raw json.RawMessage
	err := newTestClient().Do(context.Background(), http.MethodGet, srv.URL, nil, &raw)

	e := domain.AsError(err)
	assert.Equal(t, domain.KindUnavailable, e.Kind)
	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.Nil(t, raw)
}

func TestClient_Do_BodyAtLimit(t *testing.T) {
	payload := `"` + strings.Repeat("a", maxBodySize-2) + `"`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	var raw json.RawMessage
	require.NoError(t, newTestClient().Do(context.Background(), http.MethodGet, srv.URL, nil, &raw))
	assert.Len(t, raw, maxBodySize)
}

func TestClient_Send_KeepsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"No room owned"}`))
	}))
	defer srv.Close()

	resp, err := newTestClient().Send(context.Background(), http.MethodGet, srv.URL, nil)

	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.JSONEq(t, `{"message":"No room owned"}`, string(resp.Body))
}
