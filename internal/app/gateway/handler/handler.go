package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/JoeShih716/go-game-gateway/internal/app/gateway/identity"
	"github.com/JoeShih716/go-game-gateway/internal/app/gateway/service"
)

const (
	// HeaderAccessToken 客戶端攜帶 accesstoken 的 Header
	HeaderAccessToken = "accesstoken"

	MsgUsernameRequired = "Username is required."
	MsgPasswordRequired = "Password is required."
	MsgTokenRequired    = "Token required."
	MsgSettingsRequired = "Settings object is required."
	MsgUserNotFound     = "User not found"
	MsgInvalidBody      = "Invalid request body"
)

// Handler 將 HTTP 請求轉成 GatewayService 呼叫
type Handler struct {
	svc        *service.GatewayService
	events     http.Handler
	eventsPath string
	logger     *slog.Logger
}

// NewHandler 建立 HTTP Handler
//
// 參數:
//
//	svc: *service.GatewayService - Session Orchestrator
//	events: http.Handler - /events websocket 伺服器 (nil = 不提供)
//	eventsPath: string - websocket 路徑
//	logger: *slog.Logger - 日誌
func NewHandler(svc *service.GatewayService, events http.Handler, eventsPath string, logger *slog.Logger) *Handler {
	if eventsPath == "" {
		eventsPath = "/events"
	}
	return &Handler{
		svc:        svc,
		events:     events,
		eventsPath: eventsPath,
		logger:     logger.With("component", "http_handler"),
	}
}

// Router 建立 chi Router
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(h.requestIDMiddleware)
	r.Use(h.loggingMiddleware)
	r.Use(h.recoveryMiddleware)
	r.Use(h.bodySizeLimitMiddleware)

	r.Get("/healthz", h.handleHealth)

	r.Post("/signup", h.handleSignUp)
	r.Post("/signin", h.handleSignIn)
	r.Post("/join", h.handleJoin)
	r.Post("/join/{roomcode}", h.handleJoin)
	r.Post("/leave", h.handleLeave)
	r.Get("/getrole/{id}", h.handleGetRole)
	r.Post("/createroom", h.handleCreateRoom)
	r.Post("/startgame", h.handleStartGame)
	r.Post("/endgame", h.handleEndGame)
	r.Get("/room", h.handleGetRoom)
	r.Get("/user/{id}", h.handleUserExists)
	r.Get("/audit/{id}", h.handleAuditTrail)

	if h.events != nil {
		r.Handle(h.eventsPath, h.events)
	}

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---------------------------------------------------------
// Request body
// ---------------------------------------------------------

// requestBody 各路由共用的 Body 欄位
type requestBody struct {
	ID       string          `json:"_id"`
	Username string          `json:"username"`
	Settings json.RawMessage `json:"settings"`
}

// readBody 讀取 Body，空 Body 視為 {}
func readBody(r *http.Request) (json.RawMessage, error) {
	if r.Body == nil {
		return json.RawMessage("{}"), nil
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(data) {
		return nil, errors.New("invalid json")
	}
	return data, nil
}

func decodeBody(r *http.Request) (requestBody, json.RawMessage, error) {
	var body requestBody
	raw, err := readBody(r)
	if err != nil {
		return body, nil, err
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return body, nil, err
	}
	return body, raw, nil
}

// hasField 欄位存在且不是 null
func hasField(raw json.RawMessage, name string) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}
	v, ok := fields[name]
	return ok && string(v) != "null"
}

// ---------------------------------------------------------
// Account
// ---------------------------------------------------------

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.credentialsBody(w, r)
	if !ok {
		return
	}
	data, err := h.svc.SignUp(r.Context(), raw)
	if err != nil {
		writeError(w, err)
		return
	}
	writeRaw(w, http.StatusCreated, data)
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.credentialsBody(w, r)
	if !ok {
		return
	}
	data, err := h.svc.SignIn(r.Context(), raw)
	if err != nil {
		writeError(w, err)
		return
	}
	writeRaw(w, http.StatusCreated, data)
}

// credentialsBody 驗證 username / password 存在，回傳原始 Body
func (h *Handler) credentialsBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	raw, err := readBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, MsgInvalidBody)
		return nil, false
	}
	if !hasField(raw, "username") {
		writeMessage(w, http.StatusBadRequest, MsgUsernameRequired)
		return nil, false
	}
	if !hasField(raw, "password") {
		writeMessage(w, http.StatusBadRequest, MsgPasswordRequired)
		return nil, false
	}
	return raw, true
}

// ---------------------------------------------------------
// Room / Game
// ---------------------------------------------------------

func (h *Handler) handleJoin(w http.ResponseWriter, r *http.Request) {
	body, _, err := decodeBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	res, err := h.svc.Join(r.Context(), service.JoinRequest{
		Credential: r.Header.Get(HeaderAccessToken),
		Username:   body.Username,
		RoomCode:   chi.URLParam(r, "roomcode"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) handleLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := h.normalizeID(w, r, nil)
	if !ok {
		return
	}
	if err := h.svc.LeaveRoom(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // connection may already be closed
	w.Write([]byte(http.StatusText(http.StatusOK)))
}

func (h *Handler) handleGetRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeMessage(w, http.StatusBadRequest, MsgUserNotFound)
		return
	}
	res, err := h.svc.GetRole(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	token, ok := requireToken(w, r)
	if !ok {
		return
	}
	data, err := h.svc.CreateRoom(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeRaw(w, http.StatusCreated, data)
}

func (h *Handler) handleStartGame(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireToken(w, r); !ok {
		return
	}
	var settings json.RawMessage
	id, ok := h.normalizeID(w, r, func(body requestBody, raw json.RawMessage) bool {
		if !hasField(raw, "settings") {
			writeMessage(w, http.StatusBadRequest, MsgSettingsRequired)
			return false
		}
		settings = body.Settings
		return true
	})
	if !ok {
		return
	}

	data, err := h.svc.StartGame(r.Context(), id, settings)
	if err != nil {
		writeError(w, err)
		return
	}
	writeRaw(w, http.StatusCreated, data)
}

func (h *Handler) handleEndGame(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireToken(w, r); !ok {
		return
	}
	id, ok := h.normalizeID(w, r, nil)
	if !ok {
		return
	}
	data, err := h.svc.EndGame(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeRaw(w, http.StatusCreated, data)
}

func (h *Handler) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireToken(w, r); !ok {
		return
	}
	id, ok := h.normalizeID(w, r, nil)
	if !ok {
		return
	}
	data, err := h.svc.GetOwnedRoom(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeRaw(w, http.StatusCreated, data)
}

func (h *Handler) handleUserExists(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeMessage(w, http.StatusBadRequest, MsgUserNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, h.svc.GetUserExists(r.Context(), id))
}

// handleAuditTrail 只允許查詢 accesstoken 本人的紀錄
func (h *Handler) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	token, ok := requireToken(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	caller, err := h.svc.Resolver().NormalizeID(r.Context(), "", token)
	if err != nil {
		writeError(w, err)
		return
	}
	if caller != id {
		h.logger.InfoContext(r.Context(), "Audit trail denied", "caller", caller, "user_id", id)
		writeMessage(w, http.StatusUnauthorized, identity.MsgUnauthorised)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.svc.AuditTrail(r.Context(), id, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// ---------------------------------------------------------
// Helpers
// ---------------------------------------------------------

func requireToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := r.Header.Get(HeaderAccessToken)
	if token == "" {
		writeMessage(w, http.StatusBadRequest, MsgTokenRequired)
		return "", false
	}
	return token, true
}

// normalizeID 從 Body 的 _id 或 accesstoken 取得使用者 ID
// validate 可在解析身分前檢查其他 Body 欄位，回傳 false 表示已寫入回應
func (h *Handler) normalizeID(w http.ResponseWriter, r *http.Request, validate func(body requestBody, raw json.RawMessage) bool) (string, bool) {
	body, raw, err := decodeBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, MsgInvalidBody)
		return "", false
	}
	if validate != nil && !validate(body, raw) {
		return "", false
	}

	id, err := h.svc.Resolver().NormalizeID(r.Context(), body.ID, r.Header.Get(HeaderAccessToken))
	if err != nil {
		writeError(w, err)
		return "", false
	}
	return id, true
}
