package handler

import (
	"encoding/json"
	"net/http"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
)

// messageBody 對外錯誤回應 {message}
type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // connection may already be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeRaw 原樣輸出下游回應
func writeRaw(w http.ResponseWriter, status int, raw json.RawMessage) {
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // connection may already be closed
	w.Write(raw)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageBody{Message: message})
}

// writeError 以 domain.Error 的 status/message 回應，未知錯誤一律 500
func writeError(w http.ResponseWriter, err error) {
	e := domain.AsError(err)
	writeMessage(w, e.Status, e.Message)
}
